package report

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/entity"
)

// DefaultDateColumn is the period column of the appointments dataset
const DefaultDateColumn = "PERIODO"

// Comparison selects how metric columns are laid out
type Comparison string

const (
	ComparisonNone     Comparison = "none"
	ComparisonByPeriod Comparison = "by_period"
)

// ParseComparison returns ComparisonNone for empty input
func ParseComparison(s string) (Comparison, error) {
	switch Comparison(strings.ToLower(strings.TrimSpace(s))) {
	case "", ComparisonNone:
		return ComparisonNone, nil
	case ComparisonByPeriod, "periodo", "period":
		return ComparisonByPeriod, nil
	default:
		return "", fmt.Errorf("unknown comparison mode: %s", s)
	}
}

// PivotOptions configures one pivot of a dataset
type PivotOptions struct {
	DateColumn string       `json:"date_column"`
	Periods    []time.Time  `json:"periods"` // empty, with Months, keeps every period
	Months     []time.Month `json:"months"`
	GroupBy    []string     `json:"group_by"`
	Metrics    []string     `json:"metrics"`
	Comparison Comparison   `json:"comparison"`
}

// AddPeriod selects a period given as a date or as a month name such as "marzo".
// A month selects that month of every year in the dataset.
func (o *PivotOptions) AddPeriod(s string) error {
	if d, ok := domain.ParseDate(s); ok {
		o.Periods = append(o.Periods, d)
		return nil
	}
	if m, ok := domain.ParseMonth(s); ok {
		o.Months = append(o.Months, m)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

func (o PivotOptions) periodFilter() func(time.Time) bool {
	if len(o.Periods) == 0 && len(o.Months) == 0 {
		return func(time.Time) bool { return true }
	}
	days := make(map[time.Time]bool, len(o.Periods))
	for _, p := range o.Periods {
		days[p] = true
	}
	months := make(map[time.Month]bool, len(o.Months))
	for _, m := range o.Months {
		months[m] = true
	}
	return func(d time.Time) bool {
		return days[d] || months[d.Month()]
	}
}

// PivotRow holds the grouping keys and the summed values of one group
type PivotRow struct {
	Keys   []string  `json:"keys"`
	Values []float64 `json:"values"`
}

// PivotTable is the result of a pivot. Total is the TOTAL margin row.
type PivotTable struct {
	GroupBy      []string   `json:"group_by"`
	ValueColumns []string   `json:"value_columns"`
	Rows         []PivotRow `json:"rows"`
	Total        PivotRow   `json:"total"`
}

// Pivot filters t to the selected periods, groups by the text columns and sums the metrics
func Pivot(t *entity.Table, opts PivotOptions) (*PivotTable, error) {
	if len(opts.GroupBy) == 0 || len(opts.Metrics) == 0 {
		return nil, ErrEmptySelection
	}
	if opts.DateColumn == "" {
		opts.DateColumn = DefaultDateColumn
	}

	dateCol, ok := t.Column(opts.DateColumn)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, opts.DateColumn)
	}
	groupCols, err := columnsOf(t, opts.GroupBy)
	if err != nil {
		return nil, err
	}
	metricCols, err := columnsOf(t, opts.Metrics)
	if err != nil {
		return nil, err
	}

	keep := opts.periodFilter()

	// periods present after filtering, needed for the by-period layout
	var periods []string
	if opts.Comparison == ComparisonByPeriod {
		periods = filteredPeriods(t, dateCol, keep)
	}
	periodPos := make(map[string]int, len(periods))
	for i, p := range periods {
		periodPos[p] = i
	}

	pt := &PivotTable{
		GroupBy:      opts.GroupBy,
		ValueColumns: valueColumns(opts.Metrics, periods),
	}
	width := len(pt.ValueColumns)

	groups := make(map[string]*PivotRow)
	for _, row := range t.Rows {
		date, ok := domain.ParseDate(t.Value(row, dateCol))
		if !ok {
			continue
		}
		if !keep(date) {
			continue
		}
		period := date.Format(time.DateOnly)

		keys := make([]string, len(groupCols))
		missingKey := false
		for i, c := range groupCols {
			keys[i] = strings.TrimSpace(t.Value(row, c))
			if keys[i] == "" {
				missingKey = true
			}
		}
		if missingKey {
			continue
		}

		id := strings.Join(keys, "\x1f")
		g, ok := groups[id]
		if !ok {
			g = &PivotRow{Keys: keys, Values: make([]float64, width)}
			groups[id] = g
		}

		for m, c := range metricCols {
			pos := m
			if opts.Comparison == ComparisonByPeriod {
				pos = m*len(periods) + periodPos[period]
			}
			g.Values[pos] += parseNumber(t.Value(row, c))
		}
	}

	pt.Rows = make([]PivotRow, 0, len(groups))
	for _, g := range groups {
		pt.Rows = append(pt.Rows, *g)
	}
	sort.Slice(pt.Rows, func(i, j int) bool {
		return lessKeys(pt.Rows[i].Keys, pt.Rows[j].Keys)
	})

	pt.Total = PivotRow{Keys: make([]string, len(groupCols)), Values: make([]float64, width)}
	pt.Total.Keys[0] = totalLabel
	for _, r := range pt.Rows {
		for i, v := range r.Values {
			pt.Total.Values[i] += v
		}
	}

	return pt, nil
}

// Records returns the pivot as header and rows, TOTAL last
func (p *PivotTable) Records() ([]string, [][]string) {
	header := append(append([]string{}, p.GroupBy...), p.ValueColumns...)
	rows := make([][]string, 0, len(p.Rows)+1)
	for _, r := range p.Rows {
		rows = append(rows, r.record())
	}
	rows = append(rows, p.Total.record())
	return header, rows
}

func (r PivotRow) record() []string {
	out := append([]string{}, r.Keys...)
	for _, v := range r.Values {
		out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return out
}

// Periods returns the distinct, sorted dates found in the date column
func Periods(t *entity.Table, dateColumn string) ([]time.Time, error) {
	col, ok := t.Column(dateColumn)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, dateColumn)
	}
	seen := make(map[time.Time]bool)
	var out []time.Time
	for _, row := range t.Rows {
		d, ok := domain.ParseDate(t.Value(row, col))
		if ok && !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

// Dimensions lists what a pivot of one dataset can select from
type Dimensions struct {
	DateColumn string      `json:"date_column"`
	Periods    []time.Time `json:"periods"`
	GroupBy    []string    `json:"group_by"`
	Metrics    []string    `json:"metrics"`
}

// Describe collects the periods, groupable columns and metrics of t. The
// date column itself is never offered for grouping.
func Describe(t *entity.Table, dateColumn string) (*Dimensions, error) {
	if dateColumn == "" {
		dateColumn = DefaultDateColumn
	}
	periods, err := Periods(t, dateColumn)
	if err != nil {
		return nil, err
	}

	d := &Dimensions{
		DateColumn: dateColumn,
		Periods:    periods,
		GroupBy:    []string{},
		Metrics:    NumericColumns(t),
	}
	dateKey := domain.NormalizeHeader(dateColumn)
	for _, col := range TextColumns(t) {
		if domain.NormalizeHeader(col) != dateKey {
			d.GroupBy = append(d.GroupBy, col)
		}
	}
	if d.Metrics == nil {
		d.Metrics = []string{}
	}
	return d, nil
}

// NumericColumns returns the columns whose non-empty values are all numbers
func NumericColumns(t *entity.Table) []string {
	var out []string
	for i, col := range t.Columns {
		if isNumericColumn(t, i) {
			out = append(out, col)
		}
	}
	return out
}

// TextColumns returns the columns that can be used for grouping
func TextColumns(t *entity.Table) []string {
	var out []string
	for i, col := range t.Columns {
		if !isNumericColumn(t, i) {
			out = append(out, col)
		}
	}
	return out
}

func isNumericColumn(t *entity.Table, col int) bool {
	seen := false
	for _, row := range t.Rows {
		v := strings.TrimSpace(t.Value(row, col))
		if v == "" {
			continue
		}
		if _, ok := toNumber(v); !ok {
			return false
		}
		seen = true
	}
	return seen
}

func filteredPeriods(t *entity.Table, dateCol int, keep func(time.Time) bool) []string {
	seen := make(map[string]bool)
	var out []string
	for _, row := range t.Rows {
		d, ok := domain.ParseDate(t.Value(row, dateCol))
		if !ok {
			continue
		}
		p := d.Format(time.DateOnly)
		if keep(d) && !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func valueColumns(metrics, periods []string) []string {
	if len(periods) == 0 {
		return append([]string{}, metrics...)
	}
	out := make([]string, 0, len(metrics)*len(periods))
	for _, m := range metrics {
		for _, p := range periods {
			out = append(out, m+" "+p)
		}
	}
	return out
}

func columnsOf(t *entity.Table, names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		col, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
		}
		out[i] = col
	}
	return out, nil
}

func lessKeys(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func parseNumber(s string) float64 {
	v, _ := toNumber(s)
	return v
}

var (
	thousandsNumber = regexp.MustCompile(`^[-+]?[1-9]\d{0,2}(\.\d{3})+(,\d+)?$`)
	plainNumber     = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)$`)
	commaDecimal    = regexp.MustCompile(`^[-+]?\d+,\d+$`)
)

// toNumber reads the number formats found in the sheets. A dot followed by
// groups of exactly three digits is a thousands separator ("1.234" is 1234,
// "1.234,5" is 1234.5), a lone comma is the decimal mark ("12,5") and anything
// else must be a plain decimal ("0.125", "12.5").
func toNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch {
	case thousandsNumber.MatchString(s):
		s = strings.NewReplacer(".", "", ",", ".").Replace(s)
	case commaDecimal.MatchString(s):
		s = strings.Replace(s, ",", ".", 1)
	case !plainNumber.MatchString(s):
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
