package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/report"
)

var errBadParam = errors.New("invalid query parameter")

const (
	formatJSON = "json"
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

func parseFormat(q url.Values) (string, error) {
	switch f := strings.ToLower(q.Get("format")); f {
	case "", formatJSON:
		return formatJSON, nil
	case formatCSV, formatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: format %q", errBadParam, f)
	}
}

func parseOptionalDate(q url.Values, key string) (time.Time, error) {
	raw := q.Get(key)
	if raw == "" {
		return time.Time{}, nil
	}
	d, ok := domain.ParseDate(raw)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s %q", errBadParam, key, raw)
	}
	return d, nil
}

// values returns the non-empty values of a repeated query parameter
func values(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func impactOptions(q url.Values) (report.Options, error) {
	from, err := parseOptionalDate(q, "from")
	if err != nil {
		return report.Options{}, err
	}
	to, err := parseOptionalDate(q, "to")
	if err != nil {
		return report.Options{}, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return report.Options{}, fmt.Errorf("%w: to is before from", errBadParam)
	}

	groupBy, err := report.ParseGroupBy(q.Get("group_by"))
	if err != nil {
		return report.Options{}, err
	}

	top := 0
	if raw := q.Get("top"); raw != "" {
		top, err = strconv.Atoi(raw)
		if err != nil || top < 0 {
			return report.Options{}, fmt.Errorf("%w: top %q", errBadParam, raw)
		}
	}

	opts := []report.Option{
		report.WithWindow(from, to),
		report.WithDepartments(values(q, "department")...),
		report.WithServices(values(q, "service")...),
		report.WithReasons(values(q, "reason")...),
		report.WithProfessionals(values(q, "professional")...),
		report.WithGroupBy(groupBy),
		report.WithTop(top),
	}
	if clip, _ := strconv.ParseBool(q.Get("clip")); clip {
		opts = append(opts, report.WithClipToWindow())
	}
	return report.NewOptions(opts...), nil
}

func pivotOptions(q url.Values) (report.PivotOptions, error) {
	comparison, err := report.ParseComparison(q.Get("comparison"))
	if err != nil {
		return report.PivotOptions{}, fmt.Errorf("%w: %v", errBadParam, err)
	}

	opts := report.PivotOptions{
		DateColumn: q.Get("date_column"),
		GroupBy:    values(q, "group_by"),
		Metrics:    values(q, "metric"),
		Comparison: comparison,
	}
	for _, raw := range values(q, "period") {
		if err := opts.AddPeriod(raw); err != nil {
			return report.PivotOptions{}, err
		}
	}

	return opts, nil
}
