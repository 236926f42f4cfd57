package report

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/entity"
)

const totalLabel = "TOTAL"

// ImpactGroup aggregates the leaves sharing a grouping key
type ImpactGroup struct {
	Key               string `json:"key"`
	Records           int    `json:"records"`
	CancelledSessions int    `json:"cancelled_sessions"`
	CalendarDays      int    `json:"calendar_days"`
}

// ImpactReport is the filtered and grouped view of the leave impacts
type ImpactReport struct {
	GeneratedAt     time.Time            `json:"generated_at"`
	Options         Options              `json:"options"`
	Impacts         []entity.LeaveImpact `json:"impacts"`
	Groups          []ImpactGroup        `json:"groups"`
	Total           ImpactGroup          `json:"total"`
	FallbackRecords int                  `json:"fallback_records"`
	InvalidRecords  int                  `json:"invalid_records"`
	SkippedRecords  int                  `json:"skipped_records"`
}

// BuildImpact filters the impacts with opts and groups them
func BuildImpact(impacts []entity.LeaveImpact, opts Options) *ImpactReport {
	r := &ImpactReport{
		GeneratedAt: time.Now().UTC(),
		Options:     opts,
		Impacts:     []entity.LeaveImpact{},
		Groups:      []ImpactGroup{},
		Total:       ImpactGroup{Key: totalLabel},
	}

	groups := make(map[string]*ImpactGroup)
	for _, impact := range impacts {
		if !opts.Matches(impact.LeaveRecord) {
			continue
		}
		r.Impacts = append(r.Impacts, impact)

		key := groupKey(impact.LeaveRecord, opts.GroupBy)
		g, ok := groups[key]
		if !ok {
			g = &ImpactGroup{Key: key}
			groups[key] = g
		}
		g.add(impact)
		r.Total.add(impact)

		if impact.Method == domain.MethodCalendarDays {
			r.FallbackRecords++
		}
	}

	for _, g := range groups {
		r.Groups = append(r.Groups, *g)
	}
	sort.Slice(r.Groups, func(i, j int) bool {
		if r.Groups[i].CancelledSessions != r.Groups[j].CancelledSessions {
			return r.Groups[i].CancelledSessions > r.Groups[j].CancelledSessions
		}
		return r.Groups[i].Key < r.Groups[j].Key
	})

	if opts.Top > 0 && len(r.Groups) > opts.Top {
		r.Groups = r.Groups[:opts.Top]
	}

	return r
}

func (g *ImpactGroup) add(impact entity.LeaveImpact) {
	g.Records++
	g.CancelledSessions += impact.CancelledSessions
	g.CalendarDays += impact.CalendarDays()
}

func groupKey(l entity.LeaveRecord, by GroupBy) string {
	var key string
	switch by {
	case GroupByService:
		key = l.Service
	case GroupByReason:
		key = l.Reason
	case GroupByProfessional:
		key = domain.NormalizeKey(l.Professional)
	case GroupByMonth:
		m := l.StartDate.Month()
		key = fmt.Sprintf("%d-%02d %s", l.StartDate.Year(), int(m), domain.MonthLabels[m])
	default:
		key = l.Department
	}
	if key == "" {
		return "(sin dato)"
	}
	return key
}

// Table returns the grouped view as header and rows, TOTAL last
func (r *ImpactReport) Table() ([]string, [][]string) {
	header := []string{string(r.Options.GroupBy), "records", "cancelled_sessions", "calendar_days"}
	rows := make([][]string, 0, len(r.Groups)+1)
	for _, g := range r.Groups {
		rows = append(rows, g.record())
	}
	rows = append(rows, r.Total.record())
	return header, rows
}

func (g ImpactGroup) record() []string {
	return []string{
		g.Key,
		strconv.Itoa(g.Records),
		strconv.Itoa(g.CancelledSessions),
		strconv.Itoa(g.CalendarDays),
	}
}

// Detail returns one row per leave with its cancelled session count. Pass-through
// columns are appended in name order.
func (r *ImpactReport) Detail() ([]string, [][]string) {
	extraSet := make(map[string]struct{})
	for _, impact := range r.Impacts {
		for k := range impact.Extra {
			extraSet[k] = struct{}{}
		}
	}
	extras := make([]string, 0, len(extraSet))
	for k := range extraSet {
		extras = append(extras, k)
	}
	sort.Strings(extras)

	header := []string{"PROFESIONAL", "INICIO", "FIN", "MOTIVO", "DEPARTAMENTO", "SERVICIO"}
	header = append(header, extras...)
	header = append(header, "cancelled_session_count", "method")

	rows := make([][]string, 0, len(r.Impacts))
	for _, impact := range r.Impacts {
		row := []string{
			impact.Professional,
			impact.StartDate.Format(time.DateOnly),
			impact.EndDate.Format(time.DateOnly),
			impact.Reason,
			impact.Department,
			impact.Service,
		}
		for _, k := range extras {
			row = append(row, impact.Extra[k])
		}
		row = append(row, strconv.Itoa(impact.CancelledSessions), impact.Method)
		rows = append(rows, row)
	}
	return header, rows
}
