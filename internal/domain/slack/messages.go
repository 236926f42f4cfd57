package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/report"
)

const dateLayout = "02/01/2006"

var groupLabels = map[report.GroupBy]string{
	report.GroupByDepartment:   "departamento",
	report.GroupByService:      "servicio",
	report.GroupByReason:       "motivo",
	report.GroupByProfessional: "profesional",
	report.GroupByMonth:        "mes",
}

// FormatSummary renders an impact report for the [from, to] window
func FormatSummary(r *report.ImpactReport, from, to time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📋 *Resumen de ausencias*\n\nDel %s al %s: *%d* sesiones canceladas en *%d* ausencias.",
		from.Format(dateLayout), to.Format(dateLayout), r.Total.CancelledSessions, r.Total.Records)

	if len(r.Groups) > 0 {
		fmt.Fprintf(&b, "\n\n*Por %s:*", groupLabels[r.Options.GroupBy])
		for _, g := range r.Groups {
			fmt.Fprintf(&b, "\n• %s: %d sesiones (%d ausencias)", g.Key, g.CancelledSessions, g.Records)
		}
	}

	writeNotes(&b, r)
	return b.String()
}

// FormatProfessional renders the leaves of a single professional
func FormatProfessional(name string, r *report.ImpactReport) string {
	if len(r.Impacts) == 0 {
		return fmt.Sprintf("No hay ausencias registradas para *%s*.", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👤 *%s*: %d ausencias, *%d* sesiones canceladas.\n",
		name, r.Total.Records, r.Total.CancelledSessions)

	for _, impact := range r.Impacts {
		fmt.Fprintf(&b, "\n• %s al %s", impact.StartDate.Format(dateLayout), impact.EndDate.Format(dateLayout))
		if impact.Reason != "" {
			fmt.Fprintf(&b, " (%s)", impact.Reason)
		}
		fmt.Fprintf(&b, ": %d sesiones", impact.CancelledSessions)
		if impact.Method == domain.MethodCalendarDays {
			b.WriteString(" _(días corridos)_")
		}
	}

	return b.String()
}

// FormatSchedule renders the weekly sessions of a professional
func FormatSchedule(name string, weekdays map[domain.Weekday]int, found bool) string {
	if !found {
		return fmt.Sprintf("*%s* no figura en la agenda. Sus ausencias se cuentan por días corridos.", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗓️ *Agenda de %s*\n", name)
	for _, day := range domain.AllWeekdays {
		if n := weekdays[day]; n > 0 {
			fmt.Fprintf(&b, "\n• %s: %d", domain.WeekdayLabels[day], n)
		}
	}
	return b.String()
}

func writeNotes(b *strings.Builder, r *report.ImpactReport) {
	if r.FallbackRecords > 0 {
		fmt.Fprintf(b, "\n\n_%d ausencias de profesionales sin agenda se contaron por días corridos._", r.FallbackRecords)
	}
	if r.InvalidRecords > 0 {
		fmt.Fprintf(b, "\n_%d ausencias con fechas invertidas quedaron fuera._", r.InvalidRecords)
	}
}
