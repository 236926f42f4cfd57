package agenda

import (
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/entity"
)

// ErrInvalidRange is returned for a leave whose end date is before its start date
var ErrInvalidRange = errors.New("leave ends before it starts")

// CancelledSessions counts the scheduled sessions that fall inside the leave.
// A professional without a recurring schedule falls back to the inclusive day count.
func CancelledSessions(leave entity.LeaveRecord, idx *Index) (int, string, error) {
	start := civilDate(leave.StartDate)
	end := civilDate(leave.EndDate)
	if end.Before(start) {
		return 0, "", fmt.Errorf("%w: %s to %s", ErrInvalidRange, start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	if !idx.Has(leave.Professional) {
		return daysBetween(start, end) + 1, domain.MethodCalendarDays, nil
	}

	total := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		total += idx.Occurrences(leave.Professional, domain.WeekdayOf(d))
	}

	return total, domain.MethodSchedule, nil
}

// Impacts computes the cancelled sessions of every leave. Leaves with an
// invalid range are returned apart and left out of the impacts.
func Impacts(leaves []entity.LeaveRecord, idx *Index) (impacts []entity.LeaveImpact, invalid []entity.LeaveRecord) {
	impacts = make([]entity.LeaveImpact, 0, len(leaves))
	for _, leave := range leaves {
		count, method, err := CancelledSessions(leave, idx)
		if err != nil {
			invalid = append(invalid, leave)
			continue
		}
		impacts = append(impacts, entity.LeaveImpact{
			LeaveRecord:       leave,
			CancelledSessions: count,
			Method:            method,
		})
	}
	return impacts, invalid
}

// civilDate drops the clock and location so that day arithmetic is not affected by DST
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
