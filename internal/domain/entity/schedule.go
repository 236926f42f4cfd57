package entity

import "github.com/diegoclair/absence-report/internal/domain"

// ScheduleRow is a recurring schedule row as read from the source sheet
type ScheduleRow struct {
	Professional string
	Weekday      string
}

// ScheduleEntry is a resolved schedule row. Repeated entries are separate sessions.
type ScheduleEntry struct {
	Professional string         `json:"professional"`
	Weekday      domain.Weekday `json:"weekday"`
}
