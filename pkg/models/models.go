package models

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type WeekdaySessions struct {
	Weekday  int    `json:"weekday"` // ISO 8601, Monday = 1
	Name     string `json:"name"`
	Label    string `json:"label"`
	Sessions int    `json:"sessions"`
}

type ScheduleResponse struct {
	Professional   string            `json:"professional"`
	Found          bool              `json:"found"`
	WeeklySessions int               `json:"weekly_sessions"`
	Weekdays       []WeekdaySessions `json:"weekdays"`
}

type ReportRun struct {
	ID              string          `json:"id"`
	GeneratedAt     time.Time       `json:"generated_at"`
	Filters         json.RawMessage `json:"filters"`
	Records         int             `json:"records"`
	InvalidRecords  int             `json:"invalid_records"`
	FallbackRecords int             `json:"fallback_records"`
	TotalCancelled  int             `json:"total_cancelled"`
}

type RunsResponse struct {
	Runs []ReportRun `json:"runs"`
}
