package entity

import "time"

// LeaveRecord is one absence of a professional over the closed range [StartDate, EndDate]
type LeaveRecord struct {
	Professional string            `json:"professional"`
	StartDate    time.Time         `json:"start_date"`
	EndDate      time.Time         `json:"end_date"`
	Reason       string            `json:"reason"`
	Department   string            `json:"department"`
	Service      string            `json:"service"`
	Extra        map[string]string `json:"extra,omitempty"` // pass-through columns
}

// CalendarDays is the inclusive number of days covered by the leave
func (l LeaveRecord) CalendarDays() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

// LeaveImpact is a leave record with its cancelled session count attached
type LeaveImpact struct {
	LeaveRecord
	CancelledSessions int    `json:"cancelled_session_count"`
	Method            string `json:"method"`
}
