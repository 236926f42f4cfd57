package entity

import "time"

// SourceSnapshot is the cached body of a fetched source
type SourceSnapshot struct {
	ID          int64     `json:"id" db:"id"`
	Location    string    `json:"location" db:"location"`
	ContentType string    `json:"content_type" db:"content_type"`
	Body        []byte    `json:"-" db:"body"`
	FetchedAt   time.Time `json:"fetched_at" db:"fetched_at"`
}

// ReportRun records one impact computation
type ReportRun struct {
	ID              string    `json:"id" db:"id"`
	GeneratedAt     time.Time `json:"generated_at" db:"generated_at"`
	Filters         string    `json:"filters" db:"filters"` // JSON encoded report options
	Records         int       `json:"records" db:"records"`
	InvalidRecords  int       `json:"invalid_records" db:"invalid_records"`
	FallbackRecords int       `json:"fallback_records" db:"fallback_records"`
	TotalCancelled  int       `json:"total_cancelled" db:"total_cancelled"`
}
