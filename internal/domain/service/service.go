package service

import "errors"

// ErrSourceNotConfigured is returned when an operation needs a source location that is empty
var ErrSourceNotConfigured = errors.New("source not configured")

// ErrRunNotFound is returned when no report run has the requested ID
var ErrRunNotFound = errors.New("report run not found")

// Sources holds the locations (URL or local path) of the three datasets
type Sources struct {
	Schedule     string
	Leaves       string
	Appointments string
}
