package contract

import (
	"context"

	"github.com/diegoclair/absence-report/internal/domain/entity"
)

// TableFetcher loads a published spreadsheet as a table
type TableFetcher interface {
	Fetch(ctx context.Context, location string) (*entity.Table, error)
}

// Downloader returns the raw content of a published spreadsheet
type Downloader interface {
	Download(ctx context.Context, location string) (*entity.SourceSnapshot, error)
}
