package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/absence-report/internal/domain/entity"
	"github.com/sony/gobreaker/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedSource = errors.New("unsupported source")
	ErrEmptyTable        = errors.New("source has no rows")
	ErrSourceUnavailable = errors.New("source temporarily unavailable")
)

// a host is skipped for breakerTimeout after breakerFailures consecutive failures
const (
	breakerFailures = 5
	breakerTimeout  = time.Minute
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Fetcher downloads published spreadsheets (CSV or XLSX) over HTTP or reads them from disk
type Fetcher struct {
	client *http.Client
	logger *zap.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[*entity.SourceSnapshot]
}

func NewFetcher(client *http.Client, logger *zap.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Fetcher{
		client:   client,
		logger:   logger,
		breakers: make(map[string]*gobreaker.CircuitBreaker[*entity.SourceSnapshot]),
	}
}

// breaker returns the circuit breaker of the location's host, creating it if needed
func (f *Fetcher) breaker(location string) *gobreaker.CircuitBreaker[*entity.SourceSnapshot] {
	host := location
	if u, err := url.Parse(location); err == nil && u.Host != "" {
		host = u.Host
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if cb, ok := f.breakers[host]; ok {
		return cb
	}

	cb := gobreaker.NewCircuitBreaker[*entity.SourceSnapshot](gobreaker.Settings{
		Name:    host,
		Timeout: breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			f.logger.Warn("source circuit breaker state changed",
				zap.String("host", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	f.breakers[host] = cb
	return cb
}

// Fetch downloads the location and decodes it into a table
func (f *Fetcher) Fetch(ctx context.Context, location string) (*entity.Table, error) {
	snap, err := f.Download(ctx, location)
	if err != nil {
		return nil, err
	}
	return Decode(snap)
}

// Download returns the raw content of the location without decoding it
func (f *Fetcher) Download(ctx context.Context, location string) (*entity.SourceSnapshot, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: empty location", ErrUnsupportedSource)
	}

	if !isRemote(location) {
		body, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", location, err)
		}
		return &entity.SourceSnapshot{
			Location:    location,
			ContentType: contentTypeFor(location, ""),
			Body:        body,
			FetchedAt:   time.Now().UTC(),
		}, nil
	}

	snap, err := f.breaker(location).Execute(func() (*entity.SourceSnapshot, error) {
		return f.download(ctx, location)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, location)
	}
	return snap, err
}

func (f *Fetcher) download(ctx context.Context, location string) (*entity.SourceSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download source: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read source body: %w", err)
	}

	f.logger.Debug("source downloaded",
		zap.String("location", location),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &entity.SourceSnapshot{
		Location:    location,
		ContentType: contentTypeFor(location, resp.Header.Get("Content-Type")),
		Body:        body,
		FetchedAt:   time.Now().UTC(),
	}, nil
}

// Decode parses a snapshot body as CSV or XLSX. The first row is the header.
func Decode(snap *entity.SourceSnapshot) (*entity.Table, error) {
	var (
		records [][]string
		err     error
	)

	if snap.ContentType == contentTypeXLSX || isZip(snap.Body) {
		records, err = readXLSX(snap.Body)
	} else {
		records, err = readCSV(snap.Body)
	}
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTable, snap.Location)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	return &entity.Table{Columns: header, Rows: records[1:]}, nil
}

func readCSV(body []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(body))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return records, nil
}

func readXLSX(body []byte) ([][]string, error) {
	file, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%w: no worksheet found", ErrEmptyTable)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet: %w", err)
	}
	return rows, nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func isZip(body []byte) bool {
	return len(body) > 3 && body[0] == 'P' && body[1] == 'K' && body[2] == 3 && body[3] == 4
}

func contentTypeFor(location, header string) string {
	if strings.Contains(header, "spreadsheetml") {
		return contentTypeXLSX
	}
	if strings.Contains(location, "output=xlsx") || strings.EqualFold(filepath.Ext(location), ".xlsx") {
		return contentTypeXLSX
	}
	return contentTypeCSV
}
