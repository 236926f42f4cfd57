package agenda

import (
	"errors"
	"fmt"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/entity"
)

// ErrMissingScheduleColumn is returned when the schedule table lacks a required column.
// Callers treat the whole schedule as empty.
var ErrMissingScheduleColumn = errors.New("missing schedule column")

// ScheduleColumns lists the accepted header names for each schedule column
type ScheduleColumns struct {
	Professional []string
	Weekday      []string
}

// DefaultScheduleColumns are the headers used by the published schedule sheet
var DefaultScheduleColumns = ScheduleColumns{
	Professional: []string{"PROFESIONAL", "PROFESSIONAL", "PROFESSIONAL_IDENTIFIER", "MEDICO"},
	Weekday:      []string{"DIA", "DIA_SEMANA", "WEEKDAY", "WEEKDAY_NAME"},
}

// Index maps a normalized professional to the number of sessions held on each weekday.
// It is read-only once built and may be shared between goroutines.
type Index struct {
	entries map[string]map[domain.Weekday]int
}

// NormalizeProfessional trims the identifier and upper-cases it
func NormalizeProfessional(id string) string {
	return domain.NormalizeKey(id)
}

// BuildIndex builds the index from raw schedule rows. Rows with unknown weekday text are skipped.
func BuildIndex(rows []entity.ScheduleRow) *Index {
	idx := &Index{entries: make(map[string]map[domain.Weekday]int)}
	for _, row := range rows {
		day, ok := domain.ParseWeekday(row.Weekday)
		if !ok {
			continue
		}
		idx.add(entity.ScheduleEntry{
			Professional: NormalizeProfessional(row.Professional),
			Weekday:      day,
		})
	}
	return idx
}

// BuildIndexFromTable reads the professional and weekday columns from t and builds the index
func BuildIndexFromTable(t *entity.Table, cols ScheduleColumns) (*Index, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: empty table", ErrMissingScheduleColumn)
	}

	profCol, ok := t.Column(cols.Professional...)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMissingScheduleColumn, cols.Professional)
	}
	dayCol, ok := t.Column(cols.Weekday...)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMissingScheduleColumn, cols.Weekday)
	}

	rows := make([]entity.ScheduleRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, entity.ScheduleRow{
			Professional: t.Value(r, profCol),
			Weekday:      t.Value(r, dayCol),
		})
	}

	return BuildIndex(rows), nil
}

func (idx *Index) add(e entity.ScheduleEntry) {
	days, ok := idx.entries[e.Professional]
	if !ok {
		days = make(map[domain.Weekday]int)
		idx.entries[e.Professional] = days
	}
	days[e.Weekday]++
}

// Has reports whether the professional has a recurring schedule
func (idx *Index) Has(professional string) bool {
	if idx == nil {
		return false
	}
	_, ok := idx.entries[NormalizeProfessional(professional)]
	return ok
}

// Occurrences returns how many sessions the professional holds on the weekday, zero if none
func (idx *Index) Occurrences(professional string, day domain.Weekday) int {
	if idx == nil {
		return 0
	}
	return idx.entries[NormalizeProfessional(professional)][day]
}

// Total returns the number of weekly sessions of the professional
func (idx *Index) Total(professional string) int {
	if idx == nil {
		return 0
	}
	total := 0
	for _, n := range idx.entries[NormalizeProfessional(professional)] {
		total += n
	}
	return total
}

// Weekdays returns a copy of the professional's weekday counts
func (idx *Index) Weekdays(professional string) map[domain.Weekday]int {
	out := make(map[domain.Weekday]int)
	if idx == nil {
		return out
	}
	for day, n := range idx.entries[NormalizeProfessional(professional)] {
		out[day] = n
	}
	return out
}

// Len returns the number of indexed professionals
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.entries)
}
