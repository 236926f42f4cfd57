package source

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/entity"
)

// ErrMissingLeaveColumn is returned when the leave table lacks the professional or a date column
var ErrMissingLeaveColumn = errors.New("missing leave column")

// LeaveColumns lists the accepted header names for each leave column
type LeaveColumns struct {
	Professional []string
	Start        []string
	End          []string
	Reason       []string
	Department   []string
	Service      []string
}

// DefaultLeaveColumns are the headers used by the published leave sheet
var DefaultLeaveColumns = LeaveColumns{
	Professional: []string{"PROFESIONAL", "PROFESSIONAL", "PROFESSIONAL_IDENTIFIER", "MEDICO"},
	Start:        []string{"INICIO", "FECHA_INICIO", "DESDE", "START_DATE"},
	End:          []string{"FIN", "FECHA_FIN", "HASTA", "END_DATE"},
	Reason:       []string{"MOTIVO", "REASON"},
	Department:   []string{"DEPARTAMENTO", "DEPARTMENT"},
	Service:      []string{"SERVICIO", "SERVICE"},
}

// ParseLeaves reads leave records from t. Rows with a missing or unparseable
// date are left out and counted in skipped.
func ParseLeaves(t *entity.Table, cols LeaveColumns) (records []entity.LeaveRecord, skipped int, err error) {
	if t == nil {
		return nil, 0, fmt.Errorf("%w: empty table", ErrMissingLeaveColumn)
	}

	profCol, ok := t.Column(cols.Professional...)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %v", ErrMissingLeaveColumn, cols.Professional)
	}
	startCol, ok := t.Column(cols.Start...)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %v", ErrMissingLeaveColumn, cols.Start)
	}
	endCol, ok := t.Column(cols.End...)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %v", ErrMissingLeaveColumn, cols.End)
	}
	reasonCol, _ := t.Column(cols.Reason...)
	deptCol, _ := t.Column(cols.Department...)
	serviceCol, _ := t.Column(cols.Service...)

	known := map[int]bool{profCol: true, startCol: true, endCol: true, reasonCol: true, deptCol: true, serviceCol: true}

	records = make([]entity.LeaveRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		start, okStart := domain.ParseDate(t.Value(row, startCol))
		end, okEnd := domain.ParseDate(t.Value(row, endCol))
		if !okStart || !okEnd {
			skipped++
			continue
		}

		rec := entity.LeaveRecord{
			Professional: strings.TrimSpace(t.Value(row, profCol)),
			StartDate:    start,
			EndDate:      end,
			Reason:       strings.TrimSpace(t.Value(row, reasonCol)),
			Department:   strings.TrimSpace(t.Value(row, deptCol)),
			Service:      strings.TrimSpace(t.Value(row, serviceCol)),
		}

		for i, col := range t.Columns {
			if known[i] || col == "" {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[col] = t.Value(row, i)
		}

		records = append(records, rec)
	}

	return records, skipped, nil
}
