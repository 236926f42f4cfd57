package source

import (
	"testing"
	"time"

	"github.com/diegoclair/absence-report/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeaves(t *testing.T) {
	table := &entity.Table{
		Columns: []string{"Profesional", "Fecha Inicio", "Fecha Fin", "Motivo", "Departamento", "Servicio", "Sede"},
		Rows: [][]string{
			{" Smith ", "04/03/2024", "10/03/2024", "Enfermedad", "Clínica", "Cardiología", "Centro"},
			{"Jones", "2024-03-11", "12/03/2024 00:00:00", "Vacaciones", "Clínica", "Pediatría", "Norte"},
			{"Nobody", "", "10/03/2024", "", "", "", ""},
			{"Typo", "31/02/2024", "10/03/2024"},
		},
	}

	records, skipped, err := ParseLeaves(table, DefaultLeaveColumns)
	require.NoError(t, err)

	assert.Equal(t, 2, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, entity.LeaveRecord{
		Professional: "Smith",
		StartDate:    time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Reason:       "Enfermedad",
		Department:   "Clínica",
		Service:      "Cardiología",
		Extra:        map[string]string{"Sede": "Centro"},
	}, records[0])
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), records[1].StartDate)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), records[1].EndDate)
}

func TestParseLeaves_OptionalColumns(t *testing.T) {
	table := &entity.Table{
		Columns: []string{"PROFESSIONAL", "START_DATE", "END_DATE"},
		Rows:    [][]string{{"A", "01/01/2024", "02/01/2024"}},
	}

	records, skipped, err := ParseLeaves(table, DefaultLeaveColumns)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Department)
	assert.Nil(t, records[0].Extra)
}

func TestParseLeaves_MissingColumn(t *testing.T) {
	table := &entity.Table{Columns: []string{"PROFESIONAL", "INICIO"}}

	_, _, err := ParseLeaves(table, DefaultLeaveColumns)
	assert.ErrorIs(t, err, ErrMissingLeaveColumn)

	_, _, err = ParseLeaves(nil, DefaultLeaveColumns)
	assert.ErrorIs(t, err, ErrMissingLeaveColumn)
}
