package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	march5 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		text   string
		want   time.Time
		wantOK bool
	}{
		{name: "Should parse day first with slashes", text: "05/03/2024", want: march5, wantOK: true},
		{name: "Should parse without leading zeros", text: "5/3/2024", want: march5, wantOK: true},
		{name: "Should parse two digit year", text: "05/03/24", want: march5, wantOK: true},
		{name: "Should parse dashes", text: "05-03-2024", want: march5, wantOK: true},
		{name: "Should parse ISO dates", text: "2024-03-05", want: march5, wantOK: true},
		{name: "Should drop the time of day", text: "05/03/2024 18:30:00", want: march5, wantOK: true},
		{name: "Should trim spaces", text: "  2024-03-05 ", want: march5, wantOK: true},
		{name: "Should reject empty text", text: "", wantOK: false},
		{name: "Should reject free text", text: "mañana", wantOK: false},
		{name: "Should reject impossible dates", text: "31/02/2024", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s", got)
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}
