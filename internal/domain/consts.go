package domain

import (
	"strings"
	"time"
)

// Weekday is an ISO 8601 weekday number (Monday = 1, Sunday = 7)
type Weekday int

// ISO 8601 weekday constants and mappings
const (
	Monday    Weekday = 1
	Tuesday   Weekday = 2
	Wednesday Weekday = 3
	Thursday  Weekday = 4
	Friday    Weekday = 5
	Saturday  Weekday = 6
	Sunday    Weekday = 7
)

// AllWeekdays lists every weekday in ISO order
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// WeekdayLabels maps ISO 8601 weekday numbers to the names used in the source spreadsheets
var WeekdayLabels = map[Weekday]string{
	Monday:    "Lunes",
	Tuesday:   "Martes",
	Wednesday: "Miércoles",
	Thursday:  "Jueves",
	Friday:    "Viernes",
	Saturday:  "Sábado",
	Sunday:    "Domingo",
}

// weekdayLookup resolves upper-cased weekday text. Accented and unaccented
// spellings are both listed because the sheets are typed by hand.
var weekdayLookup = map[string]Weekday{
	"LUNES":     Monday,
	"LUN":       Monday,
	"MONDAY":    Monday,
	"MARTES":    Tuesday,
	"MAR":       Tuesday,
	"TUESDAY":   Tuesday,
	"MIÉRCOLES": Wednesday,
	"MIERCOLES": Wednesday,
	"MIÉ":       Wednesday,
	"MIE":       Wednesday,
	"WEDNESDAY": Wednesday,
	"JUEVES":    Thursday,
	"JUE":       Thursday,
	"THURSDAY":  Thursday,
	"VIERNES":   Friday,
	"VIE":       Friday,
	"FRIDAY":    Friday,
	"SÁBADO":    Saturday,
	"SABADO":    Saturday,
	"SÁB":       Saturday,
	"SAB":       Saturday,
	"SATURDAY":  Saturday,
	"DOMINGO":   Sunday,
	"DOM":       Sunday,
	"SUNDAY":    Sunday,
	"1":         Monday,
	"2":         Tuesday,
	"3":         Wednesday,
	"4":         Thursday,
	"5":         Friday,
	"6":         Saturday,
	"7":         Sunday,
}

// ParseWeekday resolves weekday text to its ISO number. The second value is
// false when the text is not a known weekday name.
func ParseWeekday(text string) (Weekday, bool) {
	key := NormalizeKey(text)
	if day, ok := weekdayLookup[key]; ok {
		return day, true
	}
	// decomposed accents ("E" + U+0301) only match once folded
	day, ok := weekdayLookup[FoldAccents(key)]
	return day, ok
}

// WeekdayOf returns the ISO weekday of t
func WeekdayOf(t time.Time) Weekday {
	wd := t.Weekday()
	if wd == time.Sunday { // Sunday = 0 in Go, but we want 7 for ISO 8601
		return Sunday
	}
	return Weekday(wd)
}

// IsValid reports whether w is between Monday and Sunday
func (w Weekday) IsValid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if name, ok := WeekdayNames[w]; ok {
		return name
	}
	return "Unknown"
}

// monthLookup resolves upper-cased month names used by the period selectors
var monthLookup = map[string]time.Month{
	"ENERO":      time.January,
	"FEBRERO":    time.February,
	"MARZO":      time.March,
	"ABRIL":      time.April,
	"MAYO":       time.May,
	"JUNIO":      time.June,
	"JULIO":      time.July,
	"AGOSTO":     time.August,
	"SEPTIEMBRE": time.September,
	"SETIEMBRE":  time.September,
	"OCTUBRE":    time.October,
	"NOVIEMBRE":  time.November,
	"DICIEMBRE":  time.December,
	"JANUARY":    time.January,
	"FEBRUARY":   time.February,
	"MARCH":      time.March,
	"APRIL":      time.April,
	"MAY":        time.May,
	"JUNE":       time.June,
	"JULY":       time.July,
	"AUGUST":     time.August,
	"SEPTEMBER":  time.September,
	"OCTOBER":    time.October,
	"NOVEMBER":   time.November,
	"DECEMBER":   time.December,
}

// MonthLabels maps months to the Spanish names shown in reports
var MonthLabels = map[time.Month]string{
	time.January:   "Enero",
	time.February:  "Febrero",
	time.March:     "Marzo",
	time.April:     "Abril",
	time.May:       "Mayo",
	time.June:      "Junio",
	time.July:      "Julio",
	time.August:    "Agosto",
	time.September: "Septiembre",
	time.October:   "Octubre",
	time.November:  "Noviembre",
	time.December:  "Diciembre",
}

// ParseMonth resolves a Spanish or English month name
func ParseMonth(text string) (time.Month, bool) {
	m, ok := monthLookup[NormalizeKey(text)]
	return m, ok
}

// NormalizeKey trims s and converts it to upper case
func NormalizeKey(s string) string {
	return upperCaser().String(strings.TrimSpace(s))
}

// DefaultDigestDays represents Monday through Friday in ISO format
var DefaultDigestDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// Count methods for a leave's cancelled sessions
const (
	MethodSchedule     = "schedule"
	MethodCalendarDays = "calendar_days"
)
