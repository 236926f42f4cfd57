package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/domain/entity"
)

var (
	ErrEmptySelection = errors.New("select at least one option in each filter")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrUnknownGroup   = errors.New("unknown grouping")
	ErrUnknownPeriod  = errors.New("unknown period")
)

// GroupBy names the attribute used to aggregate leave impacts
type GroupBy string

const (
	GroupByDepartment   GroupBy = "department"
	GroupByService      GroupBy = "service"
	GroupByReason       GroupBy = "reason"
	GroupByProfessional GroupBy = "professional"
	GroupByMonth        GroupBy = "month"
)

// ParseGroupBy accepts the English names and their Spanish column names
func ParseGroupBy(s string) (GroupBy, error) {
	switch domain.NormalizeHeader(s) {
	case "", "DEPARTMENT", "DEPARTAMENTO":
		return GroupByDepartment, nil
	case "SERVICE", "SERVICIO":
		return GroupByService, nil
	case "REASON", "MOTIVO":
		return GroupByReason, nil
	case "PROFESSIONAL", "PROFESIONAL":
		return GroupByProfessional, nil
	case "MONTH", "MES", "PERIODO":
		return GroupByMonth, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownGroup, s)
	}
}

// Options is the filter configuration of one impact report. Every field is
// always set; empty lists mean "no filter" and zero dates an open window.
type Options struct {
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	Departments   []string  `json:"departments"`
	Services      []string  `json:"services"`
	Reasons       []string  `json:"reasons"`
	Professionals []string  `json:"professionals"`
	GroupBy       GroupBy   `json:"group_by"`
	Top           int       `json:"top"`

	// ClipToWindow counts only the sessions that fall inside [From, To]
	ClipToWindow bool `json:"clip_to_window"`
}

type Option func(*Options)

// NewOptions returns the default options with opts applied
func NewOptions(opts ...Option) Options {
	o := Options{
		Departments:   []string{},
		Services:      []string{},
		Reasons:       []string{},
		Professionals: []string{},
		GroupBy:       GroupByDepartment,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWindow keeps leaves overlapping [from, to]. A zero bound leaves that side open.
func WithWindow(from, to time.Time) Option {
	return func(o *Options) {
		o.From = from
		o.To = to
	}
}

func WithDepartments(values ...string) Option {
	return func(o *Options) { o.Departments = normalizeAll(values) }
}

func WithServices(values ...string) Option {
	return func(o *Options) { o.Services = normalizeAll(values) }
}

func WithReasons(values ...string) Option {
	return func(o *Options) { o.Reasons = normalizeAll(values) }
}

func WithProfessionals(values ...string) Option {
	return func(o *Options) { o.Professionals = normalizeAll(values) }
}

func WithGroupBy(g GroupBy) Option {
	return func(o *Options) { o.GroupBy = g }
}

// WithClipToWindow counts only the part of each leave inside the window
func WithClipToWindow() Option {
	return func(o *Options) { o.ClipToWindow = true }
}

// WithTop keeps only the n largest groups, 0 keeps all
func WithTop(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Top = n
		}
	}
}

// Matches reports whether the leave passes every filter
func (o Options) Matches(l entity.LeaveRecord) bool {
	if !o.From.IsZero() && l.EndDate.Before(o.From) {
		return false
	}
	if !o.To.IsZero() && l.StartDate.After(o.To) {
		return false
	}
	return contains(o.Departments, l.Department) &&
		contains(o.Services, l.Service) &&
		contains(o.Reasons, l.Reason) &&
		contains(o.Professionals, l.Professional)
}

func contains(allowed []string, value string) bool {
	if len(allowed) == 0 {
		return true
	}
	value = domain.NormalizeKey(value)
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

func normalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = domain.NormalizeKey(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
