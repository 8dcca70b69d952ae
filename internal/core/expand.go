package core

import (
	"fmt"
	"time"

	"github.com/aslanbek/fitlog/internal/models"
)

// DateLayout and TimeLayout are the formats events and series store their
// naive local date and wall-clock time in.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// maxExpansionDays caps the calendar walk at roughly ten years so a
// malformed rule cannot loop forever.
const maxExpansionDays = 3660

// SeriesRule is the input to ExpandSeries
type SeriesRule struct {
	Type            string // models.TypePerson or models.TypeGroup
	MemberID        string
	GroupID         string
	Weekdays        []int // Sunday=0
	StartDate       string
	Time            string
	DurationMinutes int
	SessionsTotal   int
	Notes           string
}

// ExpandSeries turns a recurrence rule into the series record plus exactly
// SessionsTotal scheduled events, walking forward one calendar day at a time
// from StartDate (inclusive) and emitting an event for every day whose
// weekday is in the rule's set. Events come back in ascending date order and
// share one freshly generated series id. Invalid rules are rejected before
// anything is generated.
func ExpandSeries(rule SeriesRule) (models.Series, []models.Event, error) {
	if err := validateRule(rule); err != nil {
		return models.Series{}, nil, err
	}

	start, err := time.ParseInLocation(DateLayout, rule.StartDate, time.Local)
	if err != nil {
		return models.Series{}, nil, fmt.Errorf("invalid start date %q: %w", rule.StartDate, err)
	}
	if _, err := time.Parse(TimeLayout, rule.Time); err != nil {
		return models.Series{}, nil, fmt.Errorf("invalid time %q: %w", rule.Time, err)
	}

	wanted := make(map[time.Weekday]bool, len(rule.Weekdays))
	for _, d := range rule.Weekdays {
		wanted[time.Weekday(d)] = true
	}

	series := models.Series{
		ID:              models.NewID(),
		Type:            rule.Type,
		MemberID:        rule.MemberID,
		GroupID:         rule.GroupID,
		Weekdays:        append([]int(nil), rule.Weekdays...),
		StartDate:       rule.StartDate,
		Time:            rule.Time,
		DurationMinutes: rule.DurationMinutes,
		SessionsTotal:   rule.SessionsTotal,
		Notes:           rule.Notes,
	}

	events := make([]models.Event, 0, rule.SessionsTotal)
	day := start
	for i := 0; len(events) < rule.SessionsTotal; i++ {
		if i >= maxExpansionDays {
			return models.Series{}, nil, ErrRuleTooSparse
		}
		if wanted[day.Weekday()] {
			events = append(events, models.Event{
				ID:              models.NewID(),
				Type:            rule.Type,
				MemberID:        rule.MemberID,
				GroupID:         rule.GroupID,
				Date:            day.Format(DateLayout),
				Time:            rule.Time,
				DurationMinutes: rule.DurationMinutes,
				Notes:           rule.Notes,
				Status:          models.StatusScheduled,
				SeriesID:        series.ID,
			})
		}
		day = day.AddDate(0, 0, 1)
	}

	return series, events, nil
}

func validateRule(rule SeriesRule) error {
	if len(rule.Weekdays) == 0 {
		return ErrNoWeekdays
	}
	for _, d := range rule.Weekdays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: got %d", ErrBadWeekday, d)
		}
	}
	if rule.SessionsTotal <= 0 {
		return ErrNoOccurrences
	}
	if rule.DurationMinutes <= 0 {
		return ErrBadDuration
	}
	switch rule.Type {
	case models.TypePerson:
		if rule.MemberID == "" || rule.GroupID != "" {
			return ErrBadSubject
		}
	case models.TypeGroup:
		if rule.GroupID == "" || rule.MemberID != "" {
			return ErrBadSubject
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrBadSubject, rule.Type)
	}
	return nil
}
