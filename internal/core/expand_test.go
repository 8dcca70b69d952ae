package core

import (
	"errors"
	"testing"

	"github.com/aslanbek/fitlog/internal/models"
)

func TestExpandSeries(t *testing.T) {
	tests := []struct {
		name      string
		rule      SeriesRule
		wantErr   error
		wantDates []string
	}{
		{
			name: "monday wednesday from a monday",
			rule: SeriesRule{
				Type:            models.TypePerson,
				MemberID:        "m1",
				Weekdays:        []int{1, 3},
				StartDate:       "2024-01-01", // a Monday
				Time:            "09:00",
				DurationMinutes: 60,
				SessionsTotal:   3,
			},
			wantDates: []string{"2024-01-01", "2024-01-03", "2024-01-08"},
		},
		{
			name: "start date itself counts when it matches",
			rule: SeriesRule{
				Type:            models.TypeGroup,
				GroupID:         "g1",
				Weekdays:        []int{0},     // Sundays
				StartDate:       "2024-01-07", // a Sunday
				Time:            "18:30",
				DurationMinutes: 45,
				SessionsTotal:   2,
			},
			wantDates: []string{"2024-01-07", "2024-01-14"},
		},
		{
			name: "every day of the week",
			rule: SeriesRule{
				Type:            models.TypePerson,
				MemberID:        "m1",
				Weekdays:        []int{0, 1, 2, 3, 4, 5, 6},
				StartDate:       "2024-02-27",
				Time:            "07:00",
				DurationMinutes: 30,
				SessionsTotal:   4,
			},
			wantDates: []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name: "empty weekday set rejected",
			rule: SeriesRule{
				Type:            models.TypePerson,
				MemberID:        "m1",
				StartDate:       "2024-01-01",
				Time:            "09:00",
				DurationMinutes: 60,
				SessionsTotal:   3,
			},
			wantErr: ErrNoWeekdays,
		},
		{
			name: "weekday out of range rejected",
			rule: SeriesRule{
				Type:            models.TypePerson,
				MemberID:        "m1",
				Weekdays:        []int{7},
				StartDate:       "2024-01-01",
				Time:            "09:00",
				DurationMinutes: 60,
				SessionsTotal:   3,
			},
			wantErr: ErrBadWeekday,
		},
		{
			name: "zero occurrences rejected",
			rule: SeriesRule{
				Type:            models.TypePerson,
				MemberID:        "m1",
				Weekdays:        []int{1},
				StartDate:       "2024-01-01",
				Time:            "09:00",
				DurationMinutes: 60,
				SessionsTotal:   0,
			},
			wantErr: ErrNoOccurrences,
		},
		{
			name: "non-positive duration rejected",
			rule: SeriesRule{
				Type:            models.TypePerson,
				MemberID:        "m1",
				Weekdays:        []int{1},
				StartDate:       "2024-01-01",
				Time:            "09:00",
				DurationMinutes: 0,
				SessionsTotal:   3,
			},
			wantErr: ErrBadDuration,
		},
		{
			name: "person rule with group id rejected",
			rule: SeriesRule{
				Type:            models.TypePerson,
				MemberID:        "m1",
				GroupID:         "g1",
				Weekdays:        []int{1},
				StartDate:       "2024-01-01",
				Time:            "09:00",
				DurationMinutes: 60,
				SessionsTotal:   1,
			},
			wantErr: ErrBadSubject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, events, err := ExpandSeries(tt.rule)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ExpandSeries() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExpandSeries() unexpected error: %v", err)
			}
			if len(events) != tt.rule.SessionsTotal {
				t.Fatalf("got %d events, want %d", len(events), tt.rule.SessionsTotal)
			}
			for i, ev := range events {
				if ev.Date != tt.wantDates[i] {
					t.Errorf("event %d date = %s, want %s", i, ev.Date, tt.wantDates[i])
				}
				if ev.Status != models.StatusScheduled {
					t.Errorf("event %d status = %s, want scheduled", i, ev.Status)
				}
				if ev.SeriesID != series.ID {
					t.Errorf("event %d series id = %s, want %s", i, ev.SeriesID, series.ID)
				}
				if ev.Time != tt.rule.Time || ev.DurationMinutes != tt.rule.DurationMinutes {
					t.Errorf("event %d did not inherit time/duration from the rule", i)
				}
			}
		})
	}
}

func TestExpandSeriesDeterministic(t *testing.T) {
	rule := SeriesRule{
		Type:            models.TypePerson,
		MemberID:        "m1",
		Weekdays:        []int{2, 5},
		StartDate:       "2025-06-01",
		Time:            "10:00",
		DurationMinutes: 60,
		SessionsTotal:   10,
	}

	_, first, err := ExpandSeries(rule)
	if err != nil {
		t.Fatalf("ExpandSeries() error: %v", err)
	}
	_, second, err := ExpandSeries(rule)
	if err != nil {
		t.Fatalf("ExpandSeries() error: %v", err)
	}

	for i := range first {
		if first[i].Date != second[i].Date || first[i].Time != second[i].Time {
			t.Errorf("occurrence %d differs between runs: %s vs %s", i, first[i].Date, second[i].Date)
		}
	}
}

func TestExpandSeriesCeiling(t *testing.T) {
	// Valid weekday set, but rejected before the walk can matter: the only
	// way to exceed the ceiling with a non-empty set is a count that needs
	// more than ten years of matching days.
	rule := SeriesRule{
		Type:            models.TypePerson,
		MemberID:        "m1",
		Weekdays:        []int{1},
		StartDate:       "2024-01-01",
		Time:            "09:00",
		DurationMinutes: 60,
		SessionsTotal:   1000, // ~19 years of Mondays
	}
	_, _, err := ExpandSeries(rule)
	if !errors.Is(err, ErrRuleTooSparse) {
		t.Fatalf("ExpandSeries() error = %v, want ErrRuleTooSparse", err)
	}
}
