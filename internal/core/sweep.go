package core

import (
	"time"

	"github.com/aslanbek/fitlog/internal/models"
)

// SweepResult reports what a sweep (or a manual completion) changed, so
// callers can skip the persistence write after a no-op sweep instead of
// comparing serialized snapshots.
type SweepResult struct {
	CompletedEventIDs  []string
	Debits             []Debit
	ExhaustedMemberIDs []string // members charged while out of credit
}

// Changed reports whether the sweep produced a new snapshot
func (r SweepResult) Changed() bool {
	return len(r.CompletedEventIDs) > 0
}

// ApplyCompletionSweep marks every scheduled event whose end instant has
// passed as completed and debits the affected members' credit batches, one
// credit per member per newly completed occurrence. Events already completed
// or skipped are never revisited, so sweeping twice with the same instant
// changes nothing the second time. An event ending exactly at now counts as
// elapsed.
func ApplyCompletionSweep(snap models.Snapshot, now time.Time) (models.Snapshot, SweepResult) {
	var newlyCompleted []models.Event
	events := append([]models.Event(nil), snap.Events...)
	for i, ev := range events {
		if ev.Status != models.StatusScheduled {
			continue
		}
		end, ok := eventEnd(ev)
		if !ok || end.After(now) {
			continue
		}
		events[i].Status = models.StatusCompleted
		newlyCompleted = append(newlyCompleted, events[i])
	}
	if len(newlyCompleted) == 0 {
		return snap, SweepResult{}
	}
	return finishCompletion(snap, events, newlyCompleted)
}

// MarkCompleted completes a single scheduled occurrence by hand, applying
// the same ledger rules as the sweep regardless of the event's time.
func MarkCompleted(snap models.Snapshot, eventID string) (models.Snapshot, SweepResult, error) {
	events := append([]models.Event(nil), snap.Events...)
	idx := -1
	for i, ev := range events {
		if ev.ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return snap, SweepResult{}, ErrEventNotFound
	}
	if events[idx].Status != models.StatusScheduled {
		return snap, SweepResult{}, ErrNotScheduled
	}
	events[idx].Status = models.StatusCompleted

	next, result := finishCompletion(snap, events, []models.Event{events[idx]})
	return next, result, nil
}

// MarkSkipped marks a scheduled occurrence as skipped. No ledger effect.
func MarkSkipped(snap models.Snapshot, eventID string) (models.Snapshot, error) {
	events := append([]models.Event(nil), snap.Events...)
	for i, ev := range events {
		if ev.ID != eventID {
			continue
		}
		if ev.Status != models.StatusScheduled {
			return snap, ErrNotScheduled
		}
		events[i].Status = models.StatusSkipped
		next := snap
		next.Events = events
		return next, nil
	}
	return snap, ErrEventNotFound
}

func finishCompletion(snap models.Snapshot, events []models.Event, completed []models.Event) (models.Snapshot, SweepResult) {
	sessions, debits, exhausted := applyDebits(snap, completed)

	ids := make([]string, len(completed))
	for i, ev := range completed {
		ids[i] = ev.ID
	}

	next := snap
	next.Events = events
	next.Sessions = sessions
	return next, SweepResult{
		CompletedEventIDs:  ids,
		Debits:             debits,
		ExhaustedMemberIDs: exhausted,
	}
}

// eventEnd computes the occurrence's end instant in local time. Events with
// malformed date or time fields never qualify for completion.
func eventEnd(ev models.Event) (time.Time, bool) {
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, ev.Date+" "+ev.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return start.Add(time.Duration(ev.DurationMinutes) * time.Minute), true
}
