package models

import "github.com/google/uuid"

// Profile holds the trainer's own details
type Profile struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
}

// Settings holds per-install defaults applied when flags are omitted
type Settings struct {
	DefaultDurationMinutes int `json:"default_duration_minutes"`
	DefaultSessionsTotal   int `json:"default_sessions_total"`
}

// Snapshot is the whole application state. Core operations take a snapshot
// and return a new one; they never mutate their input in place.
type Snapshot struct {
	Members  []Member  `json:"members"`
	Groups   []Group   `json:"groups"`
	Events   []Event   `json:"events"`
	Series   []Series  `json:"series"`
	Sessions []Session `json:"sessions"`
	Profile  Profile   `json:"profile"`
	Settings Settings  `json:"settings"`
}

// EmptySnapshot returns the state a fresh install starts from
func EmptySnapshot() Snapshot {
	return Snapshot{
		Settings: Settings{
			DefaultDurationMinutes: 60,
			DefaultSessionsTotal:   8,
		},
	}
}

// NewID generates an identifier unique within the application's lifetime
func NewID() string {
	return uuid.NewString()
}

// MemberByID returns the member with the given id, if present
func (s Snapshot) MemberByID(id string) (Member, bool) {
	for _, m := range s.Members {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// MemberByName returns the first member whose name matches exactly
func (s Snapshot) MemberByName(name string) (Member, bool) {
	for _, m := range s.Members {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// GroupByID returns the group with the given id, if present
func (s Snapshot) GroupByID(id string) (Group, bool) {
	for _, g := range s.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

// GroupByName returns the first group whose name matches exactly
func (s Snapshot) GroupByName(name string) (Group, bool) {
	for _, g := range s.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// EventByID returns the event with the given id, if present
func (s Snapshot) EventByID(id string) (Event, bool) {
	for _, e := range s.Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// RemainingCredits sums the remaining credit across all of a member's batches
func (s Snapshot) RemainingCredits(memberID string) int {
	total := 0
	for _, sess := range s.Sessions {
		if sess.MemberID == memberID {
			total += sess.Remaining
		}
	}
	return total
}
