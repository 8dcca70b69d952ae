package models

// Event type tags. A person event carries MemberID, a group event carries
// GroupID; the other field stays empty.
const (
	TypePerson = "person"
	TypeGroup  = "group"
)

// Event statuses. Completed and skipped are terminal; only scheduled events
// transition forward.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
)

// Event represents a single calendar occurrence of a training session
type Event struct {
	ID              string `json:"id"`
	Type            string `json:"type"` // person, group
	MemberID        string `json:"member_id,omitempty"`
	GroupID         string `json:"group_id,omitempty"`
	Date            string `json:"date"` // calendar date, 2006-01-02
	Time            string `json:"time"` // wall-clock time, 15:04
	DurationMinutes int    `json:"duration_minutes"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status"`
	SeriesID        string `json:"series_id,omitempty"` // weak back-reference, no integrity guarantee
}

// Series represents a recurrence rule, kept for record-keeping after its
// events have been generated. Deleting a series does not touch its events.
type Series struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	MemberID        string `json:"member_id,omitempty"`
	GroupID         string `json:"group_id,omitempty"`
	Weekdays        []int  `json:"weekdays"` // weekday ordinals, Sunday=0
	StartDate       string `json:"start_date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	SessionsTotal   int    `json:"sessions_total"` // occurrences generated, not a running counter
	Notes           string `json:"notes,omitempty"`
}
