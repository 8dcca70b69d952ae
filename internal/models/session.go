package models

import "time"

// Session represents one prepaid batch of training credits for a member.
// A member may hold any number of batches; debits drain the oldest batch
// with remaining credit first.
type Session struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"member_id"`
	Total     int       `json:"total"`
	Remaining int       `json:"remaining"` // 0 <= Remaining <= Total
	CreatedAt time.Time `json:"created_at"`
}
