package models

import "time"

// Member represents a client of the trainer
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WhatsApp  string    `json:"whatsapp"`
	CreatedAt time.Time `json:"created_at"`
}

// Group represents a named set of members who train together
type Group struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Color         string   `json:"color"`
	MemberIDs     []string `json:"member_ids"`
	SessionsTotal int      `json:"sessions_total"` // default batch size for sessions created with the group
}

// HasMember reports whether the group contains the given member
func (g Group) HasMember(memberID string) bool {
	for _, id := range g.MemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}
