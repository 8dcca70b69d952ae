package core

import (
	"sort"

	"github.com/aslanbek/fitlog/internal/models"
)

// Debit records one credit taken from one member's batch
type Debit struct {
	MemberID  string
	SessionID string
}

// applyDebits charges one credit per completed occurrence per affected
// member against the member's oldest batch with remaining credit. A group
// occurrence fans out to every member of the group at completion time; a
// member with no usable batch is recorded as exhausted and skipped rather
// than driven negative. Returns a fresh sessions slice; the input snapshot
// is not touched.
func applyDebits(snap models.Snapshot, completed []models.Event) ([]models.Session, []Debit, []string) {
	sessions := append([]models.Session(nil), snap.Sessions...)

	var debits []Debit
	var exhausted []string
	for _, ev := range completed {
		for _, memberID := range affectedMembers(snap, ev) {
			idx := oldestOpenBatch(sessions, memberID)
			if idx < 0 {
				exhausted = append(exhausted, memberID)
				continue
			}
			sessions[idx].Remaining--
			debits = append(debits, Debit{MemberID: memberID, SessionID: sessions[idx].ID})
		}
	}
	return sessions, debits, exhausted
}

// affectedMembers resolves which members an occurrence charges. A missing
// group is a referential gap, not an error: no member is charged.
func affectedMembers(snap models.Snapshot, ev models.Event) []string {
	switch ev.Type {
	case models.TypePerson:
		if ev.MemberID == "" {
			return nil
		}
		return []string{ev.MemberID}
	case models.TypeGroup:
		group, ok := snap.GroupByID(ev.GroupID)
		if !ok {
			return nil
		}
		return group.MemberIDs
	}
	return nil
}

// oldestOpenBatch picks the member's earliest-purchased batch that still has
// credit, breaking CreatedAt ties by id so repeated runs pick the same batch
func oldestOpenBatch(sessions []models.Session, memberID string) int {
	best := -1
	for i, sess := range sessions {
		if sess.MemberID != memberID || sess.Remaining <= 0 {
			continue
		}
		if best < 0 || olderBatch(sess, sessions[best]) {
			best = i
		}
	}
	return best
}

func olderBatch(a, b models.Session) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// SortBatches orders credit batches the way the ledger drains them,
// oldest purchase first
func SortBatches(sessions []models.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		return olderBatch(sessions[i], sessions[j])
	})
}
