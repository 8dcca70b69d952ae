package core

import "github.com/aslanbek/fitlog/internal/models"

// DeleteMember removes a member and everything hanging off them: their
// events, series and credit batches, plus their membership in every group.
// A group left with no members is removed too, together with the events and
// series that referenced it. Group cleanup runs after membership removal;
// the order matters and must stay this way.
func DeleteMember(snap models.Snapshot, memberID string) models.Snapshot {
	next := snap

	members := make([]models.Member, 0, len(snap.Members))
	for _, m := range snap.Members {
		if m.ID != memberID {
			members = append(members, m)
		}
	}
	next.Members = members

	events := make([]models.Event, 0, len(snap.Events))
	for _, ev := range snap.Events {
		if ev.MemberID != memberID {
			events = append(events, ev)
		}
	}
	next.Events = events

	series := make([]models.Series, 0, len(snap.Series))
	for _, sr := range snap.Series {
		if sr.MemberID != memberID {
			series = append(series, sr)
		}
	}
	next.Series = series

	sessions := make([]models.Session, 0, len(snap.Sessions))
	for _, sess := range snap.Sessions {
		if sess.MemberID != memberID {
			sessions = append(sessions, sess)
		}
	}
	next.Sessions = sessions

	// Drop the member from every group; a group emptied by this becomes
	// meaningless and goes away with everything that referenced it.
	var emptied []string
	groups := make([]models.Group, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		kept := make([]string, 0, len(g.MemberIDs))
		for _, id := range g.MemberIDs {
			if id != memberID {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			emptied = append(emptied, g.ID)
			continue
		}
		g.MemberIDs = kept
		groups = append(groups, g)
	}
	next.Groups = groups

	for _, groupID := range emptied {
		next = removeGroupReferences(next, groupID)
	}
	return next
}

// DeleteGroup removes a group along with every event and series that
// referenced it, so no live record keeps a dangling group id.
func DeleteGroup(snap models.Snapshot, groupID string) models.Snapshot {
	next := snap
	groups := make([]models.Group, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		if g.ID != groupID {
			groups = append(groups, g)
		}
	}
	next.Groups = groups
	return removeGroupReferences(next, groupID)
}

func removeGroupReferences(snap models.Snapshot, groupID string) models.Snapshot {
	next := snap

	events := make([]models.Event, 0, len(snap.Events))
	for _, ev := range snap.Events {
		if ev.GroupID != groupID {
			events = append(events, ev)
		}
	}
	next.Events = events

	series := make([]models.Series, 0, len(snap.Series))
	for _, sr := range snap.Series {
		if sr.GroupID != groupID {
			series = append(series, sr)
		}
	}
	next.Series = series
	return next
}

// DeleteEvent removes a single occurrence. No ledger effect: a completed
// event's debit stays applied.
func DeleteEvent(snap models.Snapshot, eventID string) models.Snapshot {
	next := snap
	events := make([]models.Event, 0, len(snap.Events))
	for _, ev := range snap.Events {
		if ev.ID != eventID {
			events = append(events, ev)
		}
	}
	next.Events = events
	return next
}
