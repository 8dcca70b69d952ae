package core

import (
	"testing"

	"github.com/aslanbek/fitlog/internal/models"
)

// cascadeSnapshot: member m1 referenced by two events, one series, one
// credit batch, and two groups - one shared with m2, one where m1 is the
// only member. The solo group has an event and a series of its own.
func cascadeSnapshot() models.Snapshot {
	snap := models.EmptySnapshot()
	snap.Members = []models.Member{{ID: "m1", Name: "Aigerim"}, {ID: "m2", Name: "Bekzat"}}
	snap.Groups = []models.Group{
		{ID: "shared", MemberIDs: []string{"m1", "m2"}},
		{ID: "solo", MemberIDs: []string{"m1"}},
	}
	snap.Events = []models.Event{
		{ID: "e1", Type: models.TypePerson, MemberID: "m1", Status: models.StatusScheduled},
		{ID: "e2", Type: models.TypePerson, MemberID: "m1", Status: models.StatusCompleted},
		{ID: "e3", Type: models.TypePerson, MemberID: "m2", Status: models.StatusScheduled},
		{ID: "e4", Type: models.TypeGroup, GroupID: "solo", Status: models.StatusScheduled},
		{ID: "e5", Type: models.TypeGroup, GroupID: "shared", Status: models.StatusScheduled},
	}
	snap.Series = []models.Series{
		{ID: "sr1", Type: models.TypePerson, MemberID: "m1"},
		{ID: "sr2", Type: models.TypeGroup, GroupID: "solo"},
		{ID: "sr3", Type: models.TypeGroup, GroupID: "shared"},
	}
	snap.Sessions = []models.Session{
		{ID: "s1", MemberID: "m1", Total: 10, Remaining: 5},
		{ID: "s2", MemberID: "m2", Total: 10, Remaining: 5},
	}
	return snap
}

func TestDeleteMemberCascade(t *testing.T) {
	snap := DeleteMember(cascadeSnapshot(), "m1")

	if _, ok := snap.MemberByID("m1"); ok {
		t.Fatal("member m1 should be gone")
	}
	if _, ok := snap.MemberByID("m2"); !ok {
		t.Fatal("member m2 must survive")
	}

	// m1's events, series and credit batches go away; m2's stay.
	wantEvents := map[string]bool{"e3": true, "e5": true}
	for _, ev := range snap.Events {
		if !wantEvents[ev.ID] {
			t.Errorf("event %s should have been removed", ev.ID)
		}
		delete(wantEvents, ev.ID)
	}
	for id := range wantEvents {
		t.Errorf("event %s should have survived", id)
	}

	if len(snap.Series) != 1 || snap.Series[0].ID != "sr3" {
		t.Fatalf("series = %+v, want only sr3", snap.Series)
	}
	if len(snap.Sessions) != 1 || snap.Sessions[0].ID != "s2" {
		t.Fatalf("sessions = %+v, want only s2", snap.Sessions)
	}

	// The shared group shrinks, the emptied solo group disappears with
	// everything that referenced it (e4, sr2).
	if _, ok := snap.GroupByID("solo"); ok {
		t.Fatal("emptied group should be removed")
	}
	shared, ok := snap.GroupByID("shared")
	if !ok {
		t.Fatal("shared group must survive")
	}
	if len(shared.MemberIDs) != 1 || shared.MemberIDs[0] != "m2" {
		t.Fatalf("shared group members = %v, want [m2]", shared.MemberIDs)
	}
}

func TestDeleteMemberLeavesInputUntouched(t *testing.T) {
	snap := cascadeSnapshot()
	DeleteMember(snap, "m1")

	if len(snap.Members) != 2 || len(snap.Events) != 5 || len(snap.Groups) != 2 {
		t.Fatal("DeleteMember mutated its input snapshot")
	}
	if len(snap.Groups[1].MemberIDs) != 1 {
		t.Fatal("DeleteMember mutated a group's member list in place")
	}
}

func TestDeleteGroup(t *testing.T) {
	snap := DeleteGroup(cascadeSnapshot(), "shared")

	if _, ok := snap.GroupByID("shared"); ok {
		t.Fatal("group should be gone")
	}
	for _, ev := range snap.Events {
		if ev.GroupID == "shared" {
			t.Errorf("event %s still references the deleted group", ev.ID)
		}
	}
	for _, sr := range snap.Series {
		if sr.GroupID == "shared" {
			t.Errorf("series %s still references the deleted group", sr.ID)
		}
	}

	// Members keep their records; only the group and its references go.
	if len(snap.Members) != 2 || len(snap.Sessions) != 2 {
		t.Fatal("deleting a group must not touch members or credit batches")
	}
	if _, ok := snap.GroupByID("solo"); !ok {
		t.Fatal("unrelated group must survive")
	}
}

func TestDeleteEvent(t *testing.T) {
	snap := DeleteEvent(cascadeSnapshot(), "e1")
	if _, ok := snap.EventByID("e1"); ok {
		t.Fatal("event should be gone")
	}
	if len(snap.Events) != 4 {
		t.Fatalf("got %d events, want 4", len(snap.Events))
	}
	// Everything else untouched.
	if len(snap.Members) != 2 || len(snap.Series) != 3 || len(snap.Sessions) != 2 {
		t.Fatal("deleting an event must not touch other records")
	}
}
