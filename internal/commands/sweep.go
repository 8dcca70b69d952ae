package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/aslanbek/fitlog/internal/core"
	"github.com/aslanbek/fitlog/internal/models"
	"github.com/aslanbek/fitlog/internal/store"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Complete elapsed sessions and debit attendance",
	Long: `Scan scheduled sessions, mark every one whose end time has passed as
completed, and debit one credit per attending client. Runs implicitly before
every command; this runs it once on its own and reports what changed.`,
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := store.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		snap, result := core.ApplyCompletionSweep(snap, time.Now())
		if !result.Changed() {
			fmt.Println("Nothing to sweep, all scheduled sessions are in the future.")
			return
		}
		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Completed %d elapsed session(s)\n", len(result.CompletedEventIDs))
		reportDebits(snap, result)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the completion sweep every minute",
	Long: `Keep fitlog running and sweep once immediately, then once per minute,
completing sessions as their end times pass. Stop with Ctrl+C.`,
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := store.Load()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println("Watching for elapsed sessions, sweeping every minute. Ctrl+C to stop.")
		snap = sweepOnce(snap, time.Now())

		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			snap = sweepOnce(snap, now)
		}
	},
}

// sweepOnce runs one sweep over the snapshot, persisting only when it
// changed something
func sweepOnce(snap models.Snapshot, now time.Time) models.Snapshot {
	next, result := core.ApplyCompletionSweep(snap, now)
	if !result.Changed() {
		return snap
	}
	store.SaveLogged(next)
	slog.Info("sweep completed sessions",
		"completed", len(result.CompletedEventIDs),
		"debits", len(result.Debits),
		"out_of_credit", len(result.ExhaustedMemberIDs))
	for _, id := range result.CompletedEventIDs {
		if ev, ok := next.EventByID(id); ok {
			fmt.Printf("✅ Completed session %s (%s at %s)\n", shortID(id), ev.Date, ev.Time)
		}
	}
	return next
}

// reportDebits prints which clients were charged and who was out of credit
func reportDebits(snap models.Snapshot, result core.SweepResult) {
	for _, debit := range result.Debits {
		name := debit.MemberID
		if m, ok := snap.MemberByID(debit.MemberID); ok {
			name = m.Name
		}
		fmt.Printf("  -1 credit for %s (%d left)\n", name, snap.RemainingCredits(debit.MemberID))
	}
	for _, memberID := range result.ExhaustedMemberIDs {
		name := memberID
		if m, ok := snap.MemberByID(memberID); ok {
			name = m.Name
		}
		fmt.Printf("  ⚠️  %s attended with no credits left, log a purchase with 'fitlog credits add'\n", name)
	}
}
