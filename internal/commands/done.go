package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aslanbek/fitlog/internal/core"
	"github.com/aslanbek/fitlog/internal/store"
)

var doneCmd = &cobra.Command{
	Use:   "done [session-id]",
	Short: "Mark a session as completed and debit attendance",
	Long: `Mark a scheduled session as completed by hand, before its time has
passed. Debits one credit per attending client, same as the automatic sweep.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		event, err := findEvent(snap, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		snap, result, err := core.MarkCompleted(snap, event.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Completed session %s (%s at %s)\n", shortID(event.ID), event.Date, event.Time)
		reportDebits(snap, result)
	},
}

var skipCmd = &cobra.Command{
	Use:   "skip [session-id]",
	Short: "Mark a session as skipped (no credit debited)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		event, err := findEvent(snap, args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		snap, err = core.MarkSkipped(snap, event.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("⏭️  Skipped session %s (%s at %s)\n", shortID(event.ID), event.Date, event.Time)
	},
}
