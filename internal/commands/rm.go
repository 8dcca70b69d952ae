package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aslanbek/fitlog/internal/core"
	"github.com/aslanbek/fitlog/internal/store"
)

var rmCmd = &cobra.Command{
	Use:   "rm [session-id]",
	Short: "Delete a session",
	Long: `Delete a single session. Credits already debited for a completed
session stay debited. Clients and groups are removed with
'fitlog member rm' and 'fitlog group rm', which cascade properly.`,
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

		snap = core.DeleteEvent(snap, event.ID)
		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Removed session %s (%s at %s)\n", shortID(event.ID), event.Date, event.Time)
	},
}
