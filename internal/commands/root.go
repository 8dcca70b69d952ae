package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aslanbek/fitlog/internal/core"
	"github.com/aslanbek/fitlog/internal/models"
	"github.com/aslanbek/fitlog/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "A CLI schedule and session-credit tracker for personal trainers",
	Long: `fitlog keeps a personal trainer's clients, training sessions and prepaid
session credits on the local machine. Schedule one-off or recurring sessions,
and fitlog marks them completed once they have passed and debits each
attending client's credit balance.`,
}

// initStore initializes the snapshot store and panics on error
func initStore() {
	if err := store.Initialize(); err != nil {
		panic(err) // For now, panic on store init failure
	}
}

// loadSnapshot loads the current snapshot and runs the startup completion
// sweep over it. A sweep that changed anything is persisted before the
// command proceeds; a no-op sweep skips the write.
func loadSnapshot() (models.Snapshot, error) {
	snap, err := store.Load()
	if err != nil {
		return models.Snapshot{}, err
	}
	snap, result := core.ApplyCompletionSweep(snap, time.Now())
	if result.Changed() {
		store.SaveLogged(snap)
	}
	return snap, nil
}

// findEvent resolves a user-typed event id, accepting any unambiguous
// id prefix
func findEvent(snap models.Snapshot, arg string) (models.Event, error) {
	if ev, ok := snap.EventByID(arg); ok {
		return ev, nil
	}
	var matches []models.Event
	for _, ev := range snap.Events {
		if strings.HasPrefix(ev.ID, arg) {
			matches = append(matches, ev)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Event{}, fmt.Errorf("no event with id %q", arg)
	default:
		return models.Event{}, fmt.Errorf("id %q matches %d events, use more characters", arg, len(matches))
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(memberCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(skipCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fitlog %s (commit %s, built %s)\n", version, commit, date)
	},
}
