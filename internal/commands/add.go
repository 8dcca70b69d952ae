package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aslanbek/fitlog/internal/models"
	"github.com/aslanbek/fitlog/internal/parser"
	"github.com/aslanbek/fitlog/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule a one-off training session",
	Long: `Schedule a single training session for a client or a group.

Examples:
  fitlog add --member "Aigerim" --date tomorrow --time 09:00
  fitlog add --group "Morning crew" --date 15/12/2026 --time 18:30 --duration 90`,
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		memberArg, _ := cmd.Flags().GetString("member")
		groupArg, _ := cmd.Flags().GetString("group")
		if (memberArg == "") == (groupArg == "") {
			fmt.Println("Error: give exactly one of --member or --group")
			return
		}

		event := models.Event{
			ID:     models.NewID(),
			Status: models.StatusScheduled,
		}
		if memberArg != "" {
			member, err := findMember(snap, memberArg)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			event.Type = models.TypePerson
			event.MemberID = member.ID
		} else {
			group, err := findGroup(snap, groupArg)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			event.Type = models.TypeGroup
			event.GroupID = group.ID
		}

		dateArg, _ := cmd.Flags().GetString("date")
		event.Date, err = parser.ParseDate(dateArg, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		timeArg, _ := cmd.Flags().GetString("time")
		event.Time, err = parser.ParseTime(timeArg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		event.DurationMinutes, _ = cmd.Flags().GetInt("duration")
		if event.DurationMinutes == 0 {
			event.DurationMinutes = snap.Settings.DefaultDurationMinutes
		}
		if event.DurationMinutes <= 0 {
			fmt.Println("Error: duration must be a positive number of minutes")
			return
		}
		event.Notes, _ = cmd.Flags().GetString("notes")

		snap.Events = append(snap.Events, event)
		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📅 Scheduled session %s on %s at %s (%d min)\n",
			shortID(event.ID), parser.FormatEventDate(event.Date, time.Now()), event.Time, event.DurationMinutes)
	},
}

func init() {
	addCmd.Flags().StringP("member", "m", "", "Client name or id")
	addCmd.Flags().StringP("group", "g", "", "Group name or id")
	addCmd.Flags().StringP("date", "d", "", "Date: dd/mm/yyyy, yyyy-mm-dd, today, tomorrow (default today)")
	addCmd.Flags().StringP("time", "t", "09:00", "Start time, HH:MM")
	addCmd.Flags().IntP("duration", "D", 0, "Duration in minutes (default from settings)")
	addCmd.Flags().StringP("notes", "n", "", "Additional notes")
}
