package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aslanbek/fitlog/internal/core"
	"github.com/aslanbek/fitlog/internal/models"
	"github.com/aslanbek/fitlog/internal/parser"
	"github.com/aslanbek/fitlog/internal/store"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Schedule a recurring series of sessions",
	Long: `Schedule a recurring series: pick weekdays, a start date and how many
occurrences to generate. fitlog expands the rule into concrete dated
sessions up front and keeps the rule for record-keeping.

Examples:
  fitlog series --member "Aigerim" --days mon,wed,fri --count 12 --time 09:00
  fitlog series --group "Morning crew" --days 2,4 --start 01/09/2026 --count 8`,
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

		rule := core.SeriesRule{}
		if memberArg != "" {
			member, err := findMember(snap, memberArg)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			rule.Type = models.TypePerson
			rule.MemberID = member.ID
		} else {
			group, err := findGroup(snap, groupArg)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			rule.Type = models.TypeGroup
			rule.GroupID = group.ID
		}

		daysArg, _ := cmd.Flags().GetString("days")
		rule.Weekdays, err = parser.ParseWeekdays(daysArg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		startArg, _ := cmd.Flags().GetString("start")
		rule.StartDate, err = parser.ParseDate(startArg, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		timeArg, _ := cmd.Flags().GetString("time")
		rule.Time, err = parser.ParseTime(timeArg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		rule.DurationMinutes, _ = cmd.Flags().GetInt("duration")
		if rule.DurationMinutes == 0 {
			rule.DurationMinutes = snap.Settings.DefaultDurationMinutes
		}
		rule.SessionsTotal, _ = cmd.Flags().GetInt("count")
		rule.Notes, _ = cmd.Flags().GetString("notes")

		series, events, err := core.ExpandSeries(rule)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		snap.Series = append(snap.Series, series)
		snap.Events = append(snap.Events, events...)
		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("📅 Scheduled %d sessions (%s at %s), series %s\n",
			len(events), parser.FormatWeekdays(series.Weekdays), series.Time, shortID(series.ID))
		fmt.Printf("First: %s  Last: %s\n",
			parser.FormatEventDate(events[0].Date, time.Now()),
			parser.FormatEventDate(events[len(events)-1].Date, time.Now()))
	},
}

func init() {
	seriesCmd.Flags().StringP("member", "m", "", "Client name or id")
	seriesCmd.Flags().StringP("group", "g", "", "Group name or id")
	seriesCmd.Flags().String("days", "", "Weekdays: names (mon,wed,fri) or numbers 0-6 with Sunday=0")
	seriesCmd.Flags().String("start", "", "Start date (default today), first occurrence may be the start date itself")
	seriesCmd.Flags().StringP("time", "t", "09:00", "Start time, HH:MM")
	seriesCmd.Flags().IntP("duration", "D", 0, "Duration in minutes (default from settings)")
	seriesCmd.Flags().IntP("count", "c", 0, "Number of occurrences to generate")
	seriesCmd.Flags().StringP("notes", "n", "", "Additional notes")
}
