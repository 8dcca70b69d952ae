package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aslanbek/fitlog/internal/models"
	"github.com/aslanbek/fitlog/internal/parser"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List sessions",
	Long:    "List sessions in date order, with optional status filter. Scheduled only by default.",
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		all, _ := cmd.Flags().GetBool("all")
		statusFilter, _ := cmd.Flags().GetString("status")

		var events []models.Event
		for _, ev := range snap.Events {
			switch {
			case statusFilter != "" && ev.Status != statusFilter:
			case statusFilter == "" && !all && ev.Status != models.StatusScheduled:
			default:
				events = append(events, ev)
			}
		}

		if len(events) == 0 {
			fmt.Println("No sessions found. Use 'fitlog add' or 'fitlog series' to schedule one.")
			return
		}

		sort.Slice(events, func(i, j int) bool {
			if events[i].Date != events[j].Date {
				return events[i].Date < events[j].Date
			}
			return events[i].Time < events[j].Time
		})

		fmt.Println(headerStyle.Render("Sessions"))
		fmt.Printf("%-10s %-22s %-6s %-5s %-25s %s\n", "ID", "DATE", "TIME", "MIN", "WHO", "STATUS")
		fmt.Println(strings.Repeat("-", 80))
		now := time.Now()
		for _, ev := range events {
			fmt.Printf("%-10s %-22s %-6s %-5d %-25s %s\n",
				shortID(ev.ID),
				parser.FormatEventDate(ev.Date, now),
				ev.Time,
				ev.DurationMinutes,
				truncate(eventSubject(snap, ev), 23),
				styleStatus(ev.Status))
		}
	},
}

// eventSubject names who an event is for, degrading gracefully when the
// referenced member or group no longer exists
func eventSubject(snap models.Snapshot, ev models.Event) string {
	if ev.Type == models.TypeGroup {
		if g, ok := snap.GroupByID(ev.GroupID); ok {
			return g.Name + " (group)"
		}
		return "(missing group)"
	}
	if m, ok := snap.MemberByID(ev.MemberID); ok {
		return m.Name
	}
	return "(missing client)"
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "Include completed and skipped sessions")
	listCmd.Flags().String("status", "", "Filter by status: scheduled|completed|skipped")
}
