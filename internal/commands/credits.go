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

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "Manage prepaid session credits",
}

var creditsAddCmd = &cobra.Command{
	Use:   "add [client]",
	Short: "Log a purchased batch of session credits",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		member, err := findMember(snap, strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		count, _ := cmd.Flags().GetInt("count")
		if count == 0 {
			count = snap.Settings.DefaultSessionsTotal
		}
		if count <= 0 {
			fmt.Println("Error: credit count must be positive")
			return
		}

		batch := models.Session{
			ID:        models.NewID(),
			MemberID:  member.ID,
			Total:     count,
			Remaining: count,
			CreatedAt: time.Now(),
		}
		snap.Sessions = append(snap.Sessions, batch)

		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("💳 Added %d credits for %s (%d total left)\n",
			count, member.Name, snap.RemainingCredits(member.ID))
	},
}

var creditsListCmd = &cobra.Command{
	Use:     "ls [client]",
	Aliases: []string{"list"},
	Short:   "Show credit batches, oldest first",
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		batches := append([]models.Session(nil), snap.Sessions...)
		if len(args) > 0 {
			member, err := findMember(snap, strings.Join(args, " "))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			filtered := batches[:0]
			for _, b := range batches {
				if b.MemberID == member.ID {
					filtered = append(filtered, b)
				}
			}
			batches = filtered
		}

		if len(batches) == 0 {
			fmt.Println("No credit batches found. Use 'fitlog credits add \"Name\"' to log a purchase.")
			return
		}

		// Same order the ledger debits in
		core.SortBatches(batches)

		fmt.Printf("%-10s %-25s %-10s %s\n", "ID", "CLIENT", "REMAINING", "PURCHASED")
		fmt.Println(strings.Repeat("-", 65))
		for _, b := range batches {
			name := b.MemberID
			if m, ok := snap.MemberByID(b.MemberID); ok {
				name = m.Name
			}
			remaining := fmt.Sprintf("%d/%d", b.Remaining, b.Total)
			line := fmt.Sprintf("%-10s %-25s %-10s %s",
				shortID(b.ID), truncate(name, 23), remaining, b.CreatedAt.Format("02/01/2006"))
			if b.Remaining == 0 {
				line = mutedStyle.Render(line)
			}
			fmt.Println(line)
		}
	},
}

func init() {
	creditsAddCmd.Flags().IntP("count", "c", 0, "Credits in the batch (default from settings)")
	creditsCmd.AddCommand(creditsAddCmd)
	creditsCmd.AddCommand(creditsListCmd)
}
