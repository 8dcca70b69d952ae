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

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage clients",
}

var memberAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new client",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		name := strings.Join(args, " ")
		if _, ok := snap.MemberByName(name); ok {
			fmt.Printf("Error: client %q already exists\n", name)
			return
		}

		whatsapp, _ := cmd.Flags().GetString("whatsapp")
		member := models.Member{
			ID:        models.NewID(),
			Name:      name,
			WhatsApp:  whatsapp,
			CreatedAt: time.Now(),
		}
		snap.Members = append(snap.Members, member)

		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Added client %s: %s\n", shortID(member.ID), member.Name)
	},
}

var memberListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List clients with their credit balances",
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(snap.Members) == 0 {
			fmt.Println("No clients yet. Use 'fitlog member add \"Name\"' to add your first client.")
			return
		}

		fmt.Printf("%-10s %-25s %-16s %s\n", "ID", "NAME", "WHATSAPP", "CREDITS")
		fmt.Println(strings.Repeat("-", 62))
		for _, m := range snap.Members {
			credits := fmt.Sprintf("%d", snap.RemainingCredits(m.ID))
			if snap.RemainingCredits(m.ID) == 0 {
				credits = missingStyle.Render("0")
			}
			fmt.Printf("%-10s %-25s %-16s %s\n", shortID(m.ID), truncate(m.Name, 23), m.WhatsApp, credits)
		}
	},
}

var memberRemoveCmd = &cobra.Command{
	Use:   "rm [id|name]",
	Short: "Delete a client and everything referencing them",
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

		snap = core.DeleteMember(snap, member.ID)
		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Removed client %s and their sessions, series and credits\n", member.Name)
	},
}

var memberEditCmd = &cobra.Command{
	Use:   "edit [id|name]",
	Short: "Update a client's name or contact",
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

		changed := false
		for i := range snap.Members {
			if snap.Members[i].ID != member.ID {
				continue
			}
			if name, _ := cmd.Flags().GetString("name"); name != "" {
				snap.Members[i].Name = name
				changed = true
			}
			if whatsapp, _ := cmd.Flags().GetString("whatsapp"); whatsapp != "" {
				snap.Members[i].WhatsApp = whatsapp
				changed = true
			}
			member = snap.Members[i]
		}
		if !changed {
			fmt.Println("Nothing to change. Use --name or --whatsapp.")
			return
		}

		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Updated client %s: %s\n", shortID(member.ID), member.Name)
	},
}

// findMember resolves a user-typed member reference: exact name, exact id,
// or an unambiguous id prefix
func findMember(snap models.Snapshot, arg string) (models.Member, error) {
	if m, ok := snap.MemberByName(arg); ok {
		return m, nil
	}
	if m, ok := snap.MemberByID(arg); ok {
		return m, nil
	}
	var matches []models.Member
	for _, m := range snap.Members {
		if strings.HasPrefix(m.ID, arg) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Member{}, fmt.Errorf("no client named %q", arg)
	default:
		return models.Member{}, fmt.Errorf("id %q matches %d clients, use more characters", arg, len(matches))
	}
}

// shortID shows the first id segment, enough to reference records in a
// single-user dataset
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

func init() {
	memberAddCmd.Flags().StringP("whatsapp", "w", "", "WhatsApp handle or phone number")
	memberEditCmd.Flags().String("name", "", "New name")
	memberEditCmd.Flags().String("whatsapp", "", "New WhatsApp handle")
	memberCmd.AddCommand(memberAddCmd)
	memberCmd.AddCommand(memberEditCmd)
	memberCmd.AddCommand(memberListCmd)
	memberCmd.AddCommand(memberRemoveCmd)
}
