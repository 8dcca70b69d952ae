package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aslanbek/fitlog/internal/core"
	"github.com/aslanbek/fitlog/internal/models"
	"github.com/aslanbek/fitlog/internal/store"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage training groups",
}

var groupAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a group from existing clients",
	Long: `Create a named group of clients who train together.

Members are given by name or id with --members. A group needs at least one
member; deleting a group's last member deletes the group as well.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		name := strings.Join(args, " ")
		if _, ok := snap.GroupByName(name); ok {
			fmt.Printf("Error: group %q already exists\n", name)
			return
		}

		memberArgs, _ := cmd.Flags().GetStringSlice("members")
		if len(memberArgs) == 0 {
			fmt.Println("Error: a group needs at least one member (--members)")
			return
		}

		var memberIDs []string
		seen := make(map[string]bool)
		for _, arg := range memberArgs {
			member, err := findMember(snap, strings.TrimSpace(arg))
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if !seen[member.ID] {
				seen[member.ID] = true
				memberIDs = append(memberIDs, member.ID)
			}
		}

		color, _ := cmd.Flags().GetString("color")
		sessions, _ := cmd.Flags().GetInt("sessions")
		if sessions <= 0 {
			sessions = snap.Settings.DefaultSessionsTotal
		}

		group := models.Group{
			ID:            models.NewID(),
			Name:          name,
			Color:         color,
			MemberIDs:     memberIDs,
			SessionsTotal: sessions,
		}
		snap.Groups = append(snap.Groups, group)

		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Added group %s: %s (%d members)\n", shortID(group.ID), group.Name, len(memberIDs))
	},
}

var groupListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List groups",
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if len(snap.Groups) == 0 {
			fmt.Println("No groups yet. Use 'fitlog group add \"Name\" --members ...' to create one.")
			return
		}

		fmt.Printf("%-10s %-20s %-8s %s\n", "ID", "NAME", "COLOR", "MEMBERS")
		fmt.Println(strings.Repeat("-", 70))
		for _, g := range snap.Groups {
			var names []string
			for _, id := range g.MemberIDs {
				if m, ok := snap.MemberByID(id); ok {
					names = append(names, m.Name)
				}
			}
			fmt.Printf("%-10s %-20s %-8s %s\n", shortID(g.ID), truncate(g.Name, 18), g.Color, strings.Join(names, ", "))
		}
	},
}

var groupRemoveCmd = &cobra.Command{
	Use:   "rm [id|name]",
	Short: "Delete a group and its scheduled sessions",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		group, err := findGroup(snap, strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		snap = core.DeleteGroup(snap, group.ID)
		if err := store.Save(snap); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Removed group %s and its sessions\n", group.Name)
	},
}

// findGroup resolves a user-typed group reference the same way findMember does
func findGroup(snap models.Snapshot, arg string) (models.Group, error) {
	if g, ok := snap.GroupByName(arg); ok {
		return g, nil
	}
	if g, ok := snap.GroupByID(arg); ok {
		return g, nil
	}
	var matches []models.Group
	for _, g := range snap.Groups {
		if strings.HasPrefix(g.ID, arg) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Group{}, fmt.Errorf("no group named %q", arg)
	default:
		return models.Group{}, fmt.Errorf("id %q matches %d groups, use more characters", arg, len(matches))
	}
}

func init() {
	groupAddCmd.Flags().StringSliceP("members", "m", []string{}, "Comma-separated member names or ids")
	groupAddCmd.Flags().StringP("color", "c", "", "Display color, e.g. #7C3AED")
	groupAddCmd.Flags().IntP("sessions", "s", 0, "Default credit batch size for this group")
	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupRemoveCmd)
}
