package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aslanbek/fitlog/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the trainer profile and defaults",
	Run: func(cmd *cobra.Command, args []string) {
		initStore()
		snap, err := loadSnapshot()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		changed := false
		if name, _ := cmd.Flags().GetString("name"); name != "" {
			snap.Profile.Name = name
			changed = true
		}
		if whatsapp, _ := cmd.Flags().GetString("whatsapp"); whatsapp != "" {
			snap.Profile.WhatsApp = whatsapp
			changed = true
		}
		if duration, _ := cmd.Flags().GetInt("duration"); duration > 0 {
			snap.Settings.DefaultDurationMinutes = duration
			changed = true
		}
		if sessions, _ := cmd.Flags().GetInt("sessions"); sessions > 0 {
			snap.Settings.DefaultSessionsTotal = sessions
			changed = true
		}

		if changed {
			if err := store.Save(snap); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
		}

		fmt.Println(headerStyle.Render("Profile"))
		fmt.Printf("Name:     %s\n", orUnset(snap.Profile.Name))
		fmt.Printf("WhatsApp: %s\n", orUnset(snap.Profile.WhatsApp))
		fmt.Printf("Default session duration: %d min\n", snap.Settings.DefaultDurationMinutes)
		fmt.Printf("Default credit batch:     %d sessions\n", snap.Settings.DefaultSessionsTotal)
	},
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func init() {
	profileCmd.Flags().String("name", "", "Trainer name")
	profileCmd.Flags().String("whatsapp", "", "Trainer WhatsApp handle")
	profileCmd.Flags().Int("duration", 0, "Default session duration in minutes")
	profileCmd.Flags().Int("sessions", 0, "Default credit batch size")
}
