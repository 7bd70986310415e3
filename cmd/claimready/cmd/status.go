package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claimready/claimready/dashboard"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and claim summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		c, mgr, err := newStack(store)
		if err != nil {
			return err
		}

		if !mgr.IsAuthenticated() {
			fmt.Println("Not logged in")
			return nil
		}

		user := mgr.ValidateSession(cmd.Context())
		if user == nil {
			if !mgr.IsAuthenticated() {
				fmt.Println("Session expired, please log in again")
				return nil
			}
			// Transient backend trouble: fall back to the stored user.
			state := mgr.State().Get()
			user = state.User
		}
		if user != nil {
			fmt.Printf("Logged in as %s %s <%s>\n", user.FirstName, user.LastName, user.Email)
			if user.IsPremium {
				fmt.Println("Premium subscription active")
			}
		}

		adapter := dashboard.NewAPIAdapter(c)
		claims, err := adapter.Claims(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load claims: %w", err)
		}
		summary := dashboard.Summarize(claims)
		fmt.Printf("Claims: %d active, %d decided\n", summary.Active, summary.Decided)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
