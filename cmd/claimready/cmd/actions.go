package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claimready/claimready/dashboard"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List and complete action items",
}

var actionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List action items, open items first",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, cleanup, err := loadActionList(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		completed, total := list.Progress()
		fmt.Printf("Action items (%d/%d complete):\n", completed, total)
		for _, item := range list.Items() {
			mark := " "
			if item.Completed {
				mark = "x"
			}
			fmt.Printf("  [%s] %-8s %s  %s\n", mark, item.Priority, item.ID, item.Title)
		}
		return nil
	},
}

var actionsCompleteCmd = &cobra.Command{
	Use:   "complete <item-id>",
	Short: "Mark an action item complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setActionCompleted(cmd.Context(), args[0], true)
	},
}

var actionsUncompleteCmd = &cobra.Command{
	Use:   "uncomplete <item-id>",
	Short: "Mark an action item not complete",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setActionCompleted(cmd.Context(), args[0], false)
	},
}

// loadActionList builds a loaded ActionList over the live backend. The
// auth-invalid hook clears the stored session so a revoked token
// doesn't linger on disk.
func loadActionList(ctx context.Context) (*dashboard.ActionList, func(), error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	c, mgr, err := newStack(store)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	if !mgr.IsAuthenticated() {
		store.Close()
		return nil, nil, fmt.Errorf("not logged in")
	}

	adapter := dashboard.NewAPIAdapter(c)
	list := dashboard.NewActionList(adapter, func() { mgr.Logout(false) })
	if err := list.Load(ctx); err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("failed to load action items: %w", err)
	}
	return list, func() { store.Close() }, nil
}

func setActionCompleted(ctx context.Context, id string, completed bool) error {
	list, cleanup, err := loadActionList(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := list.SetCompleted(ctx, id, completed); err != nil {
		return fmt.Errorf("failed to update %s: %w", id, err)
	}
	item, _ := list.Item(id)
	state := "open"
	if item.Completed {
		state = "complete"
	}
	fmt.Printf("%s is now %s\n", id, state)
	return nil
}

func init() {
	rootCmd.AddCommand(actionsCmd)
	actionsCmd.AddCommand(actionsListCmd)
	actionsCmd.AddCommand(actionsCompleteCmd)
	actionsCmd.AddCommand(actionsUncompleteCmd)
}
