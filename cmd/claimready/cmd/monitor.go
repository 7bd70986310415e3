package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/claimready/claimready/session"
)

var (
	monitorInterval time.Duration
	monitorIdle     time.Duration
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch the session: silent renewal and idle logout",
	Long: `Runs the periodic session check in the foreground: renews the token
before it expires, logs the session out after the idle timeout, and
prints state changes as they happen. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		_, mgr, err := newStack(store)
		if err != nil {
			return err
		}
		if !mgr.IsAuthenticated() {
			return fmt.Errorf("not logged in")
		}

		cancel := mgr.State().Subscribe(func(s session.AuthState) {
			if s.Authenticated {
				fmt.Printf("session active as %s\n", s.DisplayName())
			} else {
				fmt.Println("session ended")
			}
		})
		defer cancel()

		mo := mgr.NewMonitor(
			session.WithInterval(monitorInterval),
			session.WithIdleTimeout(monitorIdle),
		)
		mo.Start()
		defer mo.Stop()

		fmt.Printf("Monitoring session (check every %s, idle timeout %s)...\n",
			monitorInterval, monitorIdle)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		fmt.Println("\nStopping monitor...")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().DurationVar(&monitorInterval, "interval", session.DefaultCheckInterval, "Session check interval")
	monitorCmd.Flags().DurationVar(&monitorIdle, "idle-timeout", session.DefaultActivityTimeout, "Idle timeout before forced logout (0 disables)")
}
