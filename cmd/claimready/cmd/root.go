package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/claimready/claimready/client"
	"github.com/claimready/claimready/session"
	"github.com/claimready/claimready/storage"
	bboltstorage "github.com/claimready/claimready/storage/bbolt"
)

// Version is set at build time.
var Version = "dev"

var (
	apiURL  string
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "claimready",
	Short: "ClaimReady tracks VA disability claims",
	Long: `A command-line companion for the ClaimReady claims dashboard:
log in, inspect claims and action items, and run the local mock backend.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend base URL (overrides CLAIMREADY_API_URL)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "Directory for persistent data")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.claimready"
	}
	return filepath.Join(home, ".claimready")
}

// openStore opens the session store. The caller closes it.
func openStore() (*bboltstorage.Store, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	store, err := bboltstorage.NewStoreFromFile(filepath.Join(dataDir, "session.db"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open session storage: %w", err)
	}
	return store, nil
}

func clientConfig() (client.Config, error) {
	cfg, err := client.ConfigFromEnv()
	if err != nil {
		return client.Config{}, err
	}
	if apiURL != "" {
		cfg.BaseURL = apiURL
	}
	return cfg, nil
}

// newStack wires the store, client, and session manager the commands
// share.
func newStack(store storage.Store) (*client.Client, *session.Manager, error) {
	cfg, err := clientConfig()
	if err != nil {
		return nil, nil, err
	}
	c := client.New(cfg, session.TokenSource(store))
	mgr := session.NewManager(store, c)
	return c, mgr, nil
}
