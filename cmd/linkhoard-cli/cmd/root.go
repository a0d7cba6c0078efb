package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linkhoard/internal/adapters/sqlite"
	"linkhoard/internal/config"
	"linkhoard/internal/ports"
)

var (
	dataDir  string
	settings *config.Settings
	store    *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "linkhoard-cli",
	Short: "CLI for managing a linkhoard link list",
	Long: `linkhoard-cli is a command-line interface for the linkhoard link list:
a persistent, ordered collection of filesystem shortcuts.

It provides commands to add, list, edit, move, remove, open, import and
export links. Positions are zero-based and always contiguous.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		store, err = sqlite.Open(dataDir)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	var err error
	settings, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "D", settings.DataDir, "path to the data directory")
}

// GetStore returns the initialized link store
func GetStore() ports.LinkStore {
	return store
}
