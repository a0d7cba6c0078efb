package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"linkhoard/internal/adapters/explorer"
)

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Reveal a link's target in the file browser",
	Long: `Open the link's target in the platform file browser. Files are
selected in their containing window where the platform supports it;
directories open directly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be an integer: %w", err)
		}

		link, err := GetStore().Get(id)
		if err != nil {
			return err
		}
		return explorer.NewOpener().Reveal(link.Path)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
