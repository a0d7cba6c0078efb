package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linkhoard/internal/application/commands"
)

var (
	exportFilter  string
	importReplace bool
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export links as JSON",
	Long: `Write the link list as a JSON envelope. With no file argument the
export goes to stdout. Ids and positions are omitted; import re-derives
them.

Examples:
  linkhoard-cli export > links.json
  linkhoard-cli export links.json
  linkhoard-cli export --filter work work-links.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
		}

		exportCmd := commands.NewExportLinksCommand(GetStore(), out)
		exportCmd.Filter = exportFilter
		result, err := exportCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		if len(args) == 1 {
			fmt.Println(result.Message)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import links from a JSON export",
	Long: `Read a JSON export envelope and add its links behind the existing
ones, preserving the file's order. With --replace the current list is
discarded first, in the same transaction.

Examples:
  linkhoard-cli import links.json
  linkhoard-cli import --replace links.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		importCmd := commands.NewImportLinksCommand(GetStore(), f)
		importCmd.Replace = importReplace
		result, err := importCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	exportCmd.Flags().StringVar(&exportFilter, "filter", "", "export only links matching this filter")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "discard the current list before importing")
}
