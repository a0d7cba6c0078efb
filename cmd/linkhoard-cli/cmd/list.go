package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linkhoard/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List links in display order",
	Long: `List all links ordered by position. An optional filter keeps links
whose name, path or tags contain it, case-insensitively.

Examples:
  linkhoard-cli list
  linkhoard-cli list report`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) == 1 {
			filter = args[0]
		}

		links, err := commands.NewListLinksCommand(GetStore(), filter).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, l := range links {
			tags := l.Tags
			if tags == "" {
				tags = "-"
			}
			fmt.Printf("%3d  #%-4d %-30s [%s]  %s\n", l.Position, l.ID, l.DisplayName(), tags, l.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
