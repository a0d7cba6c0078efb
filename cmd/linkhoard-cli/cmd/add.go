package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linkhoard/internal/application/commands"
)

var (
	addName      string
	addTags      string
	addNoAutoTag bool
)

var addCmd = &cobra.Command{
	Use:   "add <path> [path...]",
	Short: "Add links at the end of the list",
	Long: `Add one link per path at the end of the ordering.

The display name defaults to the path's base name; --name only applies
when a single path is given. Tags derived from the target (folder,
extension) are merged in unless --no-auto-tag is set.

Examples:
  linkhoard-cli add ~/notes/todo.md
  linkhoard-cli add --name "Quarterly report" --tags work,q3 ./report.pdf
  linkhoard-cli add ./a.txt ./b ./c.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if addName != "" && len(args) > 1 {
			return fmt.Errorf("--name requires exactly one path")
		}
		ctx := context.Background()

		tags := addTags
		if tags == "" {
			tags = settings.DefaultTags
		}

		for _, path := range args {
			addCmd := commands.NewAddLinkCommand(GetStore(), addName, path, tags)
			addCmd.AutoTag = settings.AutoTag && !addNoAutoTag
			result, err := addCmd.Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "display name for the link")
	addCmd.Flags().StringVarP(&addTags, "tags", "t", "", "comma-separated tags")
	addCmd.Flags().BoolVar(&addNoAutoTag, "no-auto-tag", false, "skip tags derived from the target")
}
