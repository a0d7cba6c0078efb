package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"linkhoard/internal/application/commands"
	"linkhoard/internal/ports"
)

var (
	editName string
	editPath string
	editTags string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a link's name, path or tags",
	Long: `Edit a link. Only the fields given as flags change; everything else
is left as stored.

Examples:
  linkhoard-cli edit 3 --name "New name"
  linkhoard-cli edit 3 --tags work,urgent --path /mnt/share/report.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be an integer: %w", err)
		}

		var fields ports.UpdateFields
		if cmd.Flags().Changed("name") {
			fields.Name = &editName
		}
		if cmd.Flags().Changed("path") {
			fields.Path = &editPath
		}
		if cmd.Flags().Changed("tags") {
			fields.Tags = &editTags
		}
		if fields.Name == nil && fields.Path == nil && fields.Tags == nil {
			return fmt.Errorf("nothing to change: pass --name, --path or --tags")
		}

		result, err := commands.NewEditLinkCommand(GetStore(), id, fields).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editName, "name", "", "new display name")
	editCmd.Flags().StringVar(&editPath, "path", "", "new filesystem path")
	editCmd.Flags().StringVar(&editTags, "tags", "", "new comma-separated tags")
}
