package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"linkhoard/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move <id> <position>",
	Short: "Move a link to a new position",
	Long: `Move a link to a zero-based position. Links between the old and new
position shift by one, so the ordering stays dense.

Examples:
  linkhoard-cli move 7 0
  linkhoard-cli move 7 4`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id must be an integer: %w", err)
		}
		pos, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("position must be an integer: %w", err)
		}

		result, err := commands.NewMoveLinkCommand(GetStore(), id, pos).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
