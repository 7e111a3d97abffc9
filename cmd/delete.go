package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list> <index>",
		Short: "Delete a reminder",
		Long: `Delete the reminder at the given index on the named list. The index
refers to the list's current non-completed reminders as printed by
'reminders show <list>'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("index must be an integer, got %q", args[1])
			}

			ctx := cmd.Context()
			f, cleanup, err := newAuthorizedFacade(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return f.Delete(ctx, index, args[0])
		},
	}
}
