package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scottCheezem/reminders-cli/internal/reminders"
)

func newShowCmd() *cobra.Command {
	var (
		asJSON      bool
		dueDateOnly bool
	)

	cmd := &cobra.Command{
		Use:   "show <list> [<list>...]",
		Short: "Print the non-completed reminders on one or more lists",
		Long: `Print the non-completed reminders of the named lists as one combined
sequence. List names are matched case-insensitively against the writable
lists; names that match nothing are skipped.

Each plain-text line carries the reminder's index, which 'complete' and
'delete' accept. With --json the reminders are printed as a JSON array
instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, cleanup, err := newAuthorizedFacade(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			format := reminders.Format(cfg.Output.Format)
			if asJSON {
				format = reminders.FormatJSON
			}
			return f.ShowListItems(ctx, args, format, dueDateOnly)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print reminders as a JSON array")
	cmd.Flags().BoolVar(&dueDateOnly, "due-date-only", false, "Only show reminders that have a due date")
	return cmd
}
