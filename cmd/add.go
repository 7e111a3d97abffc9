package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/scottCheezem/reminders-cli/internal/reminders"
)

func newAddCmd() *cobra.Command {
	var dueDate string

	cmd := &cobra.Command{
		Use:   "add <list> <reminder>...",
		Short: "Add a reminder to a list",
		Long: `Add a new reminder to the named list. All arguments after the list
name are joined into the reminder's title.

The --due-date value accepts RFC 3339, '2006-01-02 15:04' and '2006-01-02'
layouts as well as natural language such as 'tomorrow at 9am'.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var due *time.Time
			if dueDate != "" {
				t, err := reminders.ParseDueDate(dueDate, time.Now())
				if err != nil {
					return err
				}
				due = &t
			}

			ctx := cmd.Context()
			f, cleanup, err := newAuthorizedFacade(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			title := strings.Join(args[1:], " ")
			return f.AddReminder(ctx, title, args[0], due)
		},
	}

	cmd.Flags().StringVar(&dueDate, "due-date", "", "Due date for the reminder")
	return cmd
}
