package cmd

import (
	"github.com/spf13/cobra"
)

func newShowListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-lists",
		Short: "Print the titles of all writable reminder lists",
		Long: `Print the title of every reminder list that accepts content
modifications, one per line. Read-only lists, such as shared subscriptions,
are excluded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f, cleanup, err := newAuthorizedFacade(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return f.ShowLists(ctx)
		},
	}
}
