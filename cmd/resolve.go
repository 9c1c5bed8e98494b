package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aamhq/aam-agent/internal/application"
	"github.com/aamhq/aam-agent/internal/domain"
)

func newResolveCmd(app *app) *cobra.Command {
	var status string
	var note string

	cmd := &cobra.Command{
		Use:   "resolve <issue-id>",
		Short: "Mark an issue resolved or archived",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.buildClient(cmd.Context())
			if err != nil {
				return err
			}

			req := domain.ResolutionRequest{
				Status:         domain.ResolutionStatus(status),
				ResolutionNote: note,
			}
			if err := application.NewResolver(client).Resolve(cmd.Context(), domain.IssueID(args[0]), req); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "issue %s marked %s\n", args[0], status)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", string(domain.ResolutionResolved), "Terminal status (resolved|archived)")
	cmd.Flags().StringVar(&note, "note", "", "Resolution note (required)")
	_ = cmd.MarkFlagRequired("note")

	return cmd
}
