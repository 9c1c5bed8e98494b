package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aamhq/aam-agent/internal/application"
)

func newProjectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Confirm credentials and print the project this key is scoped to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, rawKey, err := app.buildClient(cmd.Context())
			if err != nil {
				return err
			}

			guard := application.NewGuard(client, rawKey, app.expectedProject())
			project, err := guard.Confirm(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", project.ID, project.Name)
			return nil
		},
	}
}
