package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	renderissue "github.com/aamhq/aam-agent/internal/adapters/render/issue"
	"github.com/aamhq/aam-agent/internal/application"
	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/logging"
)

func newIssueCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Inspect issues and their generated context",
	}

	cmd.AddCommand(newIssueShowCmd(app), newIssuePromptCmd(app), newIssueImageCmd(app))

	return cmd
}

func newIssueShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <issue-id>",
		Short: "Show an issue with its activity history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The spinner owns the terminal while fetching.
			logging.Suppress()

			client, _, err := app.buildClient(cmd.Context())
			if err != nil {
				return err
			}

			detail, err := fetchIssueDetail(cmd.Context(), cmd.ErrOrStderr(),
				application.NewFetcher(client), domain.IssueID(args[0]))
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(detail)
			}

			output, err := renderissue.Render(detail, renderissue.RenderOptions{Now: app.now()})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

func newIssuePromptCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <issue-id>",
		Short: "Print the generated prompt context for an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.buildClient(cmd.Context())
			if err != nil {
				return err
			}

			prompt, err := application.NewFetcher(client).Prompt(cmd.Context(), domain.IssueID(args[0]))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return nil
		},
	}
}

func newIssueImageCmd(app *app) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "image <issue-id> <image-id>",
		Short: "Download an issue attachment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := app.buildClient(cmd.Context())
			if err != nil {
				return err
			}

			data, err := application.NewFetcher(client).Image(cmd.Context(), domain.IssueID(args[0]), args[1])
			if err != nil {
				return err
			}

			if outputPath == "" || outputPath == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("write image: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d bytes to %s\n", len(data), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default stdout)")

	return cmd
}
