package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aamhq/aam-agent/internal/domain"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the agent API key",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the agent API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := domain.ParseAPIKey(key)
			if errors.Is(err, domain.ErrAPIKeyEmpty) {
				return err
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}

			if err := app.keyStore.Set(cmd.Context(), key); err != nil {
				return fmt.Errorf("store api key: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "stored api key %s\n", parsed.Redacted())
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "Agent API key (aam_<keyId>_<secret>)")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the stored agent API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.keyStore.Delete(cmd.Context()); err != nil {
				return fmt.Errorf("remove api key: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "api key removed")
			return nil
		},
	}
}
