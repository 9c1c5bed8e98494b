package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aamhq/aam-agent/internal/logging"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "aam",
		Short:         "AAM agent: poll the project activity stream and act on issues",
		Long:          "aam connects to an AAM project with an agent API key, polls the activity stream with a durable cursor, fetches issue context on demand, and writes back resolutions.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logging.Setup(os.Stderr, level)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAuthCmd(app),
		newProjectCmd(app),
		newRunCmd(app),
		newIssueCmd(app),
		newResolveCmd(app),
	)

	return rootCmd
}
