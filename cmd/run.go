package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aamhq/aam-agent/internal/application"
	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/ports"
)

func newRunCmd(app *app) *cobra.Command {
	var since string
	var pageLimit int
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Poll the project activity stream until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client, rawKey, err := app.buildClient(ctx)
			if err != nil {
				return err
			}

			guard := application.NewGuard(client, rawKey, app.expectedProject())
			project, err := guard.Confirm(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "polling project %s (%s)\n", project.Name, project.ID)

			store, err := app.buildCursorStore()
			if err != nil {
				return err
			}

			processor, err := application.NewProcessor(app.cfg.GetInt("seen_capacity"), ports.SystemClock{})
			if err != nil {
				return err
			}
			handler := newStreamHandler(cmd.OutOrStdout())
			processor.Register(domain.ActivityIssueCreated, handler)
			processor.Register(domain.ActivityIssueUpdated, handler)
			processor.Register(domain.ActivityIssueCommented, handler)

			cfg := application.PollerConfig{
				Interval:  app.cfg.GetDuration("poll_interval"),
				PageLimit: app.cfg.GetInt("page_limit"),
			}
			if interval > 0 {
				cfg.Interval = interval
			}
			if pageLimit > 0 {
				cfg.PageLimit = pageLimit
			}
			if since == "" {
				since = app.cfg.GetString("since")
			}
			if since != "" {
				parsed, err := time.Parse(time.RFC3339, since)
				if err != nil {
					return fmt.Errorf("parse since instant: %w", err)
				}
				cfg.Since = parsed
			}

			poller := application.NewPoller(client, store, processor, ports.SystemClock{}, cfg)
			return poller.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "First-run fallback instant (RFC3339)")
	cmd.Flags().IntVar(&pageLimit, "page-limit", 0, "Activities per page (default from config)")
	cmd.Flags().DurationVar(&interval, "interval", 0, "Poll interval (default from config)")

	return cmd
}

// streamHandler prints one line per dispatched activity. It is the
// default sink when the agent runs interactively; automation wraps the
// processor with its own handlers instead.
type streamHandler struct {
	out io.Writer
}

func newStreamHandler(out io.Writer) *streamHandler {
	return &streamHandler{out: out}
}

func (h *streamHandler) Handle(_ context.Context, activity domain.Activity) error {
	_, err := fmt.Fprintf(h.out, "%s  %-15s  issue=%s\n",
		activity.Timestamp.UTC().Format(time.RFC3339), activity.Kind, activity.IssueID)
	return err
}
