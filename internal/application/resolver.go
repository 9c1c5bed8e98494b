package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/logging"
	"github.com/aamhq/aam-agent/internal/ports"
)

// Resolver performs the agent's only write-back: a terminal status
// transition with a mandatory justification note. Requests that fail
// local validation never reach the network. The transport retries
// transient failures with a bounded budget only; after exhaustion the
// outcome is unknown and the caller must not blindly resubmit.
type Resolver struct {
	client ports.TrackerClient
	log    *slog.Logger
}

func NewResolver(client ports.TrackerClient) *Resolver {
	return &Resolver{client: client, log: logging.WithComponent("resolver")}
}

func (r *Resolver) Resolve(ctx context.Context, id domain.IssueID, req domain.ResolutionRequest) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid resolution for issue %s: %w", id, err)
	}

	if err := r.client.ResolveIssue(ctx, id, req); err != nil {
		return err
	}

	r.log.Info("issue resolved",
		slog.String("issue_id", string(id)),
		slog.String("status", string(req.Status)))
	return nil
}
