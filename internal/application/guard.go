package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/logging"
	"github.com/aamhq/aam-agent/internal/ports"
)

// Guard is the sole authorization gate: it validates the credential
// shape and confirms the remote project identity before the agent does
// any stateful work. No cursor is read and no write-back is issued
// until Confirm has succeeded.
type Guard struct {
	client          ports.TrackerClient
	rawKey          string
	expectedProject domain.ProjectID
	log             *slog.Logger
}

func NewGuard(client ports.TrackerClient, rawKey string, expectedProject domain.ProjectID) *Guard {
	return &Guard{
		client:          client,
		rawKey:          rawKey,
		expectedProject: expectedProject,
		log:             logging.WithComponent("guard"),
	}
}

func (g *Guard) Confirm(ctx context.Context) (domain.Project, error) {
	key, err := domain.ParseAPIKey(g.rawKey)
	if err != nil {
		if errors.Is(err, domain.ErrAPIKeyEmpty) {
			return domain.Project{}, &domain.AuthError{Reason: "no api key configured"}
		}
		// The server is the authority on key validity; a shape
		// mismatch is only a warning.
		g.log.Warn("api key does not match the expected shape", slog.String("key", key.Redacted()))
	}

	project, err := g.client.FetchProject(ctx)
	if err != nil {
		return domain.Project{}, fmt.Errorf("confirm project scope: %w", err)
	}

	if g.expectedProject != "" && project.ID != g.expectedProject {
		return domain.Project{}, &domain.ScopeMismatchError{Expected: g.expectedProject, Actual: project.ID}
	}

	g.log.Info("project scope confirmed",
		slog.String("project_id", string(project.ID)),
		slog.String("project_name", project.Name))
	return project, nil
}
