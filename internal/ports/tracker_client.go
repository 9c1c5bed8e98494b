package ports

import (
	"context"

	"github.com/aamhq/aam-agent/internal/domain"
)

// TrackerClient is the AAM agent API surface the application depends
// on. Implementations own transport classification and retry; callers
// see either a result or a terminal error.
type TrackerClient interface {
	FetchProject(ctx context.Context) (domain.Project, error)
	FetchActivityPage(ctx context.Context, limit int, cursor domain.Cursor) (domain.Page, error)
	FetchIssue(ctx context.Context, id domain.IssueID) (domain.Issue, error)
	FetchIssueActivities(ctx context.Context, id domain.IssueID) ([]domain.Activity, error)
	FetchIssuePrompt(ctx context.Context, id domain.IssueID) (string, error)
	FetchIssueImage(ctx context.Context, issueID domain.IssueID, imageID string) ([]byte, error)
	ResolveIssue(ctx context.Context, id domain.IssueID, req domain.ResolutionRequest) error
}
