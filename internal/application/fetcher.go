package application

import (
	"context"
	"fmt"

	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/ports"
)

// Fetcher exposes the on-demand, read-only resource reads. Every call
// rides the same classified transport and retry policy as polling.
type Fetcher struct {
	client ports.TrackerClient
}

func NewFetcher(client ports.TrackerClient) *Fetcher {
	return &Fetcher{client: client}
}

// IssueDetail bundles an issue with its activity history for display.
type IssueDetail struct {
	Issue      domain.Issue
	Activities []domain.Activity
}

func (f *Fetcher) Detail(ctx context.Context, id domain.IssueID) (IssueDetail, error) {
	issue, err := f.client.FetchIssue(ctx, id)
	if err != nil {
		return IssueDetail{}, err
	}

	activities, err := f.client.FetchIssueActivities(ctx, id)
	if err != nil {
		return IssueDetail{}, fmt.Errorf("issue %s found but its history was not: %w", id, err)
	}

	return IssueDetail{Issue: issue, Activities: activities}, nil
}

func (f *Fetcher) Prompt(ctx context.Context, id domain.IssueID) (string, error) {
	return f.client.FetchIssuePrompt(ctx, id)
}

func (f *Fetcher) Image(ctx context.Context, issueID domain.IssueID, imageID string) ([]byte, error) {
	return f.client.FetchIssueImage(ctx, issueID, imageID)
}
