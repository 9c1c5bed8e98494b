package issue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamhq/aam-agent/internal/application"
	"github.com/aamhq/aam-agent/internal/domain"
)

func TestRenderIssueDetail(t *testing.T) {
	now := time.Date(2026, 8, 21, 11, 0, 0, 0, time.UTC)

	output, err := Render(application.IssueDetail{
		Issue: domain.Issue{
			ID:          "i1",
			Title:       "Checkout 500s under load",
			Description: "Spikes above 200 rps return internal errors.",
			Status:      domain.IssueStatusOpen,
			Priority:    "high",
			Reporter:    "ops-bot",
			ImageIDs:    []string{"img-1", "img-2"},
			CreatedAt:   now.Add(-26 * time.Hour),
		},
		Activities: []domain.Activity{
			{ID: "a1", Kind: domain.ActivityIssueCreated, IssueID: "i1", Timestamp: now.Add(-26 * time.Hour)},
			{ID: "a2", Kind: domain.ActivityIssueCommented, IssueID: "i1", Timestamp: now.Add(-3 * time.Hour)},
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "i1")
	assert.Contains(t, output, "Checkout 500s under load")
	assert.Contains(t, output, "reported by ops-bot, 1 day ago")
	assert.Contains(t, output, "status:")
	assert.Contains(t, output, "open")
	assert.Contains(t, output, "priority:")
	assert.Contains(t, output, "high")
	assert.Contains(t, output, "img-1, img-2")
	assert.Contains(t, output, "Spikes above 200 rps")
	assert.Contains(t, output, "activity: 2")
	assert.Contains(t, output, "created")
	assert.Contains(t, output, "commented")
	assert.Contains(t, output, "3 hours ago")
}

func TestRenderIssueWithoutHistory(t *testing.T) {
	now := time.Date(2026, 8, 21, 11, 0, 0, 0, time.UTC)

	output, err := Render(application.IssueDetail{
		Issue: domain.Issue{
			ID:        "i2",
			Title:     "Stale cache after deploy",
			Status:    domain.IssueStatusResolved,
			CreatedAt: now.Add(-45 * time.Minute),
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Stale cache after deploy")
	assert.Contains(t, output, "resolved")
	assert.Contains(t, output, "45 minutes ago")
	assert.Contains(t, output, "No activity recorded.")
	assert.NotContains(t, output, "priority:")
	assert.NotContains(t, output, "images:")
}

func TestRenderUnknownReporterAndKind(t *testing.T) {
	now := time.Date(2026, 8, 21, 11, 0, 0, 0, time.UTC)

	output, err := Render(application.IssueDetail{
		Issue: domain.Issue{
			ID:     "i3",
			Title:  "Flaky webhook delivery",
			Status: domain.IssueStatusOpen,
		},
		Activities: []domain.Activity{
			{ID: "a1", Kind: domain.ActivityKind("issue_labeled"), IssueID: "i3", Timestamp: now.Add(-time.Minute)},
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "reported by unknown")
	assert.Contains(t, output, "issue_labeled")
	assert.Contains(t, output, "1 minute ago")
}
