package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/ports/mocks"
)

func TestResolverSubmitsValidatedRequest(t *testing.T) {
	req := domain.ResolutionRequest{
		Status:         domain.ResolutionResolved,
		ResolutionNote: "fixed by tightening the retry budget",
	}

	client := mocks.NewMockTrackerClient(t)
	client.EXPECT().ResolveIssue(mockAnyContext(), domain.IssueID("i1"), req).Return(nil).Once()

	resolver := NewResolver(client)
	assert.NoError(t, resolver.Resolve(context.Background(), "i1", req))
}

func TestResolverRejectsEmptyNoteWithoutTouchingTheNetwork(t *testing.T) {
	client := mocks.NewMockTrackerClient(t)
	resolver := NewResolver(client)

	for _, note := range []string{"", "   ", "\t\n"} {
		err := resolver.Resolve(context.Background(), "i1", domain.ResolutionRequest{
			Status:         domain.ResolutionResolved,
			ResolutionNote: note,
		})
		require.Error(t, err, "note %q", note)
	}
	client.AssertNotCalled(t, "ResolveIssue")
}

func TestResolverRejectsUnknownStatusLocally(t *testing.T) {
	client := mocks.NewMockTrackerClient(t)
	resolver := NewResolver(client)

	err := resolver.Resolve(context.Background(), "i1", domain.ResolutionRequest{
		Status:         domain.ResolutionStatus("reopened"),
		ResolutionNote: "should never be sent",
	})
	require.Error(t, err)
	client.AssertNotCalled(t, "ResolveIssue")
}

func TestResolverPropagatesServerRejection(t *testing.T) {
	req := domain.ResolutionRequest{
		Status:         domain.ResolutionArchived,
		ResolutionNote: "superseded by i2",
	}

	client := mocks.NewMockTrackerClient(t)
	client.EXPECT().ResolveIssue(mockAnyContext(), domain.IssueID("i404"), req).
		Return(domain.ErrIssueNotFound).Once()

	resolver := NewResolver(client)
	assert.ErrorIs(t, resolver.Resolve(context.Background(), "i404", req), domain.ErrIssueNotFound)
}
