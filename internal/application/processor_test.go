package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamhq/aam-agent/internal/domain"
	"github.com/aamhq/aam-agent/internal/ports"
	"github.com/aamhq/aam-agent/internal/ports/mocks"
)

func activity(id string) domain.Activity {
	return domain.Activity{
		ID:        domain.ActivityID(id),
		Timestamp: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		Kind:      domain.ActivityIssueCreated,
		IssueID:   "i1",
	}
}

func TestProcessorDispatchesEachActivityIDAtMostOnce(t *testing.T) {
	handler := mocks.NewMockActivityHandler(t)
	handler.EXPECT().Handle(mockAnyContext(), activity("a1")).Return(nil).Once()

	processor, err := NewProcessor(0, nil)
	require.NoError(t, err)
	processor.Register(domain.ActivityIssueCreated, handler)

	ctx := context.Background()
	assert.True(t, processor.Process(ctx, activity("a1")))
	// Redelivery on a later page.
	assert.False(t, processor.Process(ctx, activity("a1")))
}

func TestProcessorHandlerFailureDoesNotBlockThePage(t *testing.T) {
	handler := mocks.NewMockActivityHandler(t)
	handler.EXPECT().Handle(mockAnyContext(), activity("a1")).Return(errors.New("downstream broken")).Once()
	handler.EXPECT().Handle(mockAnyContext(), activity("a2")).Return(nil).Once()

	processor, err := NewProcessor(0, nil)
	require.NoError(t, err)
	processor.Register(domain.ActivityIssueCreated, handler)

	ctx := context.Background()
	assert.True(t, processor.Process(ctx, activity("a1")), "a failed handler still counts as processed")
	assert.True(t, processor.Process(ctx, activity("a2")))

	// The failed activity is seen; it is not re-dispatched.
	assert.False(t, processor.Process(ctx, activity("a1")))
}

func TestProcessorUnregisteredKindAdvancesWithoutDispatch(t *testing.T) {
	processor, err := NewProcessor(0, nil)
	require.NoError(t, err)

	act := activity("a1")
	act.Kind = domain.ActivityKind("issue_labeled")

	assert.True(t, processor.Process(context.Background(), act))
}

func TestProcessorSeenSetIsCapacityBounded(t *testing.T) {
	handler := mocks.NewMockActivityHandler(t)
	handler.EXPECT().Handle(mockAnyContext(), activity("a1")).Return(nil).Twice()
	handler.EXPECT().Handle(mockAnyContext(), activity("a2")).Return(nil).Once()
	handler.EXPECT().Handle(mockAnyContext(), activity("a3")).Return(nil).Once()

	processor, err := NewProcessor(2, ports.SystemClock{})
	require.NoError(t, err)
	processor.Register(domain.ActivityIssueCreated, handler)

	ctx := context.Background()
	require.True(t, processor.Process(ctx, activity("a1")))
	require.True(t, processor.Process(ctx, activity("a2")))
	require.True(t, processor.Process(ctx, activity("a3")))

	// a1 aged out of the bounded window, so a redelivery dispatches
	// again; dedup is a window, not forever.
	assert.True(t, processor.Process(ctx, activity("a1")))
}
