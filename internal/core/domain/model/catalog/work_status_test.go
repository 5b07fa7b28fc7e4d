package catalog_test

import (
	"fmt"
	"testing"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkStatus_Validate(t *testing.T) {
	t.Run("should validate all defined statuses", func(t *testing.T) {
		validStatuses := []catalog.WorkStatus{
			catalog.Draft,
			catalog.Pending,
			catalog.Scheduled,
			catalog.Approved,
			catalog.Rejected,
			catalog.InProgress,
			catalog.Paused,
			catalog.WorkStatusCompleted,
			catalog.WorkStatusCancelled,
		}

		for _, status := range validStatuses {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		invalidStatuses := []catalog.WorkStatus{
			catalog.WorkStatusUnknown,
			catalog.WorkStatus(-1),
			catalog.WorkStatus(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestWorkStatus_FromString(t *testing.T) {
	t.Run("should round-trip every defined status", func(t *testing.T) {
		for _, status := range []catalog.WorkStatus{
			catalog.Draft, catalog.Pending, catalog.Scheduled, catalog.Approved,
			catalog.Rejected, catalog.InProgress, catalog.Paused,
			catalog.WorkStatusCompleted, catalog.WorkStatusCancelled,
		} {
			parsed, err := catalog.WorkStatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "UNKNOWN", "draft", "ON_HOLD"} {
			_, err := catalog.WorkStatusFromString(s)
			require.Error(t, err, s)
		}
	})
}

func TestWorkStatus_Transition(t *testing.T) {
	t.Run("should allow every edge in the transition table", func(t *testing.T) {
		allowed := []struct {
			from catalog.WorkStatus
			to   catalog.WorkStatus
		}{
			{catalog.Draft, catalog.Pending},
			{catalog.Draft, catalog.WorkStatusCancelled},
			{catalog.Pending, catalog.Scheduled},
			{catalog.Pending, catalog.Approved},
			{catalog.Pending, catalog.Rejected},
			{catalog.Pending, catalog.WorkStatusCancelled},
			{catalog.Scheduled, catalog.Approved},
			{catalog.Scheduled, catalog.InProgress},
			{catalog.Scheduled, catalog.WorkStatusCancelled},
			{catalog.Approved, catalog.InProgress},
			{catalog.Approved, catalog.WorkStatusCancelled},
			{catalog.InProgress, catalog.Paused},
			{catalog.InProgress, catalog.WorkStatusCompleted},
			{catalog.InProgress, catalog.WorkStatusCancelled},
			{catalog.Paused, catalog.InProgress},
			{catalog.Paused, catalog.WorkStatusCancelled},
			{catalog.Rejected, catalog.Pending},
			{catalog.Rejected, catalog.WorkStatusCancelled},
		}

		for _, tc := range allowed {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				next, err := tc.from.Transition(tc.to)

				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			})
		}
	})

	t.Run("should reject edges absent from the table", func(t *testing.T) {
		forbidden := []struct {
			from catalog.WorkStatus
			to   catalog.WorkStatus
		}{
			{catalog.Draft, catalog.InProgress},
			{catalog.Pending, catalog.InProgress},
			{catalog.Rejected, catalog.Approved},
			{catalog.InProgress, catalog.Scheduled},
			{catalog.Paused, catalog.WorkStatusCompleted},
			{catalog.WorkStatusCompleted, catalog.InProgress},
			{catalog.WorkStatusCancelled, catalog.Pending},
		}

		for _, tc := range forbidden {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				_, err := tc.from.Transition(tc.to)

				require.Error(t, err)
				assert.IsType(t, &errs.StateTransitionError{}, err)
				assert.ErrorIs(t, err, errs.ErrInvalidStateTransition)
			})
		}
	})

	t.Run("should reject transition to an invalid target", func(t *testing.T) {
		_, err := catalog.Pending.Transition(catalog.WorkStatusUnknown)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestWorkStatus_IsTerminal(t *testing.T) {
	assert.True(t, catalog.WorkStatusCompleted.IsTerminal())
	assert.True(t, catalog.WorkStatusCancelled.IsTerminal())
	assert.False(t, catalog.Draft.IsTerminal())
	assert.False(t, catalog.InProgress.IsTerminal())
	assert.False(t, catalog.Paused.IsTerminal())
}

func TestWorkStatus_NextPossible(t *testing.T) {
	t.Run("terminal statuses have no successors", func(t *testing.T) {
		assert.Empty(t, catalog.WorkStatusCompleted.NextPossible())
		assert.Empty(t, catalog.WorkStatusCancelled.NextPossible())
	})

	t.Run("draft can only be submitted or cancelled", func(t *testing.T) {
		assert.Equal(t,
			[]catalog.WorkStatus{catalog.Pending, catalog.WorkStatusCancelled},
			catalog.Draft.NextPossible())
	})
}
