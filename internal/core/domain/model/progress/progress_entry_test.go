package progress_test

import (
	"testing"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/progress"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEntryParams() progress.NewProgressEntryParams {
	return progress.NewProgressEntryParams{
		ID:           kernel.NewUUID(),
		TenantID:     kernel.NewUUID(),
		WorkOrderID:  kernel.NewUUID(),
		ReportedBy:   kernel.NewUUID(),
		ProgressDate: time.Date(2025, 4, 2, 15, 0, 0, 0, time.UTC),
		Percentage:   45,
		Phase:        catalog.Execution,
		HoursWorked:  decimal.RequireFromString("3.5"),
	}
}

func TestNewProgressEntry(t *testing.T) {
	t.Run("should record a snapshot and accumulate hours", func(t *testing.T) {
		params := newTestEntryParams()
		params.PreviousPercentage = 30
		params.PreviousCumulativeHours = decimal.NewFromInt(12)
		params.WorkCompleted = "rewired distribution board"
		params.WorkRemaining = "replace breakers on floors 3-5"

		entry, err := progress.NewProgressEntry(params)

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, 45, entry.Percentage())
		assert.Equal(t, catalog.Execution, entry.Phase())
		assert.Equal(t, "3.5", entry.HoursWorked().String())
		assert.Equal(t, "15.5", entry.CumulativeHours().String())
		assert.Equal(t, "rewired distribution board", entry.WorkCompleted())
	})

	t.Run("should reject a percentage below the previous entry", func(t *testing.T) {
		params := newTestEntryParams()
		params.Percentage = 25
		params.PreviousPercentage = 40

		_, err := progress.NewProgressEntry(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should infer the phase when omitted", func(t *testing.T) {
		params := newTestEntryParams()
		params.Percentage = 90
		params.Phase = catalog.WorkPhaseUnknown

		entry, err := progress.NewProgressEntry(params)

		require.NoError(t, err)
		assert.Equal(t, catalog.Testing, entry.Phase())
	})

	t.Run("should reject a percentage outside the supplied phase", func(t *testing.T) {
		params := newTestEntryParams()
		params.Percentage = 45
		params.Phase = catalog.Testing

		_, err := progress.NewProgressEntry(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative hours", func(t *testing.T) {
		params := newTestEntryParams()
		params.HoursWorked = decimal.NewFromInt(-2)

		_, err := progress.NewProgressEntry(params)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should seed the issue log from the initial issues text", func(t *testing.T) {
		params := newTestEntryParams()
		params.Issues = "water damage behind panel"

		entry, err := progress.NewProgressEntry(params)

		require.NoError(t, err)
		assert.Equal(t, "water damage behind panel", entry.IssuesEncountered())
	})

	t.Run("should not validate a zero-value entry", func(t *testing.T) {
		var entry progress.ProgressEntry

		assert.ErrorIs(t, entry.Validate(), progress.ErrProgressEntryIsNotConstructed)
	})
}

func TestProgressEntry_RecordIssue(t *testing.T) {
	t.Run("should append to the running issue log", func(t *testing.T) {
		entry, err := progress.NewProgressEntry(newTestEntryParams())
		require.NoError(t, err)

		entry.RecordIssue("missing mounting bracket")
		entry.RecordIssue("conduit blocked at junction 7")

		assert.Equal(t, "missing mounting bracket\nconduit blocked at junction 7", entry.IssuesEncountered())
	})
}

func TestProgressEntry_QualityCheckpoints(t *testing.T) {
	t.Run("should track found and resolved issues", func(t *testing.T) {
		entry, err := progress.NewProgressEntry(newTestEntryParams())
		require.NoError(t, err)

		require.NoError(t, entry.CompleteQualityCheckpoints(4))
		require.NoError(t, entry.RecordQualityIssues(2))
		require.NoError(t, entry.ResolveQualityIssues(1))

		assert.Equal(t, 4, entry.CheckpointsCompleted())
		assert.Equal(t, 2, entry.IssuesFound())
		assert.Equal(t, 1, entry.IssuesResolved())
	})

	t.Run("should not resolve more issues than found", func(t *testing.T) {
		entry, err := progress.NewProgressEntry(newTestEntryParams())
		require.NoError(t, err)
		require.NoError(t, entry.CompleteQualityCheckpoints(2))
		require.NoError(t, entry.RecordQualityIssues(1))

		err = entry.ResolveQualityIssues(2)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestProgressEntry_QualityScore(t *testing.T) {
	newEntry := func(t *testing.T) *progress.ProgressEntry {
		t.Helper()
		entry, err := progress.NewProgressEntry(newTestEntryParams())
		require.NoError(t, err)
		return entry
	}

	t.Run("should be zero without completed checkpoints", func(t *testing.T) {
		entry := newEntry(t)

		assert.True(t, entry.QualityScore().IsZero())
	})

	t.Run("should be ten for clean checkpoints", func(t *testing.T) {
		entry := newEntry(t)
		require.NoError(t, entry.CompleteQualityCheckpoints(5))

		assert.Equal(t, "10", entry.QualityScore().String())
	})

	t.Run("should discount found issues and reward resolution", func(t *testing.T) {
		entry := newEntry(t)
		require.NoError(t, entry.CompleteQualityCheckpoints(4))
		require.NoError(t, entry.RecordQualityIssues(2))
		require.NoError(t, entry.ResolveQualityIssues(1))

		// (1 - 2/4*0.5) * (1/2) * 10 = 3.75
		assert.Equal(t, "3.75", entry.QualityScore().String())
	})

	t.Run("should stay within zero and ten when every checkpoint fails", func(t *testing.T) {
		entry := newEntry(t)
		require.NoError(t, entry.CompleteQualityCheckpoints(1))
		require.NoError(t, entry.RecordQualityIssues(3))

		score := entry.QualityScore()

		assert.False(t, score.IsNegative())
		assert.True(t, score.LessThanOrEqual(decimal.NewFromInt(10)))
	})
}

func TestProgressEntry_Attachments(t *testing.T) {
	t.Run("should keep typed photo, document, and tool references", func(t *testing.T) {
		entry, err := progress.NewProgressEntry(newTestEntryParams())
		require.NoError(t, err)

		require.NoError(t, entry.AddTool(kernel.NewUUID(), "torque wrench"))
		require.NoError(t, entry.AddPhoto(kernel.NewUUID(), "https://media.example.com/p/8812.jpg"))
		require.NoError(t, entry.AddDocument(kernel.NewUUID(), "inspection checklist", "https://docs.example.com/d/4410"))

		require.Len(t, entry.Tools(), 1)
		assert.Equal(t, "torque wrench", entry.Tools()[0].Name)
		require.Len(t, entry.Photos(), 1)
		require.Len(t, entry.Documents(), 1)
		assert.Equal(t, "inspection checklist", entry.Documents()[0].Name)
	})

	t.Run("should reject a photo without a URL", func(t *testing.T) {
		entry, err := progress.NewProgressEntry(newTestEntryParams())
		require.NoError(t, err)

		err = entry.AddPhoto(kernel.NewUUID(), "  ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestProgressEntry_SupervisorReview(t *testing.T) {
	t.Run("should flag the review with notes", func(t *testing.T) {
		entry, err := progress.NewProgressEntry(newTestEntryParams())
		require.NoError(t, err)

		entry.ReviewBySupervisor("work matches the scope, continue")

		assert.True(t, entry.SupervisorReviewed())
		assert.Equal(t, "work matches the scope, continue", entry.SupervisorNotes())
	})
}

func TestRestoreProgressEntry(t *testing.T) {
	t.Run("should restore a persisted entry", func(t *testing.T) {
		expected := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
		entry, err := progress.RestoreProgressEntry(progress.RestoreProgressEntryParams{
			ID:                     kernel.NewUUID(),
			TenantID:               kernel.NewUUID(),
			WorkOrderID:            kernel.NewUUID(),
			ReportedBy:             kernel.NewUUID(),
			ProgressDate:           time.Date(2025, 4, 2, 15, 0, 0, 0, time.UTC),
			Percentage:             85,
			Phase:                  catalog.Testing,
			HoursWorked:            decimal.NewFromInt(2),
			CumulativeHours:        decimal.RequireFromString("21.5"),
			CheckpointsCompleted:   6,
			IssuesFound:            2,
			IssuesResolved:         2,
			NextSteps:              "final inspection",
			ExpectedCompletionDate: &expected,
			SupervisorReviewed:     true,
		})

		require.NoError(t, err)
		require.NoError(t, entry.Validate())
		assert.Equal(t, 85, entry.Percentage())
		assert.Equal(t, "21.5", entry.CumulativeHours().String())
		assert.Equal(t, 6, entry.CheckpointsCompleted())
	})

	t.Run("should reject resolved issues above found issues", func(t *testing.T) {
		_, err := progress.RestoreProgressEntry(progress.RestoreProgressEntryParams{
			ID:             kernel.NewUUID(),
			TenantID:       kernel.NewUUID(),
			WorkOrderID:    kernel.NewUUID(),
			ReportedBy:     kernel.NewUUID(),
			ProgressDate:   time.Now(),
			Percentage:     50,
			Phase:          catalog.Execution,
			HoursWorked:    decimal.NewFromInt(1),
			IssuesFound:    1,
			IssuesResolved: 3,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
