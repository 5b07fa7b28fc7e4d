package progress

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workorders/internal/core/domain/model/catalog"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrProgressEntryIsNotConstructed is returned when a ProgressEntry was
	// not created through NewProgressEntry or RestoreProgressEntry.
	ErrProgressEntryIsNotConstructed = errors.New("ProgressEntry must be created via NewProgressEntry or RestoreProgressEntry constructor")
)

var (
	half      = decimal.RequireFromString("0.5")
	ten       = decimal.NewFromInt(10)
	one       = decimal.NewFromInt(1)
	scoreZero = decimal.Zero
)

// ToolRecord references a tool used during the reported work.
type ToolRecord struct {
	ToolID kernel.UUID
	Name   string
}

// PhotoRecord references a photo taken during the reported work. Only the
// reference is stored; the binary lives elsewhere.
type PhotoRecord struct {
	PhotoID kernel.UUID
	URL     string
}

// DocumentRecord references a document attached to the report.
type DocumentRecord struct {
	DocumentID kernel.UUID
	Name       string
	URL        string
}

// ProgressEntry is one snapshot in a work order's progress journal.
type ProgressEntry struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	workOrderID kernel.UUID
	reportedBy  kernel.UUID

	progressDate time.Time
	percentage   int
	phase        catalog.WorkPhase

	workCompleted     string
	workRemaining     string
	issuesEncountered string

	hoursWorked     decimal.Decimal
	cumulativeHours decimal.Decimal

	checkpointsCompleted int
	issuesFound          int
	issuesResolved       int

	tools     []ToolRecord
	photos    []PhotoRecord
	documents []DocumentRecord

	nextSteps              string
	expectedCompletionDate *time.Time

	supervisorReviewed bool
	supervisorNotes    string

	guard guard.ConstructorGuard
}

// NewProgressEntryParams carries the inputs for a new journal entry. Previous*
// fields describe the latest recorded entry of the same work order (zero
// values for the first entry) and anchor the monotonicity and running-sum
// invariants.
type NewProgressEntryParams struct {
	ID          kernel.UUID
	TenantID    kernel.UUID
	WorkOrderID kernel.UUID
	ReportedBy  kernel.UUID

	ProgressDate time.Time
	Percentage   int
	// Phase may be left unknown; it is then inferred from the percentage.
	Phase catalog.WorkPhase

	HoursWorked decimal.Decimal

	PreviousPercentage      int
	PreviousCumulativeHours decimal.Decimal

	WorkCompleted string
	WorkRemaining string
	Issues        string
}

// NewProgressEntry appends a snapshot to the journal. The percentage must not
// fall below the previous entry's, must lie in the phase's range, and the
// cumulative hours are derived from the previous running sum.
func NewProgressEntry(params NewProgressEntryParams) (*ProgressEntry, error) {
	entry := &ProgressEntry{
		progressDate:  params.ProgressDate,
		workCompleted: params.WorkCompleted,
		workRemaining: params.WorkRemaining,
		guard:         guard.NewConstructorGuard(),
	}

	if params.Percentage < params.PreviousPercentage {
		return nil, errs.NewValueIsOutOfRangeError("progressPercentage",
			params.Percentage, params.PreviousPercentage, 100)
	}

	phase := params.Phase
	if phase == catalog.WorkPhaseUnknown {
		inferred, err := catalog.PhaseForProgress(params.Percentage)
		if err != nil {
			return nil, err
		}
		phase = inferred
	}

	if err := errors.Join(
		entry.setIdentity(params.ID, params.TenantID, params.WorkOrderID, params.ReportedBy),
		entry.setProgress(params.Percentage, phase),
		entry.setHours(params.HoursWorked, params.PreviousCumulativeHours),
	); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Issues) != "" {
		entry.RecordIssue(params.Issues)
	}

	return entry, nil
}

// RestoreProgressEntryParams carries the full persisted state of an entry.
type RestoreProgressEntryParams struct {
	ID          kernel.UUID
	TenantID    kernel.UUID
	WorkOrderID kernel.UUID
	ReportedBy  kernel.UUID

	ProgressDate time.Time
	Percentage   int
	Phase        catalog.WorkPhase

	WorkCompleted     string
	WorkRemaining     string
	IssuesEncountered string

	HoursWorked     decimal.Decimal
	CumulativeHours decimal.Decimal

	CheckpointsCompleted int
	IssuesFound          int
	IssuesResolved       int

	Tools     []ToolRecord
	Photos    []PhotoRecord
	Documents []DocumentRecord

	NextSteps              string
	ExpectedCompletionDate *time.Time

	SupervisorReviewed bool
	SupervisorNotes    string
}

// RestoreProgressEntry reconstructs an entry from persistent storage.
func RestoreProgressEntry(params RestoreProgressEntryParams) (*ProgressEntry, error) {
	entry := &ProgressEntry{
		progressDate:           params.ProgressDate,
		workCompleted:          params.WorkCompleted,
		workRemaining:          params.WorkRemaining,
		issuesEncountered:      params.IssuesEncountered,
		cumulativeHours:        params.CumulativeHours,
		tools:                  params.Tools,
		photos:                 params.Photos,
		documents:              params.Documents,
		nextSteps:              params.NextSteps,
		expectedCompletionDate: params.ExpectedCompletionDate,
		supervisorReviewed:     params.SupervisorReviewed,
		supervisorNotes:        params.SupervisorNotes,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setIdentity(params.ID, params.TenantID, params.WorkOrderID, params.ReportedBy),
		entry.setProgress(params.Percentage, params.Phase),
		entry.setHours(params.HoursWorked, decimal.Zero),
		entry.setQualityCounters(params.CheckpointsCompleted, params.IssuesFound, params.IssuesResolved),
	); err != nil {
		return nil, err
	}
	entry.cumulativeHours = params.CumulativeHours

	return entry, nil
}

// Validate ensures the entry was built through a constructor.
func (e *ProgressEntry) Validate() error {
	if e == nil {
		return ErrProgressEntryIsNotConstructed
	}
	return e.guard.Validate(ErrProgressEntryIsNotConstructed)
}

// IsEqual compares two entries by id.
func (e *ProgressEntry) IsEqual(other *ProgressEntry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (e *ProgressEntry) ID() kernel.UUID { return e.id }

// TenantID returns the owning tenant's identifier.
func (e *ProgressEntry) TenantID() kernel.UUID { return e.tenantID }

// WorkOrderID returns the work order the snapshot belongs to.
func (e *ProgressEntry) WorkOrderID() kernel.UUID { return e.workOrderID }

// ReportedBy returns who filed the snapshot.
func (e *ProgressEntry) ReportedBy() kernel.UUID { return e.reportedBy }

// ProgressDate returns the snapshot timestamp.
func (e *ProgressEntry) ProgressDate() time.Time { return e.progressDate }

// Percentage returns the reported progress percentage.
func (e *ProgressEntry) Percentage() int { return e.percentage }

// Phase returns the reported work phase.
func (e *ProgressEntry) Phase() catalog.WorkPhase { return e.phase }

// WorkCompleted returns the narrative of finished work.
func (e *ProgressEntry) WorkCompleted() string { return e.workCompleted }

// WorkRemaining returns the narrative of outstanding work.
func (e *ProgressEntry) WorkRemaining() string { return e.workRemaining }

// IssuesEncountered returns the running issue log.
func (e *ProgressEntry) IssuesEncountered() string { return e.issuesEncountered }

// HoursWorked returns the hours booked with this snapshot.
func (e *ProgressEntry) HoursWorked() decimal.Decimal { return e.hoursWorked }

// CumulativeHours returns the running sum of hours up to this snapshot.
func (e *ProgressEntry) CumulativeHours() decimal.Decimal { return e.cumulativeHours }

// CheckpointsCompleted returns the number of completed quality checkpoints.
func (e *ProgressEntry) CheckpointsCompleted() int { return e.checkpointsCompleted }

// IssuesFound returns the number of quality issues found.
func (e *ProgressEntry) IssuesFound() int { return e.issuesFound }

// IssuesResolved returns the number of quality issues resolved.
func (e *ProgressEntry) IssuesResolved() int { return e.issuesResolved }

// Tools returns the tools referenced by the snapshot.
func (e *ProgressEntry) Tools() []ToolRecord { return e.tools }

// Photos returns the photo references attached to the snapshot.
func (e *ProgressEntry) Photos() []PhotoRecord { return e.photos }

// Documents returns the document references attached to the snapshot.
func (e *ProgressEntry) Documents() []DocumentRecord { return e.documents }

// NextSteps returns the planned next steps.
func (e *ProgressEntry) NextSteps() string { return e.nextSteps }

// ExpectedCompletionDate returns the expected completion, or nil.
func (e *ProgressEntry) ExpectedCompletionDate() *time.Time { return e.expectedCompletionDate }

// SupervisorReviewed reports whether a supervisor reviewed the snapshot.
func (e *ProgressEntry) SupervisorReviewed() bool { return e.supervisorReviewed }

// SupervisorNotes returns the supervisor's review notes.
func (e *ProgressEntry) SupervisorNotes() string { return e.supervisorNotes }

// RecordIssue appends to the running issue log, never overwriting it.
func (e *ProgressEntry) RecordIssue(issue string) {
	if strings.TrimSpace(e.issuesEncountered) == "" {
		e.issuesEncountered = issue
		return
	}
	e.issuesEncountered = e.issuesEncountered + "\n" + issue
}

// CompleteQualityCheckpoints records n completed quality checkpoints.
func (e *ProgressEntry) CompleteQualityCheckpoints(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("checkpointsCompleted",
			fmt.Errorf("%d is not positive", n))
	}
	e.checkpointsCompleted += n
	return nil
}

// RecordQualityIssues records n quality issues found at checkpoints.
func (e *ProgressEntry) RecordQualityIssues(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("issuesFound",
			fmt.Errorf("%d is not positive", n))
	}
	e.issuesFound += n
	return nil
}

// ResolveQualityIssues records n resolved issues. Resolved issues can never
// exceed the issues found.
func (e *ProgressEntry) ResolveQualityIssues(n int) error {
	if n <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("issuesResolved",
			fmt.Errorf("%d is not positive", n))
	}
	if e.issuesResolved+n > e.issuesFound {
		return errs.NewValueIsOutOfRangeError("issuesResolved", e.issuesResolved+n, 0, e.issuesFound)
	}
	e.issuesResolved += n
	return nil
}

// ReviewBySupervisor marks the snapshot reviewed.
func (e *ProgressEntry) ReviewBySupervisor(notes string) {
	e.supervisorReviewed = true
	e.supervisorNotes = notes
}

// SetNextSteps records the planned next steps and the expected completion.
func (e *ProgressEntry) SetNextSteps(steps string, expectedCompletion *time.Time) error {
	if strings.TrimSpace(steps) == "" {
		return errs.NewValueIsRequiredError("nextSteps")
	}
	e.nextSteps = steps
	e.expectedCompletionDate = expectedCompletion
	return nil
}

// AddTool references a tool used during the reported work.
func (e *ProgressEntry) AddTool(toolID kernel.UUID, name string) error {
	if err := toolID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("toolName")
	}
	e.tools = append(e.tools, ToolRecord{ToolID: toolID, Name: name})
	return nil
}

// AddPhoto attaches a photo reference to the snapshot.
func (e *ProgressEntry) AddPhoto(photoID kernel.UUID, url string) error {
	if err := photoID.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(url) == "" {
		return errs.NewValueIsRequiredError("photoURL")
	}
	e.photos = append(e.photos, PhotoRecord{PhotoID: photoID, URL: url})
	return nil
}

// AddDocument attaches a document reference to the snapshot.
func (e *ProgressEntry) AddDocument(documentID kernel.UUID, name, url string) error {
	if err := documentID.Validate(); err != nil {
		return err
	}
	if err := errors.Join(
		requireText("documentName", name),
		requireText("documentURL", url),
	); err != nil {
		return err
	}
	e.documents = append(e.documents, DocumentRecord{DocumentID: documentID, Name: name, URL: url})
	return nil
}

// QualityScore derives the snapshot's quality score from the checkpoint
// counters:
//
//	(1 − issuesFound/checkpoints·0.5) · (issuesResolved/issuesFound, or 1) · 10
//
// clamped to [0,10], zero when no checkpoint has been completed. Rounded to
// two decimals.
func (e *ProgressEntry) QualityScore() decimal.Decimal {
	if e.checkpointsCompleted == 0 {
		return scoreZero
	}

	issueRate := decimal.NewFromInt(int64(e.issuesFound)).
		Div(decimal.NewFromInt(int64(e.checkpointsCompleted)))
	resolveRate := one
	if e.issuesFound > 0 {
		resolveRate = decimal.NewFromInt(int64(e.issuesResolved)).
			Div(decimal.NewFromInt(int64(e.issuesFound)))
	}

	score := one.Sub(issueRate.Mul(half)).Mul(resolveRate).Mul(ten).Round(2)
	if score.IsNegative() {
		return scoreZero
	}
	if score.GreaterThan(ten) {
		return ten
	}
	return score
}

func (e *ProgressEntry) setIdentity(id, tenantID, workOrderID, reportedBy kernel.UUID) error {
	if err := errors.Join(
		id.Validate(),
		tenantID.Validate(),
		workOrderID.Validate(),
		reportedBy.Validate(),
	); err != nil {
		return err
	}
	e.id = id
	e.tenantID = tenantID
	e.workOrderID = workOrderID
	e.reportedBy = reportedBy
	return nil
}

func (e *ProgressEntry) setProgress(percentage int, phase catalog.WorkPhase) error {
	if err := phase.Validate(); err != nil {
		return err
	}
	if !phase.ContainsProgress(percentage) {
		lower, upper := phase.ProgressBounds()
		return errs.NewValueIsOutOfRangeError("progressPercentage", percentage, lower, upper)
	}
	e.percentage = percentage
	e.phase = phase
	return nil
}

func (e *ProgressEntry) setHours(hoursWorked, previousCumulative decimal.Decimal) error {
	if hoursWorked.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("hoursWorked",
			fmt.Errorf("%s is negative", hoursWorked))
	}
	if previousCumulative.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("cumulativeHours",
			fmt.Errorf("%s is negative", previousCumulative))
	}
	e.hoursWorked = hoursWorked
	e.cumulativeHours = previousCumulative.Add(hoursWorked)
	return nil
}

func (e *ProgressEntry) setQualityCounters(checkpoints, found, resolved int) error {
	if checkpoints < 0 || found < 0 || resolved < 0 {
		return errs.NewValueIsInvalidErrorWithCause("qualityCounters",
			fmt.Errorf("counters %d/%d/%d must not be negative", checkpoints, found, resolved))
	}
	if resolved > found {
		return errs.NewValueIsOutOfRangeError("issuesResolved", resolved, 0, found)
	}
	e.checkpointsCompleted = checkpoints
	e.issuesFound = found
	e.issuesResolved = resolved
	return nil
}

func requireText(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
