package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/studyforge/studyforge-lms/internal/bank"
	"github.com/studyforge/studyforge-lms/internal/question"
)

// Submission orchestrates quiz creation: it reuses bank picks, persists
// fresh drafts, builds and normalizes the snapshot set, validates it and
// hands the finished payload to the quiz store. The flow is strictly
// sequential; each created draft's durable id must exist before its
// snapshot is built, and a failure on draft N must stop drafts N+1 onward.

// State is the orchestrator's current position. Committed and Rejected are
// terminal.
type State string

const (
	StateIdle                State = "idle"
	StateValidatingDetails   State = "validating_details"
	StateCreatingDrafts      State = "creating_drafts"
	StateBuildingSnapshots   State = "building_snapshots"
	StateValidatingSnapshots State = "validating_snapshots"
	StateSubmitting          State = "submitting"
	StateCommitted           State = "committed"
	StateRejected            State = "rejected"
)

// Quiz-level violation codes. Index is -1 on these: they name the quiz,
// not a question.
const (
	CodeMissingSubject question.Code = "missing_subject"
	CodeMissingCourse  question.Code = "missing_course"
	CodeMissingTitle   question.Code = "missing_title"
	CodeBadTimeRange   question.Code = "bad_time_range"
)

// BankService is the question-bank collaborator used for draft persistence.
type BankService interface {
	Create(ctx context.Context, q bank.Question) (bank.Question, error)
}

// QuizService is the quiz-creation collaborator.
type QuizService interface {
	CreateQuiz(ctx context.Context, q Quiz) (Quiz, error)
}

// Rejection carries every violation found before any collaborator call, or
// on the re-check of the final set. It is user-correctable.
type Rejection struct {
	Violations []question.Violation
}

func (r *Rejection) Error() string {
	if len(r.Violations) == 0 {
		return "submission rejected"
	}
	return fmt.Sprintf("submission rejected: %s", r.Violations[0].Error())
}

// CollaboratorError reports a failed bank-create or quiz-create call. Bank
// questions created earlier in the same attempt stay created; CreatedIDs
// makes that partial side effect visible to the caller.
type CollaboratorError struct {
	Step       State
	CreatedIDs []string
	Err        error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s failed: %v (bank questions already created: %d)", e.Step, e.Err, len(e.CreatedIDs))
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// Result is the successful outcome: the created quiz and its snapshot set.
type Result struct {
	Quiz      Quiz
	Snapshots []question.Snapshot
}

// Submission sequences one quiz-creation attempt. Not safe for concurrent
// use; the authoring UI drives one attempt at a time.
type Submission struct {
	details Details
	picks   []bank.Question
	drafts  *question.DraftList

	state   State
	created []string // bank ids persisted during this attempt
}

func NewSubmission(details Details, picks []bank.Question, drafts *question.DraftList) *Submission {
	return &Submission{details: details, picks: picks, drafts: drafts, state: StateIdle}
}

// State reports the orchestrator's current position in the flow.
func (s *Submission) State() State { return s.state }

// CreatedBankIDs lists bank questions persisted during this attempt. After
// a CollaboratorError these remain durable; there is no rollback.
func (s *Submission) CreatedBankIDs() []string {
	out := make([]string, len(s.created))
	copy(out, s.created)
	return out
}

// Run drives the attempt to a terminal state. All validation happens
// before the first collaborator call: a structural problem in any draft or
// pick rejects the submission with zero network traffic.
func (s *Submission) Run(ctx context.Context, bankSvc BankService, quizSvc QuizService) (Result, error) {
	s.state = StateValidatingDetails
	if vs := ValidateDetails(s.details); len(vs) > 0 {
		s.state = StateRejected
		return Result{}, &Rejection{Violations: vs}
	}

	// Pre-flight structural check on a provisional set. Drafts are keyed by
	// their session ids here; the durable ids replace them after creation.
	drafts := s.drafts.NonEmpty()
	provisional := make([]question.Snapshot, 0, len(s.picks)+len(drafts))
	for _, p := range s.picks {
		provisional = append(provisional, question.BuildSnapshot(p.Source(), true))
	}
	for _, d := range drafts {
		provisional = append(provisional, question.BuildSnapshot(d.Source(), false))
	}
	if vs := question.ValidateSet(question.NormalizeSet(provisional)); len(vs) > 0 {
		s.state = StateRejected
		return Result{}, &Rejection{Violations: vs}
	}

	s.state = StateCreatingDrafts
	persisted := make([]bank.Question, 0, len(drafts))
	for _, d := range drafts {
		bq, err := bankSvc.Create(ctx, draftToBank(d, s.details.SubjectID))
		if err != nil {
			s.state = StateRejected
			return Result{}, &CollaboratorError{Step: StateCreatingDrafts, CreatedIDs: s.CreatedBankIDs(), Err: err}
		}
		s.created = append(s.created, bq.ID)
		persisted = append(persisted, bq)
	}

	s.state = StateBuildingSnapshots
	set := make([]question.Snapshot, 0, len(s.picks)+len(persisted))
	for _, p := range s.picks {
		set = append(set, question.BuildSnapshot(p.Source(), true))
	}
	for _, bq := range persisted {
		set = append(set, question.BuildSnapshot(bq.Source(), false))
	}

	s.state = StateValidatingSnapshots
	set = question.NormalizeSet(set)
	if vs := question.ValidateSet(set); len(vs) > 0 {
		s.state = StateRejected
		return Result{}, &Rejection{Violations: vs}
	}

	s.state = StateSubmitting
	q := Quiz{
		CourseID:         s.details.CourseID,
		SubjectID:        s.details.SubjectID,
		Title:            strings.TrimSpace(s.details.Title),
		Description:      s.details.Description,
		StartTime:        s.details.StartTime,
		EndTime:          s.details.EndTime,
		ShuffleQuestions: s.details.ShuffleQuestions,
		IsPublished:      s.details.IsPublished,
		Questions:        set,
	}
	createdQuiz, err := quizSvc.CreateQuiz(ctx, q)
	if err != nil {
		s.state = StateRejected
		return Result{}, &CollaboratorError{Step: StateSubmitting, CreatedIDs: s.CreatedBankIDs(), Err: err}
	}

	s.state = StateCommitted
	return Result{Quiz: createdQuiz, Snapshots: set}, nil
}

// ValidateDetails checks the quiz-level fields. Any violation blocks the
// whole flow before a single bank question is created.
func ValidateDetails(d Details) []question.Violation {
	var out []question.Violation
	if strings.TrimSpace(d.SubjectID) == "" {
		out = append(out, question.Violation{Code: CodeMissingSubject, Index: -1, Detail: "no subject chosen"})
	}
	if strings.TrimSpace(d.CourseID) == "" {
		out = append(out, question.Violation{Code: CodeMissingCourse, Index: -1, Detail: "no course chosen"})
	}
	if strings.TrimSpace(d.Title) == "" {
		out = append(out, question.Violation{Code: CodeMissingTitle, Index: -1, Detail: "title is empty"})
	}
	if !d.StartTime.Before(d.EndTime) {
		out = append(out, question.Violation{Code: CodeBadTimeRange, Index: -1, Detail: "end time must be after start time"})
	}
	return out
}

func draftToBank(d question.Draft, subjectID string) bank.Question {
	opts, flags := d.Trimmed()
	correct := make([]interface{}, len(flags))
	for i, f := range flags {
		correct[i] = f
	}
	return bank.Question{
		SubjectID: subjectID,
		Text:      d.Text,
		Type:      string(d.Kind),
		Options:   opts,
		Correct:   correct,
		Points:    1,
	}
}
