package question

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	defaultDraftOptions = 4
	minDraftOptions     = 2
)

// Draft is an author-created question that has not been persisted yet. Its
// id is generated client-side and stays stable for the editing session.
type Draft struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct []int    `json:"correct_options"`
	Kind    Kind     `json:"type"`
}

// DraftList is the in-memory, ordered collection of drafts for one
// authoring session. It is an explicit handle passed into every operation
// rather than ambient state, so the submission flow can be driven without
// a UI harness. It has no persistence of its own.
//
// Every mutation keeps len(Options) == len(Correct) and re-derives the
// draft's kind from its flag cardinality.
type DraftList struct {
	drafts []Draft
}

// NewDraftList starts a session with a single empty draft.
func NewDraftList() *DraftList {
	l := &DraftList{}
	l.AddQuestion()
	return l
}

// Drafts returns the drafts in authoring order.
func (l *DraftList) Drafts() []Draft {
	out := make([]Draft, len(l.drafts))
	copy(out, l.drafts)
	return out
}

// NonEmpty returns the drafts that carry actual question text and therefore
// participate in submission.
func (l *DraftList) NonEmpty() []Draft {
	out := make([]Draft, 0, len(l.drafts))
	for _, d := range l.drafts {
		if FoldKey(d.Text) != "" {
			out = append(out, d)
		}
	}
	return out
}

// AddQuestion appends an empty draft with the default number of blank
// options and returns its id.
func (l *DraftList) AddQuestion() string {
	d := Draft{
		ID:      uuid.NewString(),
		Options: make([]string, defaultDraftOptions),
		Correct: make([]int, defaultDraftOptions),
		Kind:    KindSingleChoice,
	}
	l.drafts = append(l.drafts, d)
	return d.ID
}

// LoadQuestion appends a fully specified draft, padding or truncating the
// flag list so the parallel-array invariant holds, and returns its id.
// Used when a client ships an already-authored draft in one piece.
func (l *DraftList) LoadQuestion(text string, options []string, flags []int) string {
	d := Draft{
		ID:      uuid.NewString(),
		Text:    text,
		Options: append([]string(nil), options...),
		Correct: make([]int, len(options)),
		Kind:    KindSingleChoice,
	}
	for i := range d.Correct {
		if i < len(flags) && flags[i] > 0 {
			d.Correct[i] = 1
		}
	}
	d.Kind = DeriveKind(d.Kind, d.Correct)
	l.drafts = append(l.drafts, d)
	return d.ID
}

// RemoveQuestion deletes a draft. The collection never empties: removing
// the last draft fails.
func (l *DraftList) RemoveQuestion(id string) error {
	if len(l.drafts) <= 1 {
		return fmt.Errorf("cannot remove the last draft")
	}
	for i, d := range l.drafts {
		if d.ID == id {
			l.drafts = append(l.drafts[:i], l.drafts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("draft %q not found", id)
}

// SetText replaces a draft's question text.
func (l *DraftList) SetText(id, text string) error {
	d, err := l.find(id)
	if err != nil {
		return err
	}
	d.Text = text
	return nil
}

// AddOption appends one blank option and one zero flag, kept parallel.
func (l *DraftList) AddOption(id string) error {
	d, err := l.find(id)
	if err != nil {
		return err
	}
	d.Options = append(d.Options, "")
	d.Correct = append(d.Correct, 0)
	return nil
}

// RemoveOption drops the option and its flag at index. Refuses to go below
// the minimum option count.
func (l *DraftList) RemoveOption(id string, index int) error {
	d, err := l.find(id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(d.Options) {
		return fmt.Errorf("option index %d out of range", index)
	}
	if len(d.Options) <= minDraftOptions {
		return fmt.Errorf("a question needs at least %d options", minDraftOptions)
	}
	d.Options = append(d.Options[:index], d.Options[index+1:]...)
	d.Correct = append(d.Correct[:index], d.Correct[index+1:]...)
	d.Kind = DeriveKind(d.Kind, d.Correct)
	return nil
}

// SetOptionText replaces one option's text.
func (l *DraftList) SetOptionText(id string, index int, text string) error {
	d, err := l.find(id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(d.Options) {
		return fmt.Errorf("option index %d out of range", index)
	}
	d.Options[index] = text
	return nil
}

// ToggleCorrect flips one correctness flag and re-derives the draft's kind
// from the new cardinality.
func (l *DraftList) ToggleCorrect(id string, index int) error {
	d, err := l.find(id)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(d.Correct) {
		return fmt.Errorf("option index %d out of range", index)
	}
	if d.Correct[index] > 0 {
		d.Correct[index] = 0
	} else {
		d.Correct[index] = 1
	}
	d.Kind = DeriveKind(d.Kind, d.Correct)
	return nil
}

// Trimmed returns the draft's options and flags with blank rows the author
// never filled in removed, still parallel.
func (d Draft) Trimmed() ([]string, []int) {
	opts := make([]string, 0, len(d.Options))
	flags := make([]int, 0, len(d.Correct))
	for i, o := range d.Options {
		if strings.TrimSpace(o) == "" {
			continue
		}
		opts = append(opts, o)
		if i < len(d.Correct) {
			flags = append(flags, d.Correct[i])
		}
	}
	return opts, flags
}

// Source converts a draft into builder input.
func (d Draft) Source() Source {
	trimmedOpts, trimmedFlags := d.Trimmed()
	opts := make([]interface{}, len(trimmedOpts))
	for i, o := range trimmedOpts {
		opts[i] = o
	}
	correct := make([]interface{}, len(trimmedFlags))
	for i, f := range trimmedFlags {
		correct[i] = f
	}
	return Source{
		ID:      d.ID,
		Text:    d.Text,
		Type:    string(d.Kind),
		Options: opts,
		Correct: correct,
		Points:  1,
	}
}

func (l *DraftList) find(id string) (*Draft, error) {
	for i := range l.drafts {
		if l.drafts[i].ID == id {
			return &l.drafts[i], nil
		}
	}
	return nil, fmt.Errorf("draft %q not found", id)
}
