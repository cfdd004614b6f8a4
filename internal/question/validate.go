package question

import "fmt"

// Structural validation of an assembled snapshot set. Violations are
// user-correctable and reported as values naming the offending question and
// rule, so handlers can render them directly.

// Code identifies a validation rule.
type Code string

const (
	CodeTooFewOptions   Code = "too_few_options"
	CodeDuplicateOption Code = "duplicate_option"
	CodeNoCorrectOption Code = "no_correct_option"
	CodeTooManyCorrect  Code = "too_many_correct"
)

// Violation names the question (by position and id) and rule that failed.
type Violation struct {
	Code       Code   `json:"code"`
	Index      int    `json:"index"`
	QuestionID string `json:"question_id,omitempty"`
	Detail     string `json:"detail"`
}

func (v Violation) Error() string {
	return fmt.Sprintf("question %d: %s (%s)", v.Index+1, v.Detail, v.Code)
}

// ValidateSnapshot checks one snapshot's structural invariants. index is
// the question's position in the set, used for reporting.
func ValidateSnapshot(index int, s Snapshot) []Violation {
	var out []Violation

	if len(s.Options) < minDraftOptions {
		out = append(out, Violation{
			Code:       CodeTooFewOptions,
			Index:      index,
			QuestionID: s.ID,
			Detail:     fmt.Sprintf("has %d options, need at least %d", len(s.Options), minDraftOptions),
		})
	}

	seen := map[string]int{}
	for i, opt := range s.Options {
		key := FoldKey(opt)
		if first, dup := seen[key]; dup {
			out = append(out, Violation{
				Code:       CodeDuplicateOption,
				Index:      index,
				QuestionID: s.ID,
				Detail:     fmt.Sprintf("options %d and %d are the same text", first+1, i+1),
			})
		} else {
			seen[key] = i
		}
	}

	set := 0
	for _, f := range s.CorrectOptions {
		if f > 0 {
			set++
		}
	}
	if set == 0 {
		out = append(out, Violation{
			Code:       CodeNoCorrectOption,
			Index:      index,
			QuestionID: s.ID,
			Detail:     "no correct answer selected",
		})
	}
	if set > 1 && !s.Type.AllowsMultiple() {
		out = append(out, Violation{
			Code:       CodeTooManyCorrect,
			Index:      index,
			QuestionID: s.ID,
			Detail:     fmt.Sprintf("%d correct answers but type %s permits one", set, s.Type),
		})
	}
	return out
}

// ValidateSet checks every snapshot in order and returns all violations.
func ValidateSet(set []Snapshot) []Violation {
	var out []Violation
	for i, s := range set {
		out = append(out, ValidateSnapshot(i, s)...)
	}
	return out
}
