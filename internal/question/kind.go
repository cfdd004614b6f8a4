package question

import "strings"

// Kind is the closed set of question types a quiz snapshot may carry.
type Kind string

const (
	KindSingleChoice Kind = "single_choice"
	KindMultiChoice  Kind = "multi_choice"
	KindTrueFalse    Kind = "true_false"
	KindFillBlank    Kind = "fill_blank"
)

// AllowsMultiple reports whether the kind permits more than one correct
// option.
func (k Kind) AllowsMultiple() bool { return k == KindMultiChoice }

// choiceFamily kinds may flip between single and multi as flags change.
func (k Kind) choiceFamily() bool {
	return k == KindSingleChoice || k == KindMultiChoice
}

// NormalizeKind maps a raw type label to a Kind. Labels arrive as free
// strings or numbers depending on the source system; unrecognized input
// defaults to single choice.
func NormalizeKind(raw interface{}) Kind {
	if n, err := AsInt(raw); err == nil {
		switch n {
		case 2:
			return KindMultiChoice
		case 3:
			return KindTrueFalse
		case 4:
			return KindFillBlank
		default:
			return KindSingleChoice
		}
	}
	key := strings.ToLower(AsString(raw))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	switch key {
	case "singlechoice", "single", "sc", "choice", "radio", "mcq", "mcqsingle", "singleselect":
		return KindSingleChoice
	case "multichoice", "multiplechoice", "multi", "mc", "checkbox", "mcqmulti", "multiselect", "multianswer":
		return KindMultiChoice
	case "truefalse", "tf", "bool", "boolean", "yesno", "trueorfalse":
		return KindTrueFalse
	case "fillblank", "fillintheblank", "fillintheblanks", "fb", "blank", "fill", "shortanswer", "text":
		return KindFillBlank
	default:
		return KindSingleChoice
	}
}

// DeriveKind re-derives the kind from correctness cardinality. Must run
// after every change to the flag array, not only at creation: a second flag
// upgrades single choice to multi choice, and dropping back to one (or
// zero) flags reverts it. Kinds outside the choice family never flip.
func DeriveKind(k Kind, flags []int) Kind {
	set := 0
	for _, f := range flags {
		if f > 0 {
			set++
		}
	}
	if set > 1 && k.choiceFamily() {
		return KindMultiChoice
	}
	if set <= 1 && k == KindMultiChoice {
		return KindSingleChoice
	}
	return k
}
