package question

import "strings"

// Image is a normalized illustration reference.
type Image struct {
	URL    string `json:"url" bson:"url"`
	FromDB bool   `json:"from_db" bson:"from_db"`
}

// Snapshot is the immutable copy of a question embedded in a quiz. Once a
// quiz is created its snapshots never track later edits to the originating
// bank question: they are values, not references. Every field is a plain
// scalar or a slice of plain scalars; nothing loosely typed survives past
// the builder.
type Snapshot struct {
	ID             string   `json:"id" bson:"id"`
	Text           string   `json:"text" bson:"text"`
	Type           Kind     `json:"type" bson:"type"`
	Options        []string `json:"options" bson:"options"`
	CorrectOptions []int    `json:"correct_options" bson:"correct_options"`
	Points         float64  `json:"points" bson:"points"`
	Explanation    string   `json:"explanation,omitempty" bson:"explanation,omitempty"`
	Images         []Image  `json:"images,omitempty" bson:"images,omitempty"`

	// Lifecycle flags.
	IsExternal    bool `json:"is_external" bson:"is_external"`         // picked from the bank rather than authored inline
	IsNewQuestion bool `json:"is_new_question" bson:"is_new_question"` // did not exist in the bank before this quiz
	IsDeleted     bool `json:"is_deleted" bson:"is_deleted"`           // soft-removed after creation, kept for grading history
	IsDirty       bool `json:"is_dirty" bson:"is_dirty"`               // edited after being taken into the quiz
}

// Source is the loosely typed view of a question entering the builder.
// Fields are interface{} on purpose: upstream rows may carry numbers where
// strings are expected, bare URL strings where image objects are expected,
// and any of the legacy correctness encodings.
type Source struct {
	ID          string
	Text        interface{}
	Type        interface{}
	Options     []interface{}
	Correct     []interface{}
	Points      interface{}
	Explanation interface{}
	Images      []interface{}
}

// BuildSnapshot converts a bank question or an authored draft into a
// canonical snapshot. fromBank records provenance: bank picks are external
// and not new, fresh drafts are inline and new.
func BuildSnapshot(src Source, fromBank bool) Snapshot {
	opts := make([]string, 0, len(src.Options))
	for _, o := range src.Options {
		opts = append(opts, UnwrapNested(strings.TrimSpace(AsString(o))))
	}
	points, err := AsNumber(src.Points)
	if err != nil || points <= 0 {
		points = 1
	}
	s := Snapshot{
		ID:             src.ID,
		Text:           UnwrapNested(strings.TrimSpace(AsString(src.Text))),
		Type:           NormalizeKind(src.Type),
		Options:        opts,
		CorrectOptions: BuildCorrectOptions(src.Correct, opts),
		Points:         points,
		Explanation:    strings.TrimSpace(AsString(src.Explanation)),
		Images:         normalizeImages(src.Images),
		IsExternal:     fromBank,
		IsNewQuestion:  !fromBank,
		IsDeleted:      false,
		IsDirty:        false,
	}
	s.Type = DeriveKind(s.Type, s.CorrectOptions)
	return s
}

// NormalizeSnapshot is the second, idempotent pass applied to the whole
// assembled set right before submission. It re-stringifies every field,
// re-classifies the type from scratch and recomputes the flag array when
// its length drifted from the option count. Redundant on a snapshot that
// just left BuildSnapshot, and deliberately so: partial coercion upstream
// must not be able to leak through.
func NormalizeSnapshot(s Snapshot) Snapshot {
	out := s
	out.Text = UnwrapNested(strings.TrimSpace(out.Text))
	opts := make([]string, len(out.Options))
	for i, o := range out.Options {
		opts[i] = UnwrapNested(strings.TrimSpace(o))
	}
	out.Options = opts

	if len(out.CorrectOptions) != len(out.Options) {
		raw := make([]interface{}, len(out.CorrectOptions))
		for i, f := range out.CorrectOptions {
			raw[i] = f
		}
		out.CorrectOptions = BuildCorrectOptions(raw, out.Options)
	} else {
		flags := make([]int, len(out.CorrectOptions))
		for i, f := range out.CorrectOptions {
			if f > 0 {
				flags[i] = 1
			}
		}
		out.CorrectOptions = flags
	}

	out.Type = DeriveKind(NormalizeKind(string(out.Type)), out.CorrectOptions)
	if out.Points <= 0 {
		out.Points = 1
	}
	out.Explanation = strings.TrimSpace(out.Explanation)
	return out
}

// NormalizeSet runs NormalizeSnapshot over a full snapshot list.
func NormalizeSet(set []Snapshot) []Snapshot {
	out := make([]Snapshot, len(set))
	for i, s := range set {
		out[i] = NormalizeSnapshot(s)
	}
	return out
}

// normalizeImages accepts bare URL strings as well as structured
// {url, fromDB} objects (string-keyed maps after JSON/BSON decode).
func normalizeImages(raw []interface{}) []Image {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Image, 0, len(raw))
	for _, v := range raw {
		switch x := v.(type) {
		case Image:
			out = append(out, x)
		case map[string]interface{}:
			img := Image{}
			if u, ok := x["url"]; ok {
				img.URL = AsString(u)
			} else if u, ok := x["URL"]; ok {
				img.URL = AsString(u)
			}
			if f, ok := x["from_db"]; ok {
				img.FromDB = AsFlag(f) == 1
			} else if f, ok := x["fromDB"]; ok {
				img.FromDB = AsFlag(f) == 1
			}
			if img.URL != "" {
				out = append(out, img)
			}
		default:
			if u := strings.TrimSpace(AsString(v)); u != "" {
				out = append(out, Image{URL: u})
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
