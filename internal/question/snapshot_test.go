package question

import (
	"reflect"
	"testing"
)

func TestBuildSnapshotFromBank(t *testing.T) {
	src := Source{
		ID:          "bq-1",
		Text:        "<p><p>Capital of France?</p></p>",
		Type:        "single choice",
		Options:     []interface{}{"Paris", "London"},
		Correct:     []interface{}{1, 0},
		Points:      2.0,
		Explanation: "  basic geography ",
		Images:      []interface{}{"https://cdn.example.com/eiffel.png"},
	}
	s := BuildSnapshot(src, true)

	if s.Text != "<p>Capital of France?</p>" {
		t.Errorf("text = %q", s.Text)
	}
	if s.Type != KindSingleChoice {
		t.Errorf("type = %v", s.Type)
	}
	if !reflect.DeepEqual(s.CorrectOptions, []int{1, 0}) {
		t.Errorf("correct = %v", s.CorrectOptions)
	}
	if s.Points != 2 {
		t.Errorf("points = %v", s.Points)
	}
	if s.Explanation != "basic geography" {
		t.Errorf("explanation = %q", s.Explanation)
	}
	if len(s.Images) != 1 || s.Images[0].URL != "https://cdn.example.com/eiffel.png" || s.Images[0].FromDB {
		t.Errorf("images = %v", s.Images)
	}
	if !s.IsExternal || s.IsNewQuestion || s.IsDeleted || s.IsDirty {
		t.Errorf("lifecycle flags = ext=%v new=%v del=%v dirty=%v", s.IsExternal, s.IsNewQuestion, s.IsDeleted, s.IsDirty)
	}
}

func TestBuildSnapshotFromDraftSetsProvenance(t *testing.T) {
	src := Source{
		ID:      "d-1",
		Text:    "2+2=?",
		Type:    "single_choice",
		Options: []interface{}{"3", "4", "5"},
		Correct: []interface{}{0, 1, 0},
		Points:  1,
	}
	s := BuildSnapshot(src, false)
	if s.IsExternal || !s.IsNewQuestion {
		t.Errorf("draft snapshot: ext=%v new=%v", s.IsExternal, s.IsNewQuestion)
	}
}

func TestBuildSnapshotCoercesLooselyTypedFields(t *testing.T) {
	// Upstream rows carry numbers where strings belong and vice versa.
	src := Source{
		ID:      "bq-2",
		Text:    42.0,
		Type:    2.0,
		Options: []interface{}{1.0, 2.0, 3.0},
		Correct: []interface{}{"1"}, // single index against 3 options
		Points:  "5",
	}
	s := BuildSnapshot(src, true)
	if s.Text != "42" {
		t.Errorf("text = %q", s.Text)
	}
	if !reflect.DeepEqual(s.Options, []string{"1", "2", "3"}) {
		t.Errorf("options = %v", s.Options)
	}
	if s.Points != 5 {
		t.Errorf("points = %v", s.Points)
	}
	if len(s.CorrectOptions) != 3 {
		t.Errorf("correct length = %d", len(s.CorrectOptions))
	}
}

func TestBuildSnapshotImagesStructured(t *testing.T) {
	src := Source{
		ID:      "bq-3",
		Text:    "look",
		Options: []interface{}{"a", "b"},
		Correct: []interface{}{1, 0},
		Images: []interface{}{
			map[string]interface{}{"url": "https://img/1.png", "from_db": true},
			map[string]interface{}{"url": "https://img/2.png"},
			"https://img/3.png",
		},
	}
	s := BuildSnapshot(src, true)
	want := []Image{
		{URL: "https://img/1.png", FromDB: true},
		{URL: "https://img/2.png", FromDB: false},
		{URL: "https://img/3.png", FromDB: false},
	}
	if !reflect.DeepEqual(s.Images, want) {
		t.Errorf("images = %v, want %v", s.Images, want)
	}
}

func TestNormalizeSnapshotRecomputesMismatchedFlags(t *testing.T) {
	s := Snapshot{
		ID:             "x",
		Text:           "pick one",
		Type:           KindSingleChoice,
		Options:        []string{"a", "b", "c"},
		CorrectOptions: []int{1}, // length drifted: index list
		Points:         1,
	}
	n := NormalizeSnapshot(s)
	if !reflect.DeepEqual(n.CorrectOptions, []int{0, 1, 0}) {
		t.Errorf("correct = %v", n.CorrectOptions)
	}
}

func TestNormalizeSnapshotReclassifiesType(t *testing.T) {
	s := Snapshot{
		ID:             "x",
		Text:           "pick many",
		Type:           Kind("mcq"),
		Options:        []string{"a", "b", "c"},
		CorrectOptions: []int{1, 1, 0},
		Points:         1,
	}
	n := NormalizeSnapshot(s)
	if n.Type != KindMultiChoice {
		t.Errorf("type = %v, want multi (two flags upgrade)", n.Type)
	}
}

func TestNormalizeSnapshotIdempotent(t *testing.T) {
	inputs := []Snapshot{
		{
			ID:             "a",
			Text:           "  <p><p>messy</p></p> ",
			Type:           Kind("CHECKBOX"),
			Options:        []string{" x ", "<p><p>y</p></p>", "z"},
			CorrectOptions: []int{1, 2, 0}, // 2 clamps to 1
			Points:         0,
		},
		{
			ID:             "a2",
			Text:           "<p> <p>padded wrapper</p> </p>",
			Type:           KindSingleChoice,
			Options:        []string{"<div> <div> u </div> </div>", "v"},
			CorrectOptions: []int{1, 0},
			Points:         1,
		},
		{
			ID:             "b",
			Text:           "clean",
			Type:           KindTrueFalse,
			Options:        []string{"true", "false"},
			CorrectOptions: []int{1},
			Points:         1,
		},
		{
			ID:      "c",
			Text:    "no options",
			Type:    KindFillBlank,
			Options: nil,
			Points:  3,
		},
	}
	for _, in := range inputs {
		once := NormalizeSnapshot(in)
		twice := NormalizeSnapshot(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("snapshot %s: normalize not idempotent:\nonce:  %+v\ntwice: %+v", in.ID, once, twice)
		}
	}
}
