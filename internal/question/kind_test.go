package question

import "testing"

func TestNormalizeKind(t *testing.T) {
	cases := []struct {
		raw  interface{}
		want Kind
	}{
		{"single_choice", KindSingleChoice},
		{"Single-Choice", KindSingleChoice},
		{"SC", KindSingleChoice},
		{"radio", KindSingleChoice},
		{"multi_choice", KindMultiChoice},
		{"Multiple Choice", KindMultiChoice},
		{"mc", KindMultiChoice},
		{"checkbox", KindMultiChoice},
		{"true_false", KindTrueFalse},
		{"TrueFalse", KindTrueFalse},
		{"TF", KindTrueFalse},
		{"boolean", KindTrueFalse},
		{"fill_blank", KindFillBlank},
		{"Fill in the blank", KindFillBlank},
		{"short answer", KindFillBlank},
		{2.0, KindMultiChoice},
		{3.0, KindTrueFalse},
		{4.0, KindFillBlank},
		{1.0, KindSingleChoice},
		{"", KindSingleChoice},
		{"whatisthis", KindSingleChoice},
		{nil, KindSingleChoice},
	}
	for _, c := range cases {
		if got := NormalizeKind(c.raw); got != c.want {
			t.Errorf("NormalizeKind(%v) = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestDeriveKindUpgradesAndReverts(t *testing.T) {
	if got := DeriveKind(KindSingleChoice, []int{1, 1, 0}); got != KindMultiChoice {
		t.Errorf("two flags on single choice: got %v, want multi", got)
	}
	if got := DeriveKind(KindMultiChoice, []int{0, 1, 0}); got != KindSingleChoice {
		t.Errorf("one flag on multi choice: got %v, want single", got)
	}
	if got := DeriveKind(KindMultiChoice, []int{0, 0, 0}); got != KindSingleChoice {
		t.Errorf("zero flags on multi choice: got %v, want single", got)
	}
	if got := DeriveKind(KindMultiChoice, []int{1, 1, 1}); got != KindMultiChoice {
		t.Errorf("three flags on multi choice: got %v, want multi", got)
	}
}

func TestDeriveKindLeavesNonChoiceFamilyAlone(t *testing.T) {
	if got := DeriveKind(KindTrueFalse, []int{1, 1}); got != KindTrueFalse {
		t.Errorf("true/false never upgrades: got %v", got)
	}
	if got := DeriveKind(KindFillBlank, []int{1, 1, 1}); got != KindFillBlank {
		t.Errorf("fill blank never upgrades: got %v", got)
	}
}
