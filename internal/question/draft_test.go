package question

import "testing"

func TestDraftListStartsWithOneDraft(t *testing.T) {
	l := NewDraftList()
	ds := l.Drafts()
	if len(ds) != 1 {
		t.Fatalf("new list has %d drafts, want 1", len(ds))
	}
	d := ds[0]
	if len(d.Options) != 4 || len(d.Correct) != 4 {
		t.Errorf("fresh draft: %d options, %d flags, want 4/4", len(d.Options), len(d.Correct))
	}
	if d.ID == "" {
		t.Error("fresh draft has no id")
	}
}

func TestDraftListNeverEmpties(t *testing.T) {
	l := NewDraftList()
	only := l.Drafts()[0].ID
	if err := l.RemoveQuestion(only); err == nil {
		t.Fatal("removing the last draft must fail")
	}
	second := l.AddQuestion()
	if err := l.RemoveQuestion(second); err != nil {
		t.Fatalf("removing one of two drafts: %v", err)
	}
	if got := len(l.Drafts()); got != 1 {
		t.Fatalf("have %d drafts, want 1", got)
	}
}

func TestDraftOptionMutationsStayParallel(t *testing.T) {
	l := NewDraftList()
	id := l.Drafts()[0].ID

	if err := l.AddOption(id); err != nil {
		t.Fatal(err)
	}
	d := l.Drafts()[0]
	if len(d.Options) != len(d.Correct) || len(d.Options) != 5 {
		t.Fatalf("after add: %d options, %d flags", len(d.Options), len(d.Correct))
	}

	if err := l.SetOptionText(id, 1, "B"); err != nil {
		t.Fatal(err)
	}
	if err := l.ToggleCorrect(id, 1); err != nil {
		t.Fatal(err)
	}
	if err := l.RemoveOption(id, 4); err != nil {
		t.Fatal(err)
	}
	d = l.Drafts()[0]
	if len(d.Options) != len(d.Correct) || len(d.Options) != 4 {
		t.Fatalf("after remove: %d options, %d flags", len(d.Options), len(d.Correct))
	}
	if d.Correct[1] != 1 || d.Options[1] != "B" {
		t.Errorf("edits lost: options=%v flags=%v", d.Options, d.Correct)
	}
}

func TestDraftRemoveOptionRefusesBelowTwo(t *testing.T) {
	l := NewDraftList()
	id := l.Drafts()[0].ID
	if err := l.RemoveOption(id, 3); err != nil {
		t.Fatal(err)
	}
	if err := l.RemoveOption(id, 2); err != nil {
		t.Fatal(err)
	}
	if err := l.RemoveOption(id, 1); err == nil {
		t.Fatal("dropping below 2 options must fail")
	}
}

func TestToggleCorrectRederivesKind(t *testing.T) {
	l := NewDraftList()
	id := l.Drafts()[0].ID

	if err := l.ToggleCorrect(id, 0); err != nil {
		t.Fatal(err)
	}
	if k := l.Drafts()[0].Kind; k != KindSingleChoice {
		t.Errorf("one flag: kind %v, want single", k)
	}
	if err := l.ToggleCorrect(id, 2); err != nil {
		t.Fatal(err)
	}
	if k := l.Drafts()[0].Kind; k != KindMultiChoice {
		t.Errorf("two flags: kind %v, want multi", k)
	}
	if err := l.ToggleCorrect(id, 2); err != nil {
		t.Fatal(err)
	}
	if k := l.Drafts()[0].Kind; k != KindSingleChoice {
		t.Errorf("back to one flag: kind %v, want single", k)
	}
}

func TestNonEmptySkipsBlankDrafts(t *testing.T) {
	l := NewDraftList()
	id2 := l.AddQuestion()
	if err := l.SetText(id2, "<p>real question</p>"); err != nil {
		t.Fatal(err)
	}
	ne := l.NonEmpty()
	if len(ne) != 1 || ne[0].ID != id2 {
		t.Fatalf("NonEmpty = %v, want just %s", ne, id2)
	}
}

func TestDraftSourceDropsBlankOptionRows(t *testing.T) {
	l := NewDraftList()
	id := l.Drafts()[0].ID
	_ = l.SetText(id, "2+2=?")
	_ = l.SetOptionText(id, 0, "3")
	_ = l.SetOptionText(id, 1, "4")
	_ = l.SetOptionText(id, 2, "5")
	_ = l.ToggleCorrect(id, 1)
	// option 3 stays blank

	src := l.Drafts()[0].Source()
	if len(src.Options) != 3 || len(src.Correct) != 3 {
		t.Fatalf("source has %d options, %d flags, want 3/3", len(src.Options), len(src.Correct))
	}
}

func TestLoadQuestionKeepsInvariantAndDerivesKind(t *testing.T) {
	l := NewDraftList()
	id := l.LoadQuestion("pick", []string{"a", "b", "c"}, []int{1, 1})
	var d Draft
	for _, x := range l.Drafts() {
		if x.ID == id {
			d = x
		}
	}
	if len(d.Options) != len(d.Correct) {
		t.Fatalf("options %d, flags %d", len(d.Options), len(d.Correct))
	}
	if d.Kind != KindMultiChoice {
		t.Errorf("kind %v, want multi", d.Kind)
	}
}
