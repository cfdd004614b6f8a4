package question

import "testing"

func TestStripMarkup(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"<b>bold</b>", "bold"},
		{"<p>2+2=?</p>", "2+2=?"},
		{"a &amp; b", "a & b"},
		{"<span class=\"x\">nested <i>tags</i></span>", "nested tags"},
	}
	for _, c := range cases {
		if got := StripMarkup(c.in); got != c.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUnwrapNested(t *testing.T) {
	cases := []struct{ in, want string }{
		{"<p><p>hello</p></p>", "<p>hello</p>"},
		{"<p><p><p>deep</p></p></p>", "<p>deep</p>"},
		{"<p> <p>padded</p> </p>", "<p>padded</p>"},
		{"<div>\n  <div>indented</div>\n</div>", "<div>indented</div>"},
		{"<p>single wrap</p>", "<p>single wrap</p>"},
		{"<div><div>x</div></div>", "<div>x</div>"},
		{"<p>a</p><p>b</p>", "<p>a</p><p>b</p>"}, // two siblings, not a wrapper
		{"no markup", "no markup"},
	}
	for _, c := range cases {
		got := UnwrapNested(c.in)
		if got != c.want {
			t.Errorf("UnwrapNested(%q) = %q, want %q", c.in, got, c.want)
		}
		if again := UnwrapNested(got); again != got {
			t.Errorf("UnwrapNested(%q) not stable: %q then %q", c.in, got, again)
		}
	}
}

func TestFoldKey(t *testing.T) {
	if FoldKey("  <b>Paris</b>  ") != FoldKey("paris") {
		t.Error("markup and case must not affect the fold key")
	}
	if FoldKey("New  York") != "new york" {
		t.Errorf("got %q", FoldKey("New  York"))
	}
	if FoldKey("") != "" || FoldKey("<p></p>") != "" {
		t.Error("empty input must fold to empty key")
	}
}
