package question

import (
	"html"
	"strings"
	"unicode"
)

// Heuristic HTML-ish helpers. Question text arrives from rich-text editors
// and legacy imports; a full HTML parser buys nothing here since we only
// strip tags and peel redundant wrappers.

// StripMarkup removes tags and unescapes entities.
func StripMarkup(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return html.UnescapeString(b.String())
}

// UnwrapNested peels doubled wrapper tags: "<p><p>x</p></p>" becomes
// "<p>x</p>". Editors that re-wrap already-wrapped content on every save
// produce these. Each peel trims the exposed content, so the result is
// stable under repeated calls.
func UnwrapNested(s string) string {
	for {
		tag, inner, ok := splitWrapper(s)
		if !ok {
			return s
		}
		innerTag, _, innerOK := splitWrapper(inner)
		if !innerOK || innerTag != tag {
			return s
		}
		s = strings.TrimSpace(inner)
	}
}

// splitWrapper matches s against <tag ...>inner</tag> with nothing outside.
func splitWrapper(s string) (tag, inner string, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) < 7 || s[0] != '<' || s[1] == '/' {
		return "", "", false
	}
	close := strings.IndexByte(s, '>')
	if close < 0 {
		return "", "", false
	}
	open := s[1:close]
	if sp := strings.IndexFunc(open, unicode.IsSpace); sp >= 0 {
		open = open[:sp]
	}
	open = strings.ToLower(open)
	if open == "" || !isWrapperTag(open) {
		return "", "", false
	}
	end := "</" + open + ">"
	if !strings.HasSuffix(strings.ToLower(s), end) {
		return "", "", false
	}
	return open, s[close+1 : len(s)-len(end)], true
}

func isWrapperTag(t string) bool {
	switch t {
	case "p", "div", "span":
		return true
	}
	return false
}

// FoldKey produces the comparison key used for duplicate detection and
// text-label matching: markup stripped, case folded, punctuation dropped,
// runs of whitespace collapsed.
func FoldKey(s string) string {
	s = StripMarkup(s)
	out := make([]rune, 0, len(s))
	space := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			space = true
		case unicode.IsPunct(r):
			// skip
		default:
			if space && len(out) > 0 {
				out = append(out, ' ')
			}
			space = false
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}
