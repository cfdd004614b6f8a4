package question

import (
	"strings"
)

// Correctness decoding. "Which options are correct" reaches us in at least
// four incompatible shapes depending on where a question originated:
// canonical flag arrays, bit-strings ("0110"), index lists ([1,2]) and
// free-text option labels ("B" or the option text itself). The shape is
// detected once, here at the boundary, into a tagged value; callers never
// re-sniff raw input downstream.

// Encoding tags the detected shape of a raw correctness value.
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingCanonical
	EncodingBitString
	EncodingIndexList
	EncodingTextLabels
)

func (e Encoding) String() string {
	switch e {
	case EncodingCanonical:
		return "canonical"
	case EncodingBitString:
		return "bit_string"
	case EncodingIndexList:
		return "index_list"
	case EncodingTextLabels:
		return "text_labels"
	default:
		return "unknown"
	}
}

// Correctness is the detected, already-resolved representation. Flags is
// always populated with one 0/1 entry per option.
type Correctness struct {
	Encoding Encoding
	Flags    []int
}

// BuildCorrectOptions decodes any raw correctness representation into a
// canonical flag array of exactly len(options) entries.
func BuildCorrectOptions(raw []interface{}, options []string) []int {
	return DetectCorrectness(raw, options).Flags
}

// DetectCorrectness classifies raw input and resolves it against the
// option list. Rules run in order; the first match wins.
func DetectCorrectness(raw []interface{}, options []string) Correctness {
	n := len(options)

	// Rule 1: length already matches the option count, coerce entrywise.
	if len(raw) == n && n > 0 {
		flags := make([]int, n)
		for i, v := range raw {
			flags[i] = AsFlag(v)
		}
		return Correctness{Encoding: EncodingCanonical, Flags: flags}
	}

	// Rule 2: a single bit-string covering every option positionally.
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		bits := stripBitSeparators(s)
		if len(bits) != n || n == 0 {
			continue
		}
		if !isBitString(bits) {
			continue
		}
		flags := make([]int, n)
		for i := 0; i < n; i++ {
			if bits[i] == '1' {
				flags[i] = 1
			}
		}
		return Correctness{Encoding: EncodingBitString, Flags: flags}
	}

	// Rule 3: a list of option indices.
	flags := make([]int, n)
	matched := false
	for _, v := range raw {
		idx, err := AsInt(v)
		if err != nil {
			continue
		}
		if idx < 0 || idx >= n {
			continue
		}
		flags[idx] = 1
		matched = true
	}
	if matched {
		return Correctness{Encoding: EncodingIndexList, Flags: flags}
	}

	// Rule 4: free-text labels, matched by leading letter or by option text.
	flags = make([]int, n)
	matched = false
	for _, v := range raw {
		label := strings.TrimSpace(StripMarkup(AsString(v)))
		if label == "" {
			continue
		}
		if idx, ok := letterIndex(label); ok && idx < n {
			flags[idx] = 1
			matched = true
			continue
		}
		key := FoldKey(label)
		for i, opt := range options {
			if key != "" && key == FoldKey(opt) {
				flags[i] = 1
				matched = true
			}
		}
	}
	if matched {
		return Correctness{Encoding: EncodingTextLabels, Flags: flags}
	}

	// Rule 5: nothing recognized; all-incorrect. The structural validator
	// catches this later as a missing correct answer, so malformed input
	// still cannot reach a committed quiz unnoticed.
	return Correctness{Encoding: EncodingUnknown, Flags: make([]int, n)}
}

// stripBitSeparators drops whitespace and common list separators so that
// "0,1,1,0" and "0 1 1 0" read as "0110".
func stripBitSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ',', '|', ';':
			return -1
		}
		return r
	}, s)
}

func isBitString(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// letterIndex maps a bare leading letter A-D (optionally followed by a
// separator such as ")" or ".") to an option position.
func letterIndex(label string) (int, bool) {
	r := label[0]
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'D' {
		return 0, false
	}
	if len(label) > 1 {
		next := label[1]
		if (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z') || (next >= '0' && next <= '9') {
			return 0, false
		}
	}
	return int(r - 'A'), true
}
