package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	DefaultMaxSynonymLength = 35
	DefaultMaxSynonyms      = 3
)

// CleanOptions bounds what survives CleanCandidates. Zero values fall back to
// the defaults; a negative MaxCount disables the cap.
type CleanOptions struct {
	MaxLength int
	MaxCount  int
}

func (o CleanOptions) withDefaults() CleanOptions {
	if o.MaxLength <= 0 {
		o.MaxLength = DefaultMaxSynonymLength
	}
	if o.MaxCount == 0 {
		o.MaxCount = DefaultMaxSynonyms
	}
	return o
}

// CleanCandidates turns free-form generator output into a list of short,
// distinct, title-cased job titles. Anything empty, longer than MaxLength or
// equal to title itself is discarded. Order of first appearance is kept.
func CleanCandidates(raw, title string, opts CleanOptions) []string {
	opts = opts.withDefaults()

	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		c := TitleCase(stripListMarker(p))
		if c == "" {
			continue
		}
		if utf8.RuneCountInString(c) > opts.MaxLength {
			continue
		}
		if sameTitle(c, title) {
			continue
		}
		k := NormalizeTitle(c)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}

	if opts.MaxCount > 0 && len(out) > opts.MaxCount {
		out = out[:opts.MaxCount]
	}
	return out
}

// stripListMarker removes bullets ("- ", "* ", "• "), ordinal prefixes
// ("1.", "2)") and wrapping quotes.
func stripListMarker(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*•")
	s = strings.TrimSpace(s)

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		s = s[i+1:]
	}

	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '\'' || r == '`'
	})
	return s
}
