package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeTitle is the lookup form of a job title: trimmed, lower-cased,
// inner whitespace collapsed to single spaces.
func NormalizeTitle(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	return strings.ToLower(strings.Join(strings.Fields(input), " "))
}

// TitleCase is the display form of a job title, used when it is interpolated
// into a query or returned to the caller.
func TitleCase(input string) string {
	input = strings.Join(strings.Fields(input), " ")
	if input == "" {
		return ""
	}
	// cases.Caser is stateful, one per call.
	return cases.Title(language.English).String(input)
}

// QueryTitle is title as it ends up inside a query: double quotes removed,
// whitespace trimmed. An empty result means there is nothing to search for.
func QueryTitle(input string) string {
	return strings.TrimSpace(stripQuotes(input))
}

func sameTitle(a, b string) bool {
	return NormalizeTitle(a) == NormalizeTitle(b)
}
