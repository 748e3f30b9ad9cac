package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynonymPrompt(t *testing.T) {
	got := SynonymPrompt("  Data Scientist ", 3)

	assert.Contains(t, got, "Strictly list only 3 alternative professional job titles")
	assert.Contains(t, got, "'Data Scientist'")
	assert.Contains(t, got, "comma-separated")
}

func TestSynonymPrompt_DefaultsCountAndStripsQuotes(t *testing.T) {
	got := SynonymPrompt("chef's assistant", 0)

	assert.Contains(t, got, "only 4 alternative")
	assert.Contains(t, got, "'chefs assistant'")
}
