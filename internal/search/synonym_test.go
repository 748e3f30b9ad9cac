package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynonymTable_Lookup_Exact(t *testing.T) {
	got, ok := DefaultSynonyms.Lookup("software developer")

	require.True(t, ok)
	assert.Equal(t, []string{"Software Engineer", "Backend Engineer", "Full Stack Developer", "Application Developer"}, got)
}

func TestSynonymTable_Lookup_NormalizesInput(t *testing.T) {
	got, ok := DefaultSynonyms.Lookup("  Software   DEVELOPER ")

	require.True(t, ok)
	assert.Len(t, got, 4)
}

func TestSynonymTable_Lookup_PartialPrefersLongestKey(t *testing.T) {
	table := SynonymTable{
		"engineer":      {"builder"},
		"data engineer": {"etl developer"},
	}

	got, ok := table.Lookup("senior data engineer")

	require.True(t, ok)
	assert.Equal(t, []string{"Etl Developer"}, got)
}

func TestSynonymTable_Lookup_Miss(t *testing.T) {
	_, ok := DefaultSynonyms.Lookup("pastry chef")
	assert.False(t, ok)

	_, ok = DefaultSynonyms.Lookup("   ")
	assert.False(t, ok)

	_, ok = SynonymTable(nil).Lookup("software developer")
	assert.False(t, ok)
}

func TestSynonymTable_Lookup_ReturnsCopy(t *testing.T) {
	table := SynonymTable{"designer": {"ui designer"}}

	got, _ := table.Lookup("designer")
	got[0] = "mutated"

	again, _ := table.Lookup("designer")
	assert.Equal(t, []string{"Ui Designer"}, again)
}

func TestSynonymTable_Find(t *testing.T) {
	got, ok, err := DefaultSynonyms.Find(context.Background(), "devops engineer")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, got, "Site Reliability Engineer")
}

func TestSynonymTable_Normalized(t *testing.T) {
	table := SynonymTable{
		" Data  Scientist ": {"Data Analyst", " ", "ML Engineer"},
		"":                  {"ignored"},
	}

	got := table.Normalized()

	assert.Equal(t, SynonymTable{"data scientist": {"data analyst", "ml engineer"}}, got)
}

func TestSynonymTable_Lookup_PartialMatchesWholeWordsOnly(t *testing.T) {
	_, ok := DefaultSynonyms.Lookup("software engineering manager")
	assert.False(t, ok)

	got, ok := DefaultSynonyms.Lookup("lead software engineer")
	require.True(t, ok)
	assert.Contains(t, got, "Programmer")
}
