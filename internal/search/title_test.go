package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	cases := map[string]string{
		"  Software   Developer ": "software developer",
		"DATA\tScientist":         "data scientist",
		"   ":                     "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeTitle(in), "input %q", in)
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Full Stack Developer", TitleCase("full  stack developer"))
	assert.Equal(t, "Machine Learning Engineer", TitleCase("MACHINE LEARNING ENGINEER"))
	assert.Equal(t, "", TitleCase("  "))
}

func TestQueryTitle(t *testing.T) {
	assert.Equal(t, "Data Scientist", QueryTitle(`  "Data Scientist" `))
	assert.Equal(t, "", QueryTitle(`""`))
	assert.Equal(t, "", QueryTitle(` " " `))
}
