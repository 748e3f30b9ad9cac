package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build_SafeFirst(t *testing.T) {
	b := NewBuilder(DefaultBuilderConfig())

	got := b.Build("software developer", nil)

	want := []string{
		`"Software Developer" AND ("hiring" OR "recruiting" OR "join our team" OR "looking for")`,
		`("Software Developer") AND "hiring"`,
		`("Software Developer") AND "recruiting"`,
		`"Software Developer" AND ("hiring" OR "recruiting" OR "join our team" OR "looking for") AND NOT ("internship" OR "contract")`,
	}
	assert.Equal(t, want, got)
}

func TestBuilder_Build_SynonymsJoinTitleDisjunction(t *testing.T) {
	b := NewBuilder(DefaultBuilderConfig())

	got := b.Build("Data Scientist", []string{"Data Analyst", "data scientist", "AI Engineer", "Research Scientist", "Statistician"})
	require.NotEmpty(t, got)

	assert.Equal(t, `("Data Scientist" OR "Data Analyst" OR "Ai Engineer" OR "Research Scientist") AND "hiring"`, got[1])
	for _, q := range got {
		assert.NotContains(t, q, "Statistician")
	}
}

func TestBuilder_Build_BroadFirstDropsOverLimitShapes(t *testing.T) {
	cfg := DefaultBuilderConfig()
	cfg.Ordering = OrderBroadFirst
	b := NewBuilder(cfg)

	got := b.Build("software developer", []string{"Software Engineer", "Backend Engineer", "Full Stack Developer"})

	require.Len(t, got, 5)
	assert.Equal(t, `("Software Developer" OR "Software Engineer" OR "Backend Engineer" OR "Full Stack Developer") AND ("hiring" OR "recruiting" OR "join our team" OR "looking for")`, got[0])
	assert.Equal(t, `("Software Developer" OR "Software Engineer" OR "Backend Engineer" OR "Full Stack Developer")`, got[4])
	for _, q := range got {
		assert.LessOrEqual(t, CountOperators(q), DefaultMaxOperators, q)
	}
}

func TestBuilder_Build_Properties(t *testing.T) {
	titles := []string{
		"software developer",
		"  Data   Scientist ",
		"machine learning engineer",
		"PRODUCT MANAGER",
		"a",
		`systems "engineer"`,
	}
	synonymSets := [][]string{
		nil,
		{"Backend Engineer"},
		{"Site Reliability Engineer", "Platform Engineer", "Infrastructure Engineer", "Cloud Engineer"},
	}

	for _, ordering := range []Ordering{OrderSafeFirst, OrderBroadFirst} {
		cfg := DefaultBuilderConfig()
		cfg.Ordering = ordering
		b := NewBuilder(cfg)

		for _, title := range titles {
			for _, syns := range synonymSets {
				got := b.Build(title, syns)
				require.NotEmpty(t, got, "title=%q ordering=%s", title, ordering)

				quoted := `"` + TitleCase(strings.ReplaceAll(title, `"`, "")) + `"`
				for _, q := range got {
					assert.Contains(t, q, quoted)
					assert.LessOrEqual(t, CountOperators(q), DefaultMaxOperators, q)
					assert.LessOrEqual(t, len(q), DefaultMaxLength, q)
				}

				assert.Equal(t, got, b.Build(title, syns), "build must be deterministic")
			}
		}
	}
}

func TestBuilder_Build_FallsBackWhenEveryShapeIsTooLong(t *testing.T) {
	cfg := DefaultBuilderConfig()
	cfg.MaxLength = 10
	b := NewBuilder(cfg)

	got := b.Build("Site Reliability Engineer", nil)

	assert.Equal(t, []string{`"Site Reliability Engineer" AND "hiring"`}, got)
}

func TestBuilder_Build_NoExclusionsConfigured(t *testing.T) {
	cfg := DefaultBuilderConfig()
	cfg.Exclusions = []string{}
	b := NewBuilder(cfg)

	got := b.Build("designer", nil)

	require.Len(t, got, 3)
	for _, q := range got {
		assert.NotContains(t, q, "NOT")
	}
}

func TestNewBuilder_BoundsPhraseLists(t *testing.T) {
	cfg := DefaultBuilderConfig()
	cfg.Actions = []string{"hiring", " ", "recruiting", "join our team", "looking for", "we're hiring"}
	b := NewBuilder(cfg)

	assert.Equal(t, []string{"hiring", "recruiting", "join our team", "looking for"}, b.Config().Actions)
}

func TestCountOperators(t *testing.T) {
	cases := []struct {
		query string
		want  int
	}{
		{`"Software Developer"`, 0},
		{`"Software Developer" AND "hiring"`, 1},
		{`("A" OR "B") AND NOT ("C" OR "D")`, 4},
		{`"rock AND roll" AND "NOT a drill"`, 1},
		{`"Software Developer" AND ("hiring" OR "recruiting" OR "join our team" OR "looking for") AND NOT ("internship" OR "contract")`, 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CountOperators(tc.query), tc.query)
	}
}

func TestBuilder_Build_QuotesOnlyTitle(t *testing.T) {
	b := NewBuilder(DefaultBuilderConfig())

	assert.Empty(t, b.Build(`""`, nil))
	assert.Empty(t, b.Build(` " " `, []string{"Engineer"}))
}

func TestBuilder_Build_OversizedTitleFallsBack(t *testing.T) {
	b := NewBuilder(DefaultBuilderConfig())
	title := strings.Repeat("very ", 55) + "long title"

	got := b.Build(title, nil)

	require.Len(t, got, 1)
	assert.True(t, strings.HasSuffix(got[0], `" AND "hiring"`))
	assert.Greater(t, len(got[0]), DefaultMaxLength)
}
