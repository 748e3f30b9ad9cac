package usecase

import (
	"context"
	"errors"
	"testing"

	"jobquery/internal/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	out []string
	err error
}

func (s stubResolver) Resolve(context.Context, string) ([]string, error) {
	return s.out, s.err
}

func TestQueryGenerator_Generate(t *testing.T) {
	uc := NewQueryUsecase(stubResolver{out: []string{"Software Engineer"}}, nil, nil)

	out, err := uc.Generate(context.Background(), GenerateInput{JobTitle: "software developer", FullTime: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"Software Engineer"}, out.AlternateTitles)
	assert.NoError(t, out.SynonymErr)
	require.Len(t, out.Queries, 4)
	assert.Equal(t, `"Software Developer" AND ("hiring" OR "recruiting" OR "join our team" OR "looking for")`, out.Queries[0])
	assert.Equal(t, `("Software Developer" OR "Software Engineer") AND "hiring"`, out.Queries[1])
}

func TestQueryGenerator_SynonymFailureStillBuilds(t *testing.T) {
	genErr := errors.New("boom")
	uc := NewQueryUsecase(stubResolver{out: []string{}, err: genErr}, nil, nil)

	out, err := uc.Generate(context.Background(), GenerateInput{JobTitle: "Nurse"})

	require.NoError(t, err)
	assert.ErrorIs(t, out.SynonymErr, genErr)
	assert.NotNil(t, out.AlternateTitles)
	assert.Empty(t, out.AlternateTitles)
	assert.NotEmpty(t, out.Queries)
}

func TestQueryGenerator_FlagsDoNotChangeQueries(t *testing.T) {
	uc := NewQueryUsecase(nil, search.NewBuilder(search.DefaultBuilderConfig()), nil)

	a, err := uc.Generate(context.Background(), GenerateInput{JobTitle: "Plumber"})
	require.NoError(t, err)
	b, err := uc.Generate(context.Background(), GenerateInput{JobTitle: "Plumber", PartTime: true, Contract: true, Internship: true})
	require.NoError(t, err)

	assert.Equal(t, a.Queries, b.Queries)
}

func TestQueryGenerator_EmptyTitle(t *testing.T) {
	uc := NewQueryUsecase(nil, nil, nil)

	_, err := uc.Generate(context.Background(), GenerateInput{JobTitle: " \t"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestQueryGenerator_QuotesOnlyTitle(t *testing.T) {
	uc := NewQueryUsecase(stubResolver{out: []string{"x"}}, nil, nil)

	_, err := uc.Generate(context.Background(), GenerateInput{JobTitle: `""`})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
