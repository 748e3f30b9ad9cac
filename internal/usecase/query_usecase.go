package usecase

import (
	"context"
	"io"

	"jobquery/internal/search"

	"github.com/charmbracelet/log"
)

// GenerateInput mirrors the form fields. The employment-type flags are
// accepted but do not influence the generated queries.
type GenerateInput struct {
	JobTitle   string
	FullTime   bool
	PartTime   bool
	Contract   bool
	Internship bool
}

type GenerateOutput struct {
	Queries         []string
	AlternateTitles []string
	// SynonymErr is set when synonym resolution failed. The queries are
	// still valid, built without alternates.
	SynonymErr error
}

type QueryUsecase interface {
	Generate(ctx context.Context, in GenerateInput) (GenerateOutput, error)
}

type QueryGenerator struct {
	synonyms Resolver
	builder  *search.Builder
	logger   *log.Logger
}

func NewQueryUsecase(synonyms Resolver, builder *search.Builder, logger *log.Logger) *QueryGenerator {
	if builder == nil {
		builder = search.NewBuilder(search.DefaultBuilderConfig())
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &QueryGenerator{synonyms: synonyms, builder: builder, logger: logger}
}

func (u *QueryGenerator) Generate(ctx context.Context, in GenerateInput) (GenerateOutput, error) {
	title := search.QueryTitle(in.JobTitle)
	if title == "" {
		return GenerateOutput{}, ErrInvalidInput
	}

	out := GenerateOutput{AlternateTitles: []string{}}
	if u.synonyms != nil {
		syns, err := u.synonyms.Resolve(ctx, title)
		if err != nil {
			u.logger.Warn("[Query] continuing without synonyms", "title", title, "err", err)
			out.SynonymErr = err
		}
		if syns != nil {
			out.AlternateTitles = syns
		}
	}

	out.Queries = u.builder.Build(title, out.AlternateTitles)
	u.logger.Debug("[Query] generated", "title", title, "queries", len(out.Queries), "synonyms", len(out.AlternateTitles))
	return out, nil
}
