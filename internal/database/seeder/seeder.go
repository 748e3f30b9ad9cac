package seeder

import (
	"context"
	"errors"

	"jobquery/internal/database"
	"jobquery/internal/search"
)

var errNilDB = errors.New("nil db")

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

func Defaults(table search.SynonymTable) []Seeder {
	return []Seeder{
		RoleSynonymsSeeder{Table: table},
	}
}
