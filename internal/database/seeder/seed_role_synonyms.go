package seeder

import (
	"context"
	"fmt"
	"sort"

	"jobquery/internal/database"
	"jobquery/internal/search"
)

// RoleSynonymsSeeder creates role_synonyms and inserts every entry of Table.
// Existing rows are left untouched, so hand-edited synonyms survive reseeding.
type RoleSynonymsSeeder struct {
	Table search.SynonymTable
}

func (RoleSynonymsSeeder) Name() string { return "role_synonyms" }

func (s RoleSynonymsSeeder) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errNilDB
	}
	if _, err := db.Exec(ctx, createRoleSynonymsTable); err != nil {
		return fmt.Errorf("create role_synonyms: %w", err)
	}
	if err := EnsureTableColumns(ctx, db, "role_synonyms", "title", "synonym", "position"); err != nil {
		return err
	}

	table := s.Table.Normalized()
	titles := make([]string, 0, len(table))
	for k := range table {
		titles = append(titles, k)
	}
	sort.Strings(titles)

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, title := range titles {
		for pos, syn := range table[title] {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO role_synonyms (title, synonym, position) VALUES ($1, $2, $3) ON CONFLICT (title, synonym) DO NOTHING`,
				title,
				syn,
				pos,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
