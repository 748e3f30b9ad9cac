package repository

import (
	"context"

	"jobquery/internal/database"
	"jobquery/internal/search"
)

type RoleSynonymRepository interface {
	Find(ctx context.Context, title string) ([]string, bool, error)
}

type PostgresRoleSynonymRepository struct {
	db database.DB
}

func NewPostgresRoleSynonymRepository(db database.DB) *PostgresRoleSynonymRepository {
	return &PostgresRoleSynonymRepository{db: db}
}

// Find mirrors search.SynonymTable.Lookup: the longest stored title contained
// in the normalized input as whole words wins, which makes an exact match win
// too.
func (r *PostgresRoleSynonymRepository) Find(ctx context.Context, title string) ([]string, bool, error) {
	key := search.NormalizeTitle(title)
	if key == "" {
		return nil, false, nil
	}

	rows, err := r.db.Query(ctx, `
SELECT s.synonym
FROM role_synonyms s
WHERE s.title = (
	SELECT k.title FROM role_synonyms k
	WHERE strpos(' ' || $1 || ' ', ' ' || k.title || ' ') > 0
	ORDER BY length(k.title) DESC, k.title ASC
	LIMIT 1
)
ORDER BY s.position ASC, s.synonym ASC`, key)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	out := make([]string, 0, 4)
	for rows.Next() {
		var syn string
		if err := rows.Scan(&syn); err != nil {
			return nil, false, err
		}
		syn = search.TitleCase(syn)
		if syn == "" {
			continue
		}
		out = append(out, syn)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if len(out) == 0 {
		return nil, false, nil
	}
	return out, true, nil
}
