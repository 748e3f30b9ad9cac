package usecase

import "jobquery/internal/search"

const synonymsKeyPrefix = "synonyms:"

func SynonymsCacheKey(title string) string {
	return synonymsKeyPrefix + search.NormalizeTitle(title)
}
