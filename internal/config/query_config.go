package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"jobquery/internal/search"

	"gopkg.in/yaml.v3"
)

// QueryConfig holds the phrase tables and limits of the query builder and the
// synonym cleaner. Every field has a built-in default.
type QueryConfig struct {
	Builder          search.BuilderConfig `yaml:"builder"`
	MaxSynonyms      int                  `yaml:"max_synonyms"`
	MaxSynonymLength int                  `yaml:"max_synonym_length"`
	Synonyms         search.SynonymTable  `yaml:"synonyms"`
}

func DefaultQueryConfig() *QueryConfig {
	table := make(search.SynonymTable, len(search.DefaultSynonyms))
	for k, v := range search.DefaultSynonyms {
		table[k] = append([]string(nil), v...)
	}
	return &QueryConfig{
		Builder:          search.DefaultBuilderConfig(),
		MaxSynonyms:      search.DefaultMaxSynonyms,
		MaxSynonymLength: search.DefaultMaxSynonymLength,
		Synonyms:         table,
	}
}

// LoadYAMLConfig builds a config with fn and overlays the YAML file at path
// on top of it. An empty path or a missing file yields the defaults; a file
// that cannot be read or parsed is an error.
func LoadYAMLConfig[T any](path string, fn func() *T) (*T, error) {
	cfg := fn()

	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
