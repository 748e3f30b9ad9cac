package search

import (
	"context"
	"sort"
	"strings"
)

// SynonymTable maps a normalized job title to its alternate titles.
type SynonymTable map[string][]string

// DefaultSynonyms is the built-in table. The first three entries are the
// canonical roles served by the API; the rest come from the interactive tool.
var DefaultSynonyms = SynonymTable{
	"software developer": {"software engineer", "backend engineer", "full stack developer", "application developer"},
	"data scientist":     {"machine learning engineer", "ai engineer", "data analyst", "research scientist"},
	"systems engineer":   {"devops engineer", "site reliability engineer", "infrastructure engineer"},

	"software engineer":         {"software developer", "backend engineer", "full stack developer", "developer", "programmer"},
	"python developer":          {"python engineer", "backend engineer", "software engineer (python)", "data engineer"},
	"python engineer":           {"python developer", "backend engineer", "software engineer (python)", "data engineer"},
	"data engineer":             {"data architect", "pipeline developer", "etl developer", "big data engineer"},
	"frontend developer":        {"frontend engineer", "ui developer", "react developer", "web developer"},
	"backend developer":         {"backend engineer", "software engineer", "python developer", "java developer"},
	"full stack developer":      {"full stack engineer", "software engineer", "web developer"},
	"machine learning engineer": {"ml engineer", "data scientist", "ai engineer", "computer vision engineer"},
	"devops engineer":           {"sre", "site reliability engineer", "platform engineer", "cloud engineer"},
	"product manager":           {"pm", "technical product manager", "product owner"},
}

// Lookup returns the title-cased alternates for title. An exact key match wins;
// otherwise the longest table key contained in the title as whole words is
// used, so "senior data engineer" resolves through "data engineer" while
// "software engineering manager" does not match "software engineer".
func (t SynonymTable) Lookup(title string) ([]string, bool) {
	key := NormalizeTitle(title)
	if key == "" || len(t) == 0 {
		return nil, false
	}
	if v, ok := t[key]; ok {
		return titleCaseAll(v), true
	}

	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	for _, k := range keys {
		nk := NormalizeTitle(k)
		if nk == "" {
			continue
		}
		if containsWords(key, nk) {
			return titleCaseAll(t[k]), true
		}
	}
	return nil, false
}

func containsWords(title, key string) bool {
	return strings.Contains(" "+title+" ", " "+key+" ")
}

// Find adapts Lookup to the context-aware source signature used by the
// synonym resolver. It never fails.
func (t SynonymTable) Find(_ context.Context, title string) ([]string, bool, error) {
	v, ok := t.Lookup(title)
	return v, ok, nil
}

// Normalized returns a copy of the table with normalized keys and empty
// entries dropped. Later duplicates of the same normalized key overwrite
// earlier ones.
func (t SynonymTable) Normalized() SynonymTable {
	out := make(SynonymTable, len(t))
	for k, v := range t {
		nk := NormalizeTitle(k)
		if nk == "" {
			continue
		}
		syns := make([]string, 0, len(v))
		for _, s := range v {
			s = NormalizeTitle(s)
			if s == "" {
				continue
			}
			syns = append(syns, s)
		}
		out[nk] = syns
	}
	return out
}

func titleCaseAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = TitleCase(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
