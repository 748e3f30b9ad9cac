package search

import (
	"strings"
)

// Ordering decides which query shapes come first in the built list.
type Ordering string

const (
	// OrderSafeFirst leads with short queries that stay well inside the
	// search engine's operator limit.
	OrderSafeFirst Ordering = "safe-first"
	// OrderBroadFirst leads with every title and every hiring phrase, then
	// narrows down to the main title.
	OrderBroadFirst Ordering = "broad-first"
)

const (
	DefaultMaxDisjuncts = 4
	DefaultMaxOperators = 9
	DefaultMaxLength    = 250
)

var (
	DefaultActionPhrases    = []string{"hiring", "recruiting", "join our team", "looking for"}
	DefaultExclusionPhrases = []string{"internship", "contract"}
)

type BuilderConfig struct {
	Actions      []string `yaml:"actions"`
	Exclusions   []string `yaml:"exclusions"`
	MaxDisjuncts int      `yaml:"max_disjuncts"`
	MaxOperators int      `yaml:"max_operators"`
	MaxLength    int      `yaml:"max_length"`
	Ordering     Ordering `yaml:"ordering"`
}

func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Actions:      append([]string(nil), DefaultActionPhrases...),
		Exclusions:   append([]string(nil), DefaultExclusionPhrases...),
		MaxDisjuncts: DefaultMaxDisjuncts,
		MaxOperators: DefaultMaxOperators,
		MaxLength:    DefaultMaxLength,
		Ordering:     OrderSafeFirst,
	}
}

// Builder assembles boolean "Posts" search queries for a job title.
// It holds no mutable state and is safe for concurrent use.
type Builder struct {
	cfg BuilderConfig
}

func NewBuilder(cfg BuilderConfig) *Builder {
	if cfg.MaxDisjuncts <= 0 {
		cfg.MaxDisjuncts = DefaultMaxDisjuncts
	}
	if cfg.MaxOperators <= 0 {
		cfg.MaxOperators = DefaultMaxOperators
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = DefaultMaxLength
	}
	if cfg.Ordering != OrderBroadFirst {
		cfg.Ordering = OrderSafeFirst
	}
	if cfg.Actions == nil {
		cfg.Actions = append([]string(nil), DefaultActionPhrases...)
	}
	if cfg.Exclusions == nil {
		cfg.Exclusions = append([]string(nil), DefaultExclusionPhrases...)
	}
	cfg.Actions = boundPhrases(cfg.Actions, cfg.MaxDisjuncts)
	cfg.Exclusions = boundPhrases(cfg.Exclusions, cfg.MaxDisjuncts)
	return &Builder{cfg: cfg}
}

func (b *Builder) Config() BuilderConfig {
	return b.cfg
}

// Build returns the ordered query list for title. Synonyms join the title
// disjunction up to MaxDisjuncts terms; an empty list just leaves them out.
// Shapes exceeding MaxOperators or MaxLength are skipped, and the list never
// comes back empty for a title with a non-empty QueryTitle. When every shape
// is skipped the single fallback `"Title" AND "<first action>"` is returned
// as is, so it can exceed MaxLength for very long titles.
func (b *Builder) Build(title string, synonyms []string) []string {
	mainTitle := TitleCase(QueryTitle(title))
	if mainTitle == "" {
		return []string{}
	}

	p := parts{
		main:   quote(mainTitle),
		titles: disjunction(b.titleTerms(mainTitle, synonyms)),
	}
	if len(b.cfg.Actions) > 0 {
		p.actions = disjunction(quoteAll(b.cfg.Actions))
		p.firstAction = quote(b.cfg.Actions[0])
	}
	if len(b.cfg.Actions) > 1 {
		p.secondAction = quote(b.cfg.Actions[1])
	}
	if len(b.cfg.Exclusions) > 0 {
		p.exclusions = "NOT " + disjunction(quoteAll(b.cfg.Exclusions))
	}

	var shapes [][]string
	switch b.cfg.Ordering {
	case OrderBroadFirst:
		shapes = [][]string{
			{p.titles, p.actions},
			{p.titles, p.actions, p.exclusions},
			{p.main, p.actions, p.exclusions},
			{p.titles, p.firstAction},
			{p.main, p.firstAction},
			{p.titles},
		}
	default:
		shapes = [][]string{
			{p.main, p.actions},
			{p.titles, p.firstAction},
			{p.titles, p.secondAction},
			{p.main, p.actions, p.exclusions},
		}
	}

	out := make([]string, 0, len(shapes))
	seen := make(map[string]struct{}, len(shapes))
	for _, s := range shapes {
		q, ok := conjunction(s)
		if !ok || !b.withinLimits(q) {
			continue
		}
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}

	if len(out) == 0 {
		q := p.main
		if p.firstAction != "" {
			q = p.main + " AND " + p.firstAction
		}
		out = append(out, q)
	}
	return out
}

func (b *Builder) withinLimits(q string) bool {
	return CountOperators(q) <= b.cfg.MaxOperators && len(q) <= b.cfg.MaxLength
}

func (b *Builder) titleTerms(mainTitle string, synonyms []string) []string {
	terms := make([]string, 0, b.cfg.MaxDisjuncts)
	terms = append(terms, quote(mainTitle))
	seen := map[string]struct{}{NormalizeTitle(mainTitle): {}}
	for _, s := range synonyms {
		if len(terms) >= b.cfg.MaxDisjuncts {
			break
		}
		s = TitleCase(stripQuotes(s))
		if s == "" {
			continue
		}
		k := NormalizeTitle(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		terms = append(terms, quote(s))
	}
	return terms
}

type parts struct {
	main         string
	titles       string
	actions      string
	firstAction  string
	secondAction string
	exclusions   string
}

// conjunction joins terms with AND. A shape referencing a part that is not
// configured (empty string) is not built at all.
func conjunction(terms []string) (string, bool) {
	for _, t := range terms {
		if t == "" {
			return "", false
		}
	}
	return strings.Join(terms, " AND "), true
}

func disjunction(terms []string) string {
	return "(" + strings.Join(terms, " OR ") + ")"
}

func quote(s string) string {
	return `"` + s + `"`
}

func quoteAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, quote(s))
	}
	return out
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

func boundPhrases(in []string, limit int) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(stripQuotes(s))
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}

// CountOperators counts AND, OR and NOT keywords outside quoted phrases.
func CountOperators(query string) int {
	n := 0
	inQuote := false
	var word strings.Builder
	flush := func() {
		switch word.String() {
		case "AND", "OR", "NOT":
			n++
		}
		word.Reset()
	}

	for _, r := range query {
		switch {
		case r == '"':
			flush()
			inQuote = !inQuote
		case inQuote:
		case r == ' ' || r == '(' || r == ')':
			flush()
		default:
			word.WriteRune(r)
		}
	}
	flush()
	return n
}
