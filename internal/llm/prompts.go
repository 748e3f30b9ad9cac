package llm

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed prompts/synonyms.tmpl
var synonymsPromptRaw string

// SynonymsTemplate is parsed once at package init.
var SynonymsTemplate = template.Must(template.New("synonyms").Parse(synonymsPromptRaw))

const DefaultSynonymCount = 4

// SynonymPrompt asks for exactly count comma-separated alternatives to title.
func SynonymPrompt(title string, count int) string {
	if count <= 0 {
		count = DefaultSynonymCount
	}
	var b strings.Builder
	data := struct {
		Title string
		Count int
	}{Title: strings.ReplaceAll(strings.TrimSpace(title), "'", ""), Count: count}
	if err := SynonymsTemplate.Execute(&b, data); err != nil {
		// The template only references fields of data.
		panic(err)
	}
	return b.String()
}
