// Package render turns a resolved company record into the final legal
// paragraph: variable derivation, flat template substitution, and the
// markdown output conversions.
package render

import (
	"regexp"

	"comparution/cmd/internal/domain/entity"
	"comparution/cmd/internal/domain/resolve"
)

// placeholderRe matches {{ name }} tokens: alphanumeric/underscore names,
// optional interior whitespace. This is the whole template grammar — no
// conditionals, loops or nesting.
var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Render substitutes every placeholder with its value from vars. Unknown
// names substitute to the empty string: a user-authored template can never
// make rendering fail, and no {{ }} token survives for a recognized form.
func Render(template string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		return vars[name]
	})
}

// Options select the output language and an optional user template. An
// empty Template falls back to the built-in default for the entity kind.
type Options struct {
	Lang     Lang
	Template string
}

// BuildMarkdown renders the paragraph for an already-resolved representative.
// It performs no fetching and no holding-chain resolution; callers wanting
// the full chain walk resolve first (see the paragraph service).
func BuildMarkdown(company *entity.Company, rep *resolve.Representative, opts Options) string {
	lang := Norm(string(opts.Lang))

	if company == nil || !company.HasData() {
		siren := ""
		if company != nil {
			siren = company.SIREN
		}
		return NoDataSentence(siren, lang)
	}

	template := opts.Template
	if template == "" {
		template = DefaultTemplate(company.Kind, lang)
	}
	return Render(template, BuildVariables(company, rep, lang))
}

// NoDataSentence is the fixed sentinel for a well-formed identifier with no
// corporate or individual payload.
func NoDataSentence(siren string, lang Lang) string {
	return packs[Norm(string(lang))].noData(siren)
}
