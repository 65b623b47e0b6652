package ir

import (
	"regexp"
	"strings"
)

// Docs is the structured documentation attached to a type, method,
// field or variant. Text is markdown-flavored; cross references to
// other IR types are written [`TypeName`] and resolved against a
// DocsURLGenerator when rendered.
type Docs struct {
	Text string
}

var docsRefPattern = regexp.MustCompile("\\[`([^`\\]]+)`\\]")

// ToMarkdown renders the documentation to normalized markdown. Cross
// references become markdown links when the generator knows a URL for
// the referenced type, and plain backtick-quoted names otherwise.
func (d Docs) ToMarkdown(urls *DocsURLGenerator) string {
	out := docsRefPattern.ReplaceAllStringFunc(d.Text, func(m string) string {
		name := docsRefPattern.FindStringSubmatch(m)[1]
		if url := urls.URLFor(name); url != "" {
			return "[`" + name + "`](" + url + ")"
		}
		return "`" + name + "`"
	})
	return strings.TrimSpace(out)
}

// DocsURLGenerator produces documentation URLs for cross references.
// A base URL covers the common case (base/TypeName); per-type overrides
// win when present. The zero value generates no links.
type DocsURLGenerator struct {
	base   string
	custom map[string]string
}

// NewDocsURLGenerator creates a URL generator. base may be empty;
// custom maps type names to full URLs and overrides base.
func NewDocsURLGenerator(base string, custom map[string]string) *DocsURLGenerator {
	return &DocsURLGenerator{base: base, custom: custom}
}

// URLFor returns the documentation URL for a type name, or "" when none
// is known.
func (g *DocsURLGenerator) URLFor(typeName string) string {
	if g == nil {
		return ""
	}
	if url, ok := g.custom[typeName]; ok {
		return url
	}
	if g.base == "" {
		return ""
	}
	return g.base + "/" + typeName
}
