package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocsToMarkdownNoGenerator(t *testing.T) {
	docs := Docs{Text: "Creates a new [`Locale`]."}

	// Without URLs, references degrade to plain backtick quotes.
	assert.Equal(t, "Creates a new `Locale`.", docs.ToMarkdown(nil))
}

func TestDocsToMarkdownBaseURL(t *testing.T) {
	urls := NewDocsURLGenerator("https://docs.example.com", nil)
	docs := Docs{Text: "See [`Locale`] for details."}

	assert.Equal(t,
		"See [`Locale`](https://docs.example.com/Locale) for details.",
		docs.ToMarkdown(urls))
}

func TestDocsToMarkdownCustomOverridesBase(t *testing.T) {
	urls := NewDocsURLGenerator("https://docs.example.com", map[string]string{
		"Locale": "https://elsewhere.example.com/locale.html",
	})
	docs := Docs{Text: "[`Locale`] and [`Weekday`]"}

	assert.Equal(t,
		"[`Locale`](https://elsewhere.example.com/locale.html) and [`Weekday`](https://docs.example.com/Weekday)",
		docs.ToMarkdown(urls))
}

func TestDocsToMarkdownTrims(t *testing.T) {
	docs := Docs{Text: "\n  padded  \n"}
	assert.Equal(t, "padded", docs.ToMarkdown(nil))
}
