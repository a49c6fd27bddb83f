// Package render turns raw news/comment bodies into safe HTML.
//
// Pipeline: restricted markdown render (user HTML ends up escaped), URL
// linkification on the rendered text, then a bluemonday pass that only lets
// the elements produced here through.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Matches plain http(s) URLs and bare www. hosts. Runs over rendered HTML,
// so a URL ends at whitespace, a tag boundary or an attribute quote.
var urlRegex = regexp.MustCompile(`((https?://[^\s<"]+)|(www\.[^\s<"]+))`)

type TextProcessor struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *TextProcessor {
	// Only a small markdown subset is allowed in bodies: emphasis, code
	// spans and fenced code. Everything else (headings, raw HTML, links)
	// stays plain text; linkification below is the only way to get an <a>.
	p := parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewCodeSpanParser(), 100),
			util.Prioritized(parser.NewEmphasisParser(), 500),
		),
	)

	md := goldmark.New(
		goldmark.WithParser(p),
		goldmark.WithRendererOptions(html.WithUnsafe(), html.WithHardWraps()),
		goldmark.WithExtensions(extension.Strikethrough),
	)

	return &TextProcessor{md: md, policy: newPolicy()}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "em", "strong", "del", "code", "pre")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^noopener noreferrer$`)).OnElements("a")
	p.AllowStandardURLs()
	return p
}

// HTML renders a body to sanitized HTML.
func (tp *TextProcessor) HTML(text string) string {
	rendered, _ := tp.renderText(text)
	linked := linkifyURLs(rendered)
	return tp.policy.Sanitize(linked)
}

func (tp *TextProcessor) renderText(text string) (string, error) {
	var buf bytes.Buffer
	if err := tp.md.Convert([]byte(text), &buf); err != nil {
		// fall back to the raw text; the sanitizer still runs over it
		return text, err
	}
	return strings.TrimSpace(buf.String()), nil
}

// linkifyURLs wraps bare URLs in anchors. A www.-prefixed host gets an
// https:// href while the visible text keeps the original form.
func linkifyURLs(htmlText string) string {
	return urlRegex.ReplaceAllStringFunc(htmlText, func(url string) string {
		href := url
		if strings.HasPrefix(url, "www.") {
			href = "https://" + url
		}
		return `<a href="` + href + `" target="_blank" rel="noopener noreferrer">` + url + `</a>`
	})
}
