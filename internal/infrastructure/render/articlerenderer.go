package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// ArticleRenderer turns an article/v1 payload into sanitized HTML.
type ArticleRenderer interface {
	ToHTML(markdown string) (string, error)
	RenderArticle(payload []byte) (string, error)
}

type articlePayload struct {
	Title        string           `json:"title"`
	Summary      string           `json:"summary"`
	BodyMarkdown string           `json:"body_markdown"`
	Sections     []articleSection `json:"sections"`
}

type articleSection struct {
	Heading      string `json:"heading"`
	BodyMarkdown string `json:"body_markdown"`
}

type articleRendererImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewArticleRenderer() ArticleRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
			extension.Linkify,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)

	// Generated copy is untrusted input.
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("article", "section")
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div", "pre", "p")
	policy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &articleRendererImpl{
		md:     md,
		policy: policy,
	}
}

// ToHTML converts markdown without sanitizing it.
func (r *articleRendererImpl) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (r *articleRendererImpl) RenderArticle(payload []byte) (string, error) {
	var article articlePayload
	if err := json.Unmarshal(payload, &article); err != nil {
		return "", fmt.Errorf("failed to decode article payload: %w", err)
	}

	var out strings.Builder
	out.WriteString("<article>")
	if article.Title != "" {
		fmt.Fprintf(&out, "<h1>%s</h1>", html.EscapeString(article.Title))
	}
	if article.Summary != "" {
		fmt.Fprintf(&out, `<p class="summary">%s</p>`, html.EscapeString(article.Summary))
	}

	body, err := r.ToHTML(article.BodyMarkdown)
	if err != nil {
		return "", err
	}
	out.WriteString(body)

	for _, section := range article.Sections {
		sectionBody, err := r.ToHTML(section.BodyMarkdown)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&out, "<section><h2>%s</h2>%s</section>", html.EscapeString(section.Heading), sectionBody)
	}
	out.WriteString("</article>")

	return r.policy.Sanitize(out.String()), nil
}
