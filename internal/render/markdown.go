// Package render converts catalog markdown content to embeddable HTML.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(highlighting.WithStyle("github")),
	),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Markdown renders a markdown string to HTML.
func Markdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var articleTmpl = template.Must(template.New("article").Parse(`<!DOCTYPE html>
<html lang="{{.Language}}"{{if .RTL}} dir="rtl"{{end}}>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<article>
<h1>{{.Title}}</h1>
{{.Body}}
</article>
</body>
</html>
`))

// Article wraps rendered body HTML in a minimal standalone page.
// Arabic content renders right to left.
func Article(title, language string, body template.HTML) ([]byte, error) {
	var buf bytes.Buffer
	err := articleTmpl.Execute(&buf, struct {
		Title    string
		Language string
		RTL      bool
		Body     template.HTML
	}{
		Title:    title,
		Language: language,
		RTL:      language == "ar",
		Body:     body,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering article page: %w", err)
	}
	return buf.Bytes(), nil
}
