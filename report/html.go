package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/npillmayer/hiatus"
	"golang.org/x/text/language"
)

// HTMLOptions control the HTML document.
type HTMLOptions struct {
	Title string       // document title, defaults to "Hiatus highlights"
	Lang  language.Tag // language of the annotated text, defaults to Ancient Greek
}

// DefaultTitle is the default title of an HTML document.
const DefaultTitle = "Hiatus highlights"

// Legend explains the highlighting colours.
const Legend = "Red = Word Internal (I); Green = Between Words (B); Blue = Between Verses (V)."

// ancientGreek is the BCP 47 tag of the annotated text.
var ancientGreek = language.Make("grc")

// CSSClass returns the class attribute used for highlighting a kind of
// hiatus.
func CSSClass(kind hiatus.Kind) string {
	switch kind {
	case hiatus.IntraWord:
		return "hiatus-intra"
	case hiatus.Interword:
		return "hiatus-inter"
	case hiatus.AcrossLine:
		return "hiatus-across"
	}
	return ""
}

type htmlSegment struct {
	Text  string
	Class string
	Title string
}

type htmlRow struct {
	N              int
	Code, Line     string
	Vowel1, Vowel2 string
}

type htmlPage struct {
	Title    string
	Lang     string
	Legend   string
	Segments []htmlSegment
	Rows     []htmlRow
}

// The annotated text is written on a single template line, as it is
// rendered inside a <pre> element.
const pageTemplate = `<!doctype html>
<html><head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: serif; padding: 1rem; }
pre.source { white-space: pre-wrap; font-size: 18px; line-height: 1.25; }
.hiatus-intra { background: rgba(255,50,50,0.35); }
.hiatus-inter { background: rgba(80,220,80,0.35); }
.hiatus-across { background: rgba(80,120,255,0.35); }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
td,th { border:1px solid #aaa; padding:6px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Legend}}</p>

<h2>Annotated Text</h2>
<pre class="source" lang="{{.Lang}}">{{range .Segments}}{{if .Class}}<span class="{{.Class}}" title="{{.Title}}">{{.Text}}</span>{{else}}{{.Text}}{{end}}{{end}}</pre>

<h2>Occurrences</h2>
<table>
<tr><th>#</th><th>Type</th><th>Line</th><th>Vowel 1</th><th>Vowel 2</th></tr>
{{range .Rows}}<tr><td>{{.N}}</td><td>{{.Code}}</td><td>{{.Line}}</td><td lang="{{$.Lang}}">{{.Vowel1}}</td><td lang="{{$.Lang}}">{{.Vowel2}}</td></tr>
{{end}}</table>

</body></html>
`

var page = template.Must(template.New("hiatus").Parse(pageTemplate))

// HTML writes a complete HTML document to w, containing the annotated text
// and a table of all occurrences. Text is escaped.
func HTML(w io.Writer, res *hiatus.Result, opts HTMLOptions) error {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Lang == language.Und {
		opts.Lang = ancientGreek
	}
	p := htmlPage{
		Title:  opts.Title,
		Lang:   opts.Lang.String(),
		Legend: Legend,
		Rows:   make([]htmlRow, len(res.Occurrences)),
	}
	for _, seg := range res.Segments() {
		s := htmlSegment{Text: seg.Text}
		if seg.Mark > 0 {
			s.Class, s.Title = CSSClass(seg.Kind), seg.Kind.Title()
		}
		p.Segments = append(p.Segments, s)
	}
	for k, occ := range res.Occurrences {
		p.Rows[k] = htmlRow{
			N:      k + 1,
			Code:   occ.Kind.Code(),
			Line:   occ.LineLabel(),
			Vowel1: occ.LeftText,
			Vowel2: occ.RightText,
		}
	}
	if err := page.Execute(w, p); err != nil {
		T().Errorf("report: %v", err)
		return fmt.Errorf("report: rendering HTML: %w", err)
	}
	return nil
}
