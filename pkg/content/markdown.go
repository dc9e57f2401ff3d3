package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// SpanStyle is the inline styling of a run of text.
type SpanStyle uint8

const (
	StylePlain  SpanStyle = 0
	StyleStrong SpanStyle = 1 << iota
	StyleEmphasis
	StyleCode
	StyleLink
)

// Span is a run of text with uniform styling.
type Span struct {
	Text  string
	Style SpanStyle
	Href  string
}

// Block is one paragraph-level element of a markdown body.
type Block struct {
	Spans   []Span
	Bullet  bool // list item
	Heading int  // 0 for body text
	Code    bool // fenced or indented code block; Spans hold one line each
}

// PlainText concatenates the block's span text.
func (b Block) PlainText() string {
	var sb strings.Builder
	for _, s := range b.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
)

// ParseMarkdown flattens a markdown body into blocks of styled spans. Only
// the inline subset a terminal can show is kept: emphasis, strong, code
// spans, links, list items, headings and code blocks.
func ParseMarkdown(src string) []Block {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))

	w := &mdWalker{source: source}
	_ = ast.Walk(doc, w.visit)
	return w.blocks
}

type mdWalker struct {
	source []byte
	blocks []Block

	bullet bool
	style  SpanStyle
	href   string
}

func (w *mdWalker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.ListItem:
		if entering {
			w.bullet = true
		}

	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			w.open(0)
		}

	case *ast.Heading:
		if entering {
			w.open(node.Level)
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.code(n)
		}
		return ast.WalkSkipChildren, nil

	case *ast.Emphasis:
		flag := StyleEmphasis
		if node.Level >= 2 {
			flag = StyleStrong
		}
		w.toggle(flag, entering)

	case *ast.CodeSpan:
		w.toggle(StyleCode, entering)

	case *ast.Link:
		w.toggle(StyleLink, entering)
		if entering {
			w.href = string(node.Destination)
		} else {
			w.href = ""
		}

	case *ast.AutoLink:
		if entering {
			url := string(node.URL(w.source))
			w.emit(Span{Text: url, Style: w.style | StyleLink, Href: url})
		}
		return ast.WalkSkipChildren, nil

	case *ast.Text:
		if entering {
			w.emit(Span{Text: string(node.Segment.Value(w.source)), Style: w.style, Href: w.href})
			if node.SoftLineBreak() || node.HardLineBreak() {
				w.emit(Span{Text: " ", Style: w.style})
			}
		}

	case *ast.String:
		if entering {
			w.emit(Span{Text: string(node.Value), Style: w.style, Href: w.href})
		}
	}
	return ast.WalkContinue, nil
}

// open starts a new block, consuming a pending list-item marker.
func (w *mdWalker) open(heading int) {
	w.blocks = append(w.blocks, Block{Bullet: w.bullet, Heading: heading})
	w.bullet = false
}

func (w *mdWalker) code(n ast.Node) {
	b := Block{Code: true}
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		line := strings.TrimRight(string(seg.Value(w.source)), "\n")
		b.Spans = append(b.Spans, Span{Text: line, Style: StyleCode})
	}
	w.blocks = append(w.blocks, b)
}

func (w *mdWalker) toggle(flag SpanStyle, on bool) {
	if on {
		w.style |= flag
	} else {
		w.style &^= flag
	}
}

// emit appends to the current block, merging with the previous span when
// the styling matches.
func (w *mdWalker) emit(s Span) {
	if s.Text == "" {
		return
	}
	if len(w.blocks) == 0 {
		w.open(0)
	}
	b := &w.blocks[len(w.blocks)-1]
	if k := len(b.Spans); k > 0 && b.Spans[k-1].Style == s.Style && b.Spans[k-1].Href == s.Href {
		b.Spans[k-1].Text += s.Text
		return
	}
	b.Spans = append(b.Spans, s)
}
