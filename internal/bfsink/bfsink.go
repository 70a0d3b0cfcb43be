// Package bfsink implements a streamdown.Sink that builds a blackfriday
// syntax tree, so that streamed documents may be rendered by blackfriday.
package bfsink

import (
	"bytes"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/russross/blackfriday"

	"github.com/jcorbin/mdstream/internal/textutil"
)

// Sink appends nodes under Doc.
//
// Runs of text and inline nodes are collected into paragraphs, which are
// ended by a blank line or by any block node. Whitespace between blocks is
// not rendered, but still separates lists.
type Sink struct {
	Doc  *blackfriday.Node
	para *blackfriday.Node
	gap  bool // whitespace seen since the last block
}

// New returns a Sink with an empty document.
func New() *Sink {
	return &Sink{Doc: blackfriday.NewNode(blackfriday.Document)}
}

// AppendText appends text to the current paragraph.
func (s *Sink) AppendText(content string) {
	for _, c := range content {
		switch {
		case s.para == nil && unicode.IsSpace(c):
			s.gap = true
		case c == '\n' && s.endsLine():
			s.endPara()
		default:
			s.appendRune(c)
		}
	}
}

// AppendHeading appends a Heading block.
func (s *Sink) AppendHeading(level int, content string) {
	h := blackfriday.NewNode(blackfriday.Heading)
	h.Level = level
	h.AppendChild(textNode(content))
	s.appendBlock(h)
}

// AppendCodeBlock appends a fenced CodeBlock.
func (s *Sink) AppendCodeBlock(content string) {
	cb := blackfriday.NewNode(blackfriday.CodeBlock)
	cb.IsFenced = true
	cb.FenceChar = '`'
	cb.FenceLength = 3
	cb.Literal = []byte(content)
	s.appendBlock(cb)
}

// AppendInlineCode appends a Code span to the current paragraph.
func (s *Sink) AppendInlineCode(content string) {
	code := blackfriday.NewNode(blackfriday.Code)
	code.Literal = []byte(content)
	s.inline().AppendChild(code)
}

// AppendListItem appends an Item to the document's last List, starting a new
// List unless the last block is one, with nothing appended after it.
func (s *Sink) AppendListItem(content string) {
	s.endPara()
	list := s.Doc.LastChild
	if list == nil || list.Type != blackfriday.List || s.gap {
		list = blackfriday.NewNode(blackfriday.List)
		list.Tight = true
		list.BulletChar = '-'
		s.appendBlock(list)
	}
	item := blackfriday.NewNode(blackfriday.Item)
	item.Tight = true
	item.BulletChar = '-'
	para := blackfriday.NewNode(blackfriday.Paragraph)
	para.AppendChild(textNode(content))
	item.AppendChild(para)
	list.AppendChild(item)
	s.gap = false
}

// AppendEmphasis appends a Strong or Emph span to the current paragraph.
func (s *Sink) AppendEmphasis(bold bool, content string) {
	typ := blackfriday.Emph
	if bold {
		typ = blackfriday.Strong
	}
	em := blackfriday.NewNode(typ)
	em.AppendChild(textNode(content))
	s.inline().AppendChild(em)
}

// WriteHTML ends any open paragraph and renders the document as HTML.
func (s *Sink) WriteHTML(w io.Writer) error {
	s.endPara()
	ew, _ := w.(*textutil.ErrWriter)
	if ew == nil {
		ew = &textutil.ErrWriter{Writer: w}
	}
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{})
	s.Doc.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if ew.Err != nil {
			return blackfriday.Terminate
		}
		if node.Type == blackfriday.Heading && node.Level > 6 {
			// the renderer clamps levels to h6
			if entering {
				fmt.Fprintf(ew, "<h%d>", node.Level)
			} else {
				fmt.Fprintf(ew, "</h%d>\n", node.Level)
			}
			return blackfriday.GoToNext
		}
		return r.RenderNode(ew, node, entering)
	})
	return ew.Err
}

func (s *Sink) appendBlock(node *blackfriday.Node) {
	s.endPara()
	s.Doc.AppendChild(node)
	s.gap = false
}

func (s *Sink) inline() *blackfriday.Node {
	if s.para == nil {
		para := blackfriday.NewNode(blackfriday.Paragraph)
		s.appendBlock(para)
		s.para = para
	}
	return s.para
}

func (s *Sink) appendRune(c rune) {
	para := s.inline()
	last := para.LastChild
	if last == nil || last.Type != blackfriday.Text {
		last = textNode("")
		para.AppendChild(last)
	}
	var tmp [utf8.UTFMax]byte
	last.Literal = append(last.Literal, tmp[:utf8.EncodeRune(tmp[:], c)]...)
}

// endsLine reports whether the current paragraph's text ends with a newline.
func (s *Sink) endsLine() bool {
	if s.para == nil {
		return false
	}
	last := s.para.LastChild
	return last != nil && last.Type == blackfriday.Text &&
		bytes.HasSuffix(last.Literal, []byte{'\n'})
}

func (s *Sink) endPara() {
	if s.para == nil {
		return
	}
	if last := s.para.LastChild; last != nil && last.Type == blackfriday.Text {
		last.Literal = bytes.TrimRightFunc(last.Literal, unicode.IsSpace)
	}
	s.para = nil
}

func textNode(content string) *blackfriday.Node {
	text := blackfriday.NewNode(blackfriday.Text)
	text.Literal = []byte(content)
	return text
}
