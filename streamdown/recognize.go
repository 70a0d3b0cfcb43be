package streamdown

import "strings"

const (
	fence     = "```"
	listOpen  = "\n-"
	boldDelim = "**"
)

// recognizer is one of the closed set of construct recognizers held by a
// Parser. Each owns only its own accumulation state, and reads the Parser's
// Lookback which already includes the offered rune.
type recognizer interface {
	kind() Kind

	// recognize offers c, returning whether it was consumed, and whether the
	// recognizer is still open afterwards.
	recognize(c rune, lb *Lookback, sink Sink) (handled, open bool)

	// size returns the number of bytes accumulated by an open construct.
	size() int

	reset()
}

type codeBlock struct {
	open bool
	acc  strings.Builder
}

func (cb *codeBlock) kind() Kind { return CodeBlock }
func (cb *codeBlock) size() int  { return cb.acc.Len() }

func (cb *codeBlock) reset() {
	cb.open = false
	cb.acc.Reset()
}

func (cb *codeBlock) recognize(c rune, lb *Lookback, sink Sink) (bool, bool) {
	if !cb.open {
		if !lb.HasSuffix(fence) {
			return false, false
		}
		cb.open = true
		cb.acc.WriteString(fence)
		return true, true
	}

	cb.acc.WriteRune(c)

	// the closing fence may directly follow, but never overlap, the opening one
	if s := cb.acc.String(); len(s) >= 2*len(fence) && strings.HasSuffix(s, fence) {
		sink.AppendCodeBlock(strings.TrimSpace(s[len(fence) : len(s)-len(fence)]))
		cb.reset()
		return true, false
	}
	return true, true
}

type inlineCode struct {
	open bool
	tick bool // open with an immediate second backtick, maybe a fence
	acc  strings.Builder
}

func (ic *inlineCode) kind() Kind { return InlineCode }
func (ic *inlineCode) size() int  { return ic.acc.Len() }

func (ic *inlineCode) reset() {
	ic.open = false
	ic.tick = false
	ic.acc.Reset()
}

func (ic *inlineCode) recognize(c rune, _ *Lookback, sink Sink) (bool, bool) {
	switch {
	case ic.tick:
		// a third backtick belongs to a code fence; anything else means we
		// just saw an empty span. Either way c goes back to the dispatcher.
		ic.reset()
		if c != '`' {
			sink.AppendInlineCode("")
		}
		return false, false

	case ic.open:
		if c != '`' {
			ic.acc.WriteRune(c)
			return true, true
		}
		if ic.acc.Len() == 0 {
			ic.tick = true
			return true, true
		}
		sink.AppendInlineCode(ic.acc.String())
		ic.reset()
		return true, false

	case c == '`':
		ic.open = true
		return true, true

	default:
		return false, false
	}
}

type heading struct {
	level int
	text  strings.Builder
}

func (h *heading) kind() Kind { return Heading }
func (h *heading) size() int  { return h.level + h.text.Len() }

func (h *heading) reset() {
	h.level = 0
	h.text.Reset()
}

func (h *heading) recognize(c rune, _ *Lookback, sink Sink) (bool, bool) {
	if c == '#' && h.text.Len() == 0 {
		h.level++
		return true, true
	}
	if h.level == 0 {
		return false, false
	}
	switch {
	case c == '\n', c == '\r':
		sink.AppendHeading(h.level, strings.TrimSpace(h.text.String()))
		h.reset()
		return true, false
	case c == ' ' && h.text.Len() == 0:
		// dropped
	default:
		h.text.WriteRune(c)
	}
	return true, true
}

type listItem struct {
	open bool
	text strings.Builder
}

func (li *listItem) kind() Kind { return ListItem }
func (li *listItem) size() int  { return li.text.Len() }

func (li *listItem) reset() {
	li.open = false
	li.text.Reset()
}

func (li *listItem) recognize(c rune, lb *Lookback, sink Sink) (bool, bool) {
	if !li.open {
		if c != '-' || !lb.HasSuffix(listOpen) {
			return false, false
		}
		li.open = true
		return true, true
	}
	if c == '\n' {
		sink.AppendListItem(strings.TrimSpace(li.text.String()))
		li.reset()
		return true, false
	}
	li.text.WriteRune(c)
	return true, true
}

type emphasis struct {
	open bool
	bold bool
	text strings.Builder // bold text starts with the first delimiter
}

func (em *emphasis) kind() Kind { return Emphasis }
func (em *emphasis) size() int  { return em.text.Len() }

func (em *emphasis) reset() {
	em.open = false
	em.bold = false
	em.text.Reset()
}

func (em *emphasis) recognize(c rune, lb *Lookback, sink Sink) (bool, bool) {
	if !em.open {
		if c != '*' {
			return false, false
		}
		em.open = true
		if lb.HasSuffix(boldDelim) {
			em.bold = true
			em.text.WriteByte('*')
		}
		return true, true
	}

	// an italic open directly followed by another delimiter was really bold
	if !em.bold && lb.HasSuffix(boldDelim) {
		em.bold = true
	}

	if c == '*' {
		s := em.text.String()
		switch {
		case !em.bold:
			sink.AppendEmphasis(false, strings.TrimSpace(s))
			em.reset()
			return true, false
		case strings.HasSuffix(s, "*"):
			if len(s) >= 2 {
				s = s[1 : len(s)-1]
			} else {
				s = ""
			}
			sink.AppendEmphasis(true, strings.TrimSpace(s))
			em.reset()
			return true, false
		}
	}

	em.text.WriteRune(c)
	return true, true
}
