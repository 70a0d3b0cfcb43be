package streamdown

import "unicode/utf8"

// Parser is an incremental Markdown recognizer: it consumes input in chunks
// of any size, and appends finished nodes into a Sink.
//
// Input is processed one rune at a time with no backtracking. Each rune is
// offered first to the currently open recognizer, then to every recognizer in
// priority order: code block, inline code, heading, list item, emphasis.
// Runes accepted by none are passed to the Sink as text.
//
// How the input is chunked has no effect on the output: a UTF-8 sequence split
// between chunks is held until complete.
//
// There is no end of input: an unterminated construct stays open, and its
// content is never emitted. See Pending.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	sink        Sink
	back        Lookback
	recognizers [5]recognizer
	active      int // index into recognizers, or -1

	part  [utf8.UTFMax]byte // held incomplete UTF-8 sequence
	npart int

	maxLen int
	logf   func(format string, args ...interface{})
}

// Option configures a Parser.
type Option func(p *Parser)

// WithMaxConstructLen limits how many bytes any single construct may
// accumulate; a construct exceeding the limit is discarded and its recognizer
// reset, with any subsequent runes treated as fresh input.
// The default of 0 means no limit.
func WithMaxConstructLen(n int) Option {
	return func(p *Parser) { p.maxLen = n }
}

// WithLogf sets a function that is called to report discarded constructs.
func WithLogf(logf func(format string, args ...interface{})) Option {
	return func(p *Parser) { p.logf = logf }
}

// NewParser creates a Parser appending into the given sink.
func NewParser(sink Sink, opts ...Option) *Parser {
	p := &Parser{
		sink:   sink,
		active: -1,
		recognizers: [...]recognizer{
			&codeBlock{},
			&inlineCode{},
			&heading{},
			&listItem{},
			&emphasis{},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddToken processes every rune of chunk.
func (p *Parser) AddToken(chunk string) {
	if p.npart > 0 {
		chunk = string(p.part[:p.npart]) + chunk
		p.npart = 0
	}
	for len(chunk) > 0 {
		c, size := utf8.DecodeRuneInString(chunk)
		if c == utf8.RuneError && size <= 1 && !utf8.FullRuneInString(chunk) {
			p.npart = copy(p.part[:], chunk)
			return
		}
		p.step(c)
		chunk = chunk[size:]
	}
}

// Write implements io.Writer around AddToken; it never fails.
func (p *Parser) Write(b []byte) (int, error) {
	p.AddToken(string(b))
	return len(b), nil
}

// PeekTrailing returns up to the last n consumed runes.
func (p *Parser) PeekTrailing(n int) string { return p.back.Trailing(n) }

// Pending returns the kind and accumulated byte size of any open construct.
// Its content will only be emitted if later input closes it.
func (p *Parser) Pending() (kind Kind, size int, open bool) {
	if p.active < 0 {
		return noKind, 0, false
	}
	r := p.recognizers[p.active]
	return r.kind(), r.size(), true
}

// Reset discards all parse state, keeping the sink and options.
func (p *Parser) Reset() {
	for _, r := range p.recognizers {
		r.reset()
	}
	p.active = -1
	p.back = Lookback{}
	p.npart = 0
}

func (p *Parser) step(c rune) {
	p.back.Push(c)

	if i := p.active; i >= 0 {
		if handled, open := p.recognizers[i].recognize(c, &p.back, p.sink); handled {
			p.settle(i, open)
			return
		}
		p.active = -1
	}

	for i, r := range p.recognizers {
		if handled, open := r.recognize(c, &p.back, p.sink); handled {
			p.settle(i, open)
			return
		}
	}

	p.sink.AppendText(string(c))
}

func (p *Parser) settle(i int, open bool) {
	if !open {
		p.active = -1
		return
	}
	p.active = i
	if r := p.recognizers[i]; p.maxLen > 0 && r.size() > p.maxLen {
		if p.logf != nil {
			p.logf("discarding %v construct after %v bytes", r.kind(), r.size())
		}
		r.reset()
		p.active = -1
	}
}
