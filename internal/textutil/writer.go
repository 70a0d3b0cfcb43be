package textutil

import (
	"bytes"
	"io"
)

// ErrWriter wraps a writer, retaining its first error, and refusing any
// further writes after it.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer while Err is nil.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// Prefixer is a writer that starts every line written through it with
// Prefix. Complete lines are passed to To as soon as they're written; a
// partial final line is held until Flush or Close.
type Prefixer struct {
	Prefix string
	To     io.Writer

	buf bytes.Buffer
	mid bool // Prefix already written for the current line
}

// PrefixWriter returns a Prefixer writing into w.
func PrefixWriter(prefix string, w io.Writer) *Prefixer {
	return &Prefixer{Prefix: prefix, To: w}
}

// Write buffers b, prefixing each new line, then writes through all complete
// lines.
func (p *Prefixer) Write(b []byte) (int, error) {
	n := len(b)
	for len(b) > 0 {
		if !p.mid {
			p.buf.WriteString(p.Prefix)
			p.mid = true
		}
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line = b[:i+1]
			p.mid = false
		}
		p.buf.Write(line)
		b = b[len(line):]
	}
	if i := bytes.LastIndexByte(p.buf.Bytes(), '\n'); i >= 0 {
		if _, err := p.To.Write(p.buf.Next(i + 1)); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Flush writes any held partial line.
func (p *Prefixer) Flush() error {
	_, err := p.buf.WriteTo(p.To)
	return err
}

// Close flushes.
func (p *Prefixer) Close() error { return p.Flush() }
