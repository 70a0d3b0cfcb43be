// Package chunkio splits input into chunks, simulating a source that delivers
// text in arbitrary pieces, and feeds such chunks into a writer.
package chunkio

import (
	"bufio"
	"io"
	"math/rand"
)

// Scanner abstracts over tokenizing scanners, like bufio.Scanner.
type Scanner interface {
	Scan() bool
	Bytes() []byte
}

// ErrScanner is a Scanner extension implemented by scanners that may stop on
// an error, like bufio.Scanner.
type ErrScanner interface {
	Scanner
	Err() error
}

// ScanError returns any scan error retained by the given Scanner.
func ScanError(sc Scanner) (err error) {
	if esc, ok := sc.(ErrScanner); ok {
		err = esc.Err()
	}
	return err
}

// RandomChunks returns a bufio.SplitFunc that produces chunks of min to max
// bytes, drawing each size from rng. Only the final chunk may be shorter.
// Sizes are clamped so that 1 <= min <= max.
func RandomChunks(rng *rand.Rand, min, max int) bufio.SplitFunc {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	next := 0
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if next == 0 {
			next = min + rng.Intn(max-min+1)
		}
		return chunk(data, atEOF, &next)
	}
}

// FixedChunks returns a bufio.SplitFunc that produces chunks of n bytes.
func FixedChunks(n int) bufio.SplitFunc {
	if n < 1 {
		n = 1
	}
	return func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		next := n
		return chunk(data, atEOF, &next)
	}
}

// chunk returns the next *size bytes of data, or asks for more, resetting
// *size to 0 once a chunk is taken.
func chunk(data []byte, atEOF bool, size *int) (int, []byte, error) {
	n := *size
	if len(data) < n {
		if !atEOF {
			return 0, nil, nil
		}
		if n = len(data); n == 0 {
			return 0, nil, nil
		}
	}
	*size = 0
	return n, data[:n], nil
}

// Feed writes every chunk scanned from src into dst, calling each (if not nil)
// after every chunk. Stops on the first write error, returning the number of
// chunks written, and any write or scan error.
func Feed(dst io.Writer, src Scanner, each func(chunk []byte)) (n int, err error) {
	for src.Scan() {
		b := src.Bytes()
		if _, err = dst.Write(b); err != nil {
			return n, err
		}
		n++
		if each != nil {
			each(b)
		}
	}
	return n, ScanError(src)
}
