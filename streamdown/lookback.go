package streamdown

// LookbackSize is the number of trailing runes retained by a Lookback.
const LookbackSize = 6

// Lookback is a fixed capacity trailing window over consumed runes.
// Its zero value is empty and ready to use.
type Lookback struct {
	buf [LookbackSize]rune
	n   int
}

// Push appends c, evicting the oldest rune when full.
func (lb *Lookback) Push(c rune) {
	if lb.n < len(lb.buf) {
		lb.buf[lb.n] = c
		lb.n++
		return
	}
	copy(lb.buf[:], lb.buf[1:])
	lb.buf[len(lb.buf)-1] = c
}

// Len returns the number of runes currently in the window.
func (lb *Lookback) Len() int { return lb.n }

// Trailing returns up to the last n runes as a string.
func (lb *Lookback) Trailing(n int) string {
	if n > lb.n {
		n = lb.n
	}
	if n <= 0 {
		return ""
	}
	return string(lb.buf[lb.n-n : lb.n])
}

// HasSuffix reports whether the window ends with the runes of s.
func (lb *Lookback) HasSuffix(s string) bool {
	i := lb.n
	rs := []rune(s)
	if len(rs) > i {
		return false
	}
	for j := len(rs) - 1; j >= 0; j-- {
		i--
		if lb.buf[i] != rs[j] {
			return false
		}
	}
	return true
}

// String returns the whole window.
func (lb *Lookback) String() string { return lb.Trailing(lb.n) }
