package textutil_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/mdstream/internal/textutil"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := PrefixWriter("> ", &out)

	io.WriteString(pw, "hello")
	assert.Equal(t, "", out.String(), "partial line should be held")

	io.WriteString(pw, " world\nsecond\nthi")
	assert.Equal(t, "> hello world\n> second\n", out.String())

	require.NoError(t, pw.Flush())
	assert.Equal(t, "> hello world\n> second\n> thi", out.String())

	io.WriteString(pw, "rd\n\n")
	require.NoError(t, pw.Close())
	assert.Equal(t, "> hello world\n> second\n> third\n> \n", out.String())
}

func TestErrWriter(t *testing.T) {
	boom := errors.New("boom")
	fw := &failWriter{after: 1, err: boom}
	ew := &ErrWriter{Writer: fw}

	_, err := fmt.Fprintf(ew, "one")
	assert.NoError(t, err)
	_, err = fmt.Fprintf(ew, "two")
	assert.Equal(t, boom, err)
	_, err = fmt.Fprintf(ew, "three")
	assert.Equal(t, boom, err)
	assert.Equal(t, boom, ew.Err)
	assert.Equal(t, 2, fw.calls, "no writes should pass after an error")
}

type failWriter struct {
	after int
	calls int
	err   error
}

func (fw *failWriter) Write(p []byte) (int, error) {
	fw.calls++
	if fw.calls > fw.after {
		return 0, fw.err
	}
	return len(p), nil
}
