package flushio_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/easyforth/internal/flushio"
)

func TestNewWriteFlusher(t *testing.T) {
	var buf bytes.Buffer
	wf := flushio.NewWriteFlusher(&buf)
	io.WriteString(wf, "hi")
	assert.Equal(t, "hi", buf.String(), "buffers are written through")
	require.NoError(t, wf.Flush())

	assert.NotNil(t, flushio.NewWriteFlusher(nil))
	assert.Equal(t, flushio.NewWriteFlusher(io.Discard), flushio.NewWriteFlusher(nil))

	var rec struct{ io.Writer }
	var sb strings.Builder
	rec.Writer = &sb
	bwf := flushio.NewWriteFlusher(rec)
	io.WriteString(bwf, "buffered")
	assert.Equal(t, "", sb.String(), "expected bufio until flush")
	require.NoError(t, bwf.Flush())
	assert.Equal(t, "buffered", sb.String())
	assert.Equal(t, bwf, flushio.NewWriteFlusher(bwf), "WriteFlushers pass through")
}

type failWriter struct{ flushed bool }

func (fw *failWriter) Write(p []byte) (int, error) { return 0, errors.New("write failed") }
func (fw *failWriter) Flush() error {
	fw.flushed = true
	return errors.New("flush failed")
}

func TestTee(t *testing.T) {
	assert.NotNil(t, flushio.Tee(), "empty tee discards")
	_, err := io.WriteString(flushio.Tee(nil), "nothing")
	assert.NoError(t, err)

	var a, b bytes.Buffer
	one := flushio.NewWriteFlusher(&a)
	assert.Equal(t, one, flushio.Tee(nil, one))

	both := flushio.Tee(one, flushio.NewWriteFlusher(&b))
	io.WriteString(both, "tee")
	require.NoError(t, both.Flush())
	assert.Equal(t, "tee", a.String())
	assert.Equal(t, "tee", b.String())

	var c bytes.Buffer
	var fw failWriter
	all := flushio.Tee(&fw, both, flushio.NewWriteFlusher(&c))
	_, err = io.WriteString(all, "!")
	assert.EqualError(t, err, "write failed")
	assert.Equal(t, "tee!", a.String(), "later writers still written")
	assert.Equal(t, "!", c.String())
	assert.EqualError(t, all.Flush(), "flush failed")
	assert.True(t, fw.flushed)
}
