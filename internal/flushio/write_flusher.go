// Package flushio provides flushable writers, letting output be buffered
// until a point where it must be delivered, like the end of an input line.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is an io.Writer that may hold output until Flush is called.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// memBuffer is implemented by in memory buffers like bytes.Buffer and
// strings.Builder, which gain nothing from further buffering.
type memBuffer interface {
	io.Writer
	Len() int
	Grow(n int)
	Reset()
}

var discardWriteFlusher WriteFlusher = unbuffered{io.Discard}

// NewWriteFlusher adapts w into a WriteFlusher. Writers that gain nothing
// from buffering are written directly; any other writer is wrapped in a
// bufio.Writer. A nil writer discards all output.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case nil:
		return discardWriteFlusher
	case WriteFlusher:
		return impl
	case memBuffer:
		return unbuffered{impl}
	}
	if w == io.Discard {
		return discardWriteFlusher
	}
	return bufio.NewWriter(w)
}

type unbuffered struct{ io.Writer }

func (unbuffered) Flush() error { return nil }
