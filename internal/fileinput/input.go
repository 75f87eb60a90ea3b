// Package fileinput reads lines from a queue of named input streams, tracking
// a name:line location for user feedback.
package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Streams that implement io.Closer are closed once exhausted.
type Input struct {
	Queue []io.Reader

	cur io.Reader
	br  *bufio.Reader
	loc Location
}

// New creates an Input that reads through the given readers in order.
func New(rs ...io.Reader) *Input {
	return &Input{Queue: rs}
}

// Location returns the location of the line last returned by ReadLine.
func (in *Input) Location() Location { return in.loc }

// ReadLine returns the next line of input, without its trailing line ending,
// along with its location. Returns io.EOF only after all queued streams have
// been exhausted; a final line that lacks a line ending is still returned.
func (in *Input) ReadLine() (string, Location, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", in.loc, io.EOF
		}
		line, err := in.br.ReadString('\n')
		if err == io.EOF && line == "" {
			if cerr := in.closeCur(); cerr != nil {
				return "", in.loc, cerr
			}
			continue
		} else if err != nil && err != io.EOF {
			return "", in.loc, err
		}
		in.loc.Line++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		return line, in.loc, nil
	}
}

// Close closes the current stream and any remaining queued streams.
func (in *Input) Close() (err error) {
	err = in.closeCur()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeCur() (err error) {
	if cl, ok := in.cur.(io.Closer); ok {
		err = cl.Close()
	}
	in.cur = nil
	in.br = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.br = bufio.NewReader(r)
	in.loc = Location{Name: nameOf(r)}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a Name to a reader, for use in Location.
func NamedReader(name string, r io.Reader) io.Reader {
	if rc, ok := r.(io.ReadCloser); ok {
		return namedReadCloser{rc, name}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

type namedReadCloser struct {
	io.ReadCloser
	name string
}

func (nr namedReadCloser) Name() string { return nr.name }
