package runeio

import (
	"bufio"
	"io"
)

// Reader is an io.Reader that also supports reading runes.
type Reader interface {
	io.Reader
	io.RuneReader
}

// NewReader returns a Reader from r; if r already implements, it is simply returned.
// Otherwise bufio.Reader is used to provide rune reading around the given reader.
// If the r implements Name() string, so will the returned Reader.
func NewReader(r io.Reader) Reader {
	if impl, ok := r.(Reader); ok {
		return impl
	}
	rr := runeReader{r, bufio.NewReader(r)}
	if impl, ok := r.(interface{ Name() string }); ok {
		return namedRuneReader{rr, impl.Name()}
	}
	return rr
}

type runeReader struct {
	io.Reader
	io.RuneReader
}

type namedRuneReader struct {
	Reader
	name string
}

func (nr namedRuneReader) Name() string { return nr.name }

// ScanDelimited reads runes from rr, skipping any leading delim runes, then
// passing each rune to each until the next delim rune or end of input.
// Returns the number of runes passed to each.
//
// Reaching end of input before any rune is passed results in io.EOF;
// otherwise end of input simply terminates the scan. Any error returned by
// each stops the scan and is returned.
func ScanDelimited(rr io.RuneReader, delim rune, each func(r rune) error) (n int, err error) {
	for {
		r, _, err := rr.ReadRune()
		if err != nil {
			return 0, err
		}
		if r != delim {
			if err := each(r); err != nil {
				return 0, err
			}
			n++
			break
		}
	}
	for {
		r, _, err := rr.ReadRune()
		if err == io.EOF {
			return n, nil
		} else if err != nil {
			return n, err
		} else if r == delim {
			return n, nil
		}
		if err := each(r); err != nil {
			return n, err
		}
		n++
	}
}
