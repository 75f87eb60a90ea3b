package runeio

import (
	"io"
	"unicode/utf8"
)

// AppendANSIRune appends the form of r that a classic terminal expects:
// ASCII as is, NEL as "\r\n", other C1 controls as their 7-bit escape
// sequence (e.g. CSI as "\x1b["), and everything else as utf8.
// Invalid runes, like surrogate halves or those past unicode.MaxRune, result
// in ErrInvalidRune, leaving b unchanged.
func AppendANSIRune(b []byte, r rune) ([]byte, error) {
	switch {
	case !utf8.ValidRune(r):
		return b, ErrInvalidRune
	case r < 0x80:
		return append(b, byte(r)), nil
	case r == 0x85:
		return append(b, '\r', '\n'), nil
	case r <= 0x9f:
		return append(b, 0x1b, byte(r^0xc0)), nil
	default:
		return utf8.AppendRune(b, r), nil
	}
}

// WriteANSIRune writes r to w as AppendANSIRune would encode it.
func WriteANSIRune(w io.Writer, r rune) (int, error) {
	var tmp [utf8.UTFMax]byte
	b, err := AppendANSIRune(tmp[:0], r)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

// WriteANSIString writes every rune of s, as AppendANSIRune would encode it,
// to w in one write.
func WriteANSIString(w io.Writer, s string) (int, error) {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		b, _ = AppendANSIRune(b, r)
	}
	return w.Write(b)
}
