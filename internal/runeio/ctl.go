package runeio

import (
	"errors"
	"strconv"
	"strings"
)

// Control character mnemonics, in code point order: c0Names from NUL (0x00),
// c1Names from PAD (0x80).
var (
	c0Names = strings.Fields(`
		NUL SOH STX ETX EOT ENQ ACK BEL BS  HT  NL  VT  NP  CR  SO  SI
		DLE DC1 DC2 DC3 DC4 NAK SYN ETB CAN EM  SUB ESC FS  GS  RS  US`)
	c1Names = strings.Fields(`
		PAD HOP BPH NBH IND NEL SSA ESA HTS HTJ VTS PLD PLU RI  SS2 SS3
		DCS PU1 PU2 STS CCH MW  SPA EPA SOS SGCI SCI CSI ST OSC PM  APC`)
)

// controlWords maps every accepted mnemonic to its rune: <NAME> forms in
// upper and lower case, <SP> and <DEL>, and caret forms like ^C and ^[.
var controlWords = make(map[string]rune, 200)

func init() {
	define := func(name string, r rune) {
		controlWords["<"+strings.ToUpper(name)+">"] = r
		controlWords["<"+strings.ToLower(name)+">"] = r
		if caret := caretForm(r); caret != "" {
			controlWords[caret] = r
		}
	}
	for i, name := range c0Names {
		define(name, rune(i))
	}
	define("SP", 0x20)
	define("DEL", 0x7f)
	for i, name := range c1Names {
		define(name, 0x80+rune(i))
	}
}

// caretForm returns the ^-escaped printable form of a control rune; C1
// controls take the two character ^[X form of their 7-bit escape sequence.
func caretForm(r rune) string {
	switch {
	case r < 0x20, r == 0x7f:
		return "^" + string(r^0x40)
	case 0x80 <= r && r <= 0x9f:
		return "^[" + string(r^0xc0)
	}
	return ""
}

var (
	errInvalidRune = errors.New(`character literal must be "^X" "<NAME>" or 'X'`)

	// ErrInvalidRune is returned when writing a rune that has no utf8 encoding.
	ErrInvalidRune = errors.New("invalid rune")
)

// IsRuneLiteral returns true if token is shaped like a character literal that
// UnquoteRune may accept: a control mnemonic like <ESC>, a caret form like
// ^[, or a single quoted character like 'A' or '\n'. Escape sequences within
// quotes are not validated.
func IsRuneLiteral(token string) bool {
	if _, defined := controlWords[token]; defined {
		return true
	}
	n := len([]rune(token))
	return n >= 3 && n <= 4 &&
		strings.HasPrefix(token, "'") && strings.HasSuffix(token, "'")
}

// UnquoteRune parses a character literal, as recognized by IsRuneLiteral,
// into its rune. Quoted characters follow strconv.UnquoteChar rules.
func UnquoteRune(token string) (rune, error) {
	if r, defined := controlWords[token]; defined {
		return r, nil
	}
	if !IsRuneLiteral(token) {
		return 0, errInvalidRune
	}
	value, _, tail, err := strconv.UnquoteChar(token[1:], '\'')
	if err == nil && tail != "'" {
		err = errInvalidRune
	}
	return value, err
}
