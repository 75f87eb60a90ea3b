package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jcorbin/easyforth/internal/runeio"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokString
	tokPrint
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// Keywords are the reserved words that structure definitions and statements;
// they may not be used as identifiers.
var Keywords = map[string]Kind{
	":":        WordDefinition,
	";":        WordDefinition,
	"variable": VariableDefinition,
	"constant": ConstantDefinition,
	"if":       IfThen,
	"else":     IfElseThen,
	"then":     IfThen,
	"do":       DoLoop,
	"loop":     DoLoop,
}

// tokenize splits src into whitespace separated tokens, dropping comments.
// Quoted strings and ." print strings are single tokens whose text is the
// quoted content. Neither comments nor strings may span lines.
func tokenize(src string) ([]token, error) {
	var toks []token
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		switch {
		case unicode.IsSpace(r):
			i += size

		case r == '(':
			end := strings.IndexByte(src[i:], ')')
			if nl := strings.IndexByte(src[i:], '\n'); end < 0 || (nl >= 0 && nl < end) {
				return nil, syntaxErrorf(Comment, i, "unterminated comment")
			}
			i += end + 1

		case r == '"':
			end := strings.IndexByte(src[i+1:], '"')
			if nl := strings.IndexByte(src[i+1:], '\n'); end < 0 || (nl >= 0 && nl < end) {
				return nil, syntaxErrorf(String, i, "unterminated string")
			}
			toks = append(toks, token{tokString, src[i+1 : i+1+end], i})
			i += end + 2

		case strings.HasPrefix(src[i:], `."`) && (i+2 == len(src) || isSpaceByte(src[i+2])):
			start := i + 2
			if start < len(src) {
				start++
			}
			end := strings.IndexByte(src[start:], '"')
			if nl := strings.IndexByte(src[start:], '\n'); end < 0 || (nl >= 0 && nl < end) {
				return nil, syntaxErrorf(PrintString, i, "unterminated print string")
			}
			toks = append(toks, token{tokPrint, src[start : start+end], i})
			i = start + end + 1

		default:
			n := runeLiteralLen(src[i:])
			if n == 0 {
				n = strings.IndexFunc(src[i:], unicode.IsSpace)
				if n < 0 {
					n = len(src) - i
				}
			}
			toks = append(toks, token{tokWord, src[i : i+n], i})
			i += n
		}
	}
	return toks, nil
}

// runeLiteralLen returns the length of a quoted rune literal like 'A' or
// '\n' at the start of s, so that quoted spaces stay within one token.
func runeLiteralLen(s string) int {
	if len(s) < 3 || s[0] != '\'' {
		return 0
	}
	for n := 3; n <= len(s) && n <= 3+utf8.UTFMax; n++ {
		if s[n-1] == '\'' && runeio.IsRuneLiteral(s[:n]) &&
			(n == len(s) || isSpaceByte(s[n])) {
			return n
		}
	}
	return 0
}

func isSpaceByte(b byte) bool {
	return b < utf8.RuneSelf && unicode.IsSpace(rune(b))
}

func isInteger(text string) bool {
	if strings.HasPrefix(text, "-") {
		text = text[1:]
	}
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}
