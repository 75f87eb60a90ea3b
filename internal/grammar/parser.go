package grammar

import (
	"fmt"

	"github.com/jcorbin/easyforth/internal/runeio"
)

// ParseLine parses one line production: either a definition, or an
// expression. Blank lines (or lines holding only comments) parse as an
// empty expression.
func ParseLine(src string) (*Node, error) { return Parse(src, Line) }

// Parse parses all of src as the given start production, which must be one
// of Line, Definition, Expression, Literal or Ident.
func Parse(src string, start Kind) (*Node, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := parser{toks: toks, end: len(src)}
	var n *Node
	switch start {
	case Line:
		n, err = p.line()
	case Definition:
		n, err = p.definition()
	case Expression:
		n, err = p.expression(false)
	case Literal:
		n, err = p.literal(Literal)
	case Ident:
		n, err = p.ident(Ident, "identifier")
	default:
		return nil, fmt.Errorf("unsupported start production %v", start)
	}
	if err == nil && !p.done() {
		tok := p.peek()
		err = p.unexpected(start, tok)
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

type parser struct {
	toks []token
	i    int
	end  int
}

func (p *parser) done() bool { return p.i >= len(p.toks) }

func (p *parser) peek() token {
	if p.done() {
		return token{kind: tokWord, pos: p.end}
	}
	return p.toks[p.i]
}

func (p *parser) next() token {
	tok := p.peek()
	if !p.done() {
		p.i++
	}
	return tok
}

// keyword returns the text of the next token if it is a keyword.
func (p *parser) keyword() string {
	if tok := p.peek(); !p.done() && tok.kind == tokWord {
		if _, is := Keywords[tok.text]; is {
			return tok.text
		}
	}
	return ""
}

func (p *parser) unexpected(kind Kind, tok token) *SyntaxError {
	if k, is := Keywords[tok.text]; is && tok.kind == tokWord {
		kind = k
	}
	return syntaxErrorf(kind, tok.pos, "unexpected %q", tok.text)
}

func (p *parser) line() (*Node, error) {
	pos := p.peek().pos
	var child *Node
	var err error
	switch p.keyword() {
	case ":", "variable":
		child, err = p.definition()
	default:
		if p.isConstantDefinition() {
			child, err = p.definition()
		} else {
			child, err = p.expression(false)
		}
	}
	if err != nil {
		return nil, err
	}
	return &Node{Kind: Line, Pos: pos, Children: []*Node{child}}, nil
}

func (p *parser) isConstantDefinition() bool {
	return p.i+1 < len(p.toks) &&
		p.toks[p.i+1].kind == tokWord && p.toks[p.i+1].text == "constant"
}

func (p *parser) definition() (*Node, error) {
	pos := p.peek().pos
	var child *Node
	var err error
	switch kw := p.keyword(); {
	case kw == ":":
		child, err = p.wordDefinition()
	case kw == "variable":
		child, err = p.variableDefinition()
	case p.isConstantDefinition():
		child, err = p.constantDefinition()
	default:
		return nil, syntaxErrorf(Definition, pos, "expected definition")
	}
	if err != nil {
		return nil, err
	}
	return &Node{Kind: Definition, Pos: pos, Children: []*Node{child}}, nil
}

func (p *parser) variableDefinition() (*Node, error) {
	pos := p.next().pos
	name, err := p.ident(VariableDefinition, "variable name")
	if err != nil {
		return nil, err
	}
	return &Node{Kind: VariableDefinition, Pos: pos, Children: []*Node{name}}, nil
}

func (p *parser) constantDefinition() (*Node, error) {
	pos := p.peek().pos
	value, err := p.literal(ConstantDefinition)
	if err != nil {
		return nil, err
	}
	p.next() // constant
	name, err := p.ident(ConstantDefinition, "constant name")
	if err != nil {
		return nil, err
	}
	return &Node{Kind: ConstantDefinition, Pos: pos, Children: []*Node{value, name}}, nil
}

func (p *parser) wordDefinition() (*Node, error) {
	pos := p.next().pos
	name, err := p.ident(WordDefinition, "word name")
	if err != nil {
		return nil, err
	}
	body, _, err := p.body(WordDefinition, ";")
	if err != nil {
		return nil, err
	}
	return &Node{Kind: WordDefinition, Pos: pos, Children: []*Node{name, body}}, nil
}

// body parses statements and expressions until one of the given terminating
// keywords, which is consumed and returned.
func (p *parser) body(within Kind, terms ...string) (*Node, string, error) {
	n := &Node{Kind: Body, Pos: p.peek().pos}
	for {
		if p.done() {
			return nil, "", syntaxErrorf(within, p.end, "missing %q", terms[0])
		}
		kw := p.keyword()
		for _, term := range terms {
			if kw == term {
				p.next()
				return n, term, nil
			}
		}
		var child *Node
		var err error
		switch kw {
		case "if", "do":
			child, err = p.statement()
		case "":
			child, err = p.expression(true)
		default:
			return nil, "", p.unexpected(within, p.peek())
		}
		if err != nil {
			return nil, "", err
		}
		n.Children = append(n.Children, child)
	}
}

func (p *parser) statement() (*Node, error) {
	pos := p.peek().pos
	var child *Node
	var err error
	switch p.keyword() {
	case "if":
		child, err = p.ifStatement()
	case "do":
		child, err = p.doLoop()
	default:
		return nil, syntaxErrorf(Statement, pos, "expected statement")
	}
	if err != nil {
		return nil, err
	}
	return &Node{Kind: Statement, Pos: pos, Children: []*Node{child}}, nil
}

func (p *parser) ifStatement() (*Node, error) {
	pos := p.next().pos
	then, term, err := p.body(IfThen, "then", "else")
	if err != nil {
		return nil, err
	}
	if term == "then" {
		return &Node{Kind: IfThen, Pos: pos, Children: []*Node{then}}, nil
	}
	otherwise, _, err := p.body(IfElseThen, "then")
	if err != nil {
		return nil, err
	}
	return &Node{Kind: IfElseThen, Pos: pos, Children: []*Node{then, otherwise}}, nil
}

func (p *parser) doLoop() (*Node, error) {
	pos := p.next().pos
	counter, err := p.ident(DoLoop, "loop counter")
	if err != nil {
		return nil, err
	}
	body, _, err := p.body(DoLoop, "loop")
	if err != nil {
		return nil, err
	}
	return &Node{Kind: DoLoop, Pos: pos, Children: []*Node{counter, body}}, nil
}

// expression parses a run of literals, identifiers and print strings. Outside
// of a word body, any keyword is an error; within one, keywords end the run.
func (p *parser) expression(inBody bool) (*Node, error) {
	n := &Node{Kind: Expression, Pos: p.peek().pos}
	for !p.done() {
		if p.keyword() != "" {
			if inBody {
				break
			}
			return nil, p.unexpected(Expression, p.peek())
		}
		switch tok := p.peek(); {
		case tok.kind == tokPrint:
			p.next()
			n.Children = append(n.Children, &Node{Kind: PrintString, Text: tok.text, Pos: tok.pos})
		case tok.kind == tokString || isInteger(tok.text) || isRuneLiteral(tok.text):
			lit, err := p.literal(Expression)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, lit)
		default:
			id, err := p.ident(Expression, "identifier")
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, id)
		}
	}
	return n, nil
}

func (p *parser) literal(within Kind) (*Node, error) {
	tok := p.peek()
	var leaf *Node
	switch {
	case p.done():
		return nil, syntaxErrorf(within, tok.pos, "expected literal")
	case tok.kind == tokString:
		leaf = &Node{Kind: String, Text: tok.text, Pos: tok.pos}
	case tok.kind == tokWord && (isInteger(tok.text) || isRuneLiteral(tok.text)):
		leaf = &Node{Kind: Integer, Text: tok.text, Pos: tok.pos}
	default:
		return nil, syntaxErrorf(within, tok.pos, "expected literal, got %q", tok.text)
	}
	p.next()
	return &Node{Kind: Literal, Pos: tok.pos, Children: []*Node{leaf}}, nil
}

func isRuneLiteral(text string) bool { return runeio.IsRuneLiteral(text) }

func (p *parser) ident(within Kind, what string) (*Node, error) {
	tok := p.peek()
	switch {
	case p.done():
		return nil, syntaxErrorf(within, tok.pos, "expected %v", what)
	case tok.kind != tokWord:
		return nil, syntaxErrorf(within, tok.pos, "expected %v, got string %q", what, tok.text)
	case isInteger(tok.text) || isRuneLiteral(tok.text):
		return nil, syntaxErrorf(within, tok.pos, "expected %v, got literal %q", what, tok.text)
	}
	if _, is := Keywords[tok.text]; is {
		return nil, syntaxErrorf(within, tok.pos, "expected %v, got keyword %q", what, tok.text)
	}
	p.next()
	return &Node{Kind: Ident, Text: tok.text, Pos: tok.pos}, nil
}
