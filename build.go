package forth

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jcorbin/easyforth/internal/grammar"
	"github.com/jcorbin/easyforth/internal/runeio"
)

// Parse parses and builds one line of source. Syntax errors, and literals
// that cannot be represented, result in a *ParseError.
func Parse(text string) (Line, error) {
	n, err := grammar.ParseLine(text)
	if err != nil {
		var se *grammar.SyntaxError
		if errors.As(err, &se) {
			return Line{}, &ParseError{se.Kind.String(), se.Pos, se.Message}
		}
		return Line{}, err
	}
	return buildLine(n)
}

func buildError(n *grammar.Node, mess string, args ...interface{}) *ParseError {
	return &ParseError{n.Kind.String(), n.Pos, fmt.Sprintf(mess, args...)}
}

func expectKind(n *grammar.Node, kind grammar.Kind) error {
	if n == nil {
		return &ParseError{kind.String(), 0, "missing node"}
	}
	if n.Kind != kind {
		return buildError(n, "expected %v node", kind)
	}
	return nil
}

func buildLine(n *grammar.Node) (line Line, err error) {
	if err := expectKind(n, grammar.Line); err != nil {
		return line, err
	}
	child := n.Child(0)
	if child != nil && child.Kind == grammar.Definition {
		line.Definition, err = buildDefinition(child)
	} else {
		line.Expression, err = buildExpression(child)
	}
	return line, err
}

func buildDefinition(n *grammar.Node) (Definition, error) {
	if err := expectKind(n, grammar.Definition); err != nil {
		return nil, err
	}
	def := n.Child(0)
	if def == nil {
		return nil, buildError(n, "empty definition")
	}
	switch def.Kind {
	case grammar.VariableDefinition:
		name, err := buildIdent(def.Child(0))
		return VariableDefinition{name.Name}, err

	case grammar.ConstantDefinition:
		value, err := buildLiteral(def.Child(0))
		if err != nil {
			return nil, err
		}
		name, err := buildIdent(def.Child(1))
		return ConstantDefinition{name.Name, value.Value}, err

	case grammar.WordDefinition:
		name, err := buildIdent(def.Child(0))
		if err != nil {
			return nil, err
		}
		body, err := buildBody(def.Child(1))
		return WordDefinition{name.Name, body}, err

	default:
		return nil, buildError(def, "unexpected definition")
	}
}

func buildBody(n *grammar.Node) (Body, error) {
	if err := expectKind(n, grammar.Body); err != nil {
		return nil, err
	}
	body := make(Body, 0, len(n.Children))
	for _, child := range n.Children {
		var elem BodyElement
		var err error
		switch child.Kind {
		case grammar.Expression:
			elem, err = buildExpression(child)
		case grammar.Statement:
			elem, err = buildStatement(child)
		default:
			err = buildError(child, "expected statement or expression")
		}
		if err != nil {
			return nil, err
		}
		body = append(body, elem)
	}
	return body, nil
}

func buildStatement(n *grammar.Node) (Statement, error) {
	if err := expectKind(n, grammar.Statement); err != nil {
		return nil, err
	}
	stmt := n.Child(0)
	if stmt == nil {
		return nil, buildError(n, "empty statement")
	}
	switch stmt.Kind {
	case grammar.IfThen:
		then, err := buildBody(stmt.Child(0))
		return IfThen{then}, err

	case grammar.IfElseThen:
		then, err := buildBody(stmt.Child(0))
		if err != nil {
			return nil, err
		}
		otherwise, err := buildBody(stmt.Child(1))
		return IfElseThen{then, otherwise}, err

	case grammar.DoLoop:
		counter, err := buildIdent(stmt.Child(0))
		if err != nil {
			return nil, err
		}
		body, err := buildBody(stmt.Child(1))
		return DoLoop{counter.Name, body}, err

	default:
		return nil, buildError(stmt, "unexpected statement")
	}
}

func buildExpression(n *grammar.Node) (*Expression, error) {
	if err := expectKind(n, grammar.Expression); err != nil {
		return nil, err
	}
	expr := &Expression{Elements: make([]Executable, 0, len(n.Children))}
	for _, child := range n.Children {
		var elem Executable
		var err error
		switch child.Kind {
		case grammar.Literal:
			elem, err = buildLiteral(child)
		case grammar.Ident:
			elem, err = buildIdent(child)
		case grammar.PrintString:
			elem = PrintStringNode{child.Text}
		default:
			err = buildError(child, "expected literal or identifier")
		}
		if err != nil {
			return nil, err
		}
		expr.Elements = append(expr.Elements, elem)
	}
	return expr, nil
}

func buildLiteral(n *grammar.Node) (LiteralNode, error) {
	if err := expectKind(n, grammar.Literal); err != nil {
		return LiteralNode{}, err
	}
	leaf := n.Child(0)
	if leaf == nil {
		return LiteralNode{}, buildError(n, "empty literal")
	}
	switch leaf.Kind {
	case grammar.String:
		return LiteralNode{String(leaf.Text)}, nil
	case grammar.Integer:
		if runeio.IsRuneLiteral(leaf.Text) {
			r, err := runeio.UnquoteRune(leaf.Text)
			if err != nil {
				return LiteralNode{}, buildError(leaf, "invalid character %v: %v", leaf.Text, err)
			}
			return LiteralNode{Integer(r)}, nil
		}
		i, err := strconv.ParseInt(leaf.Text, 10, 64)
		if err != nil {
			return LiteralNode{}, buildError(leaf, "invalid integer %v", leaf.Text)
		}
		return LiteralNode{Integer(i)}, nil
	default:
		return LiteralNode{}, buildError(leaf, "expected integer or string")
	}
}

func buildIdent(n *grammar.Node) (IdentNode, error) {
	if err := expectKind(n, grammar.Ident); err != nil {
		return IdentNode{}, err
	}
	return IdentNode{n.Text}, nil
}
