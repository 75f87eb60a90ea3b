// Package grammar parses line-oriented forth source into parse trees whose
// nodes are tagged by the production that matched them.
package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a grammar production.
type Kind int

// Productions, named by their String forms.
const (
	Integer Kind = iota + 1
	String
	Ident
	Literal
	PrintString
	Expression
	Statement
	IfThen
	IfElseThen
	DoLoop
	Body
	VariableDefinition
	ConstantDefinition
	WordDefinition
	Definition
	Line
	Comment
)

var kindNames = [...]string{
	Integer:            "integer",
	String:             "string",
	Ident:              "ident",
	Literal:            "literal",
	PrintString:        "print_string",
	Expression:         "expression",
	Statement:          "statement",
	IfThen:             "if_then_statement",
	IfElseThen:         "if_else_then_statement",
	DoLoop:             "do_loop",
	Body:               "body",
	VariableDefinition: "variable_definition",
	ConstantDefinition: "constant_definition",
	WordDefinition:     "word_definition",
	Definition:         "definition",
	Line:               "line",
	Comment:            "comment",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is one parse tree node. Leaf productions (integer, string, ident,
// print_string) carry their source Text; all others carry ordered Children.
// Pos is the byte offset of the node's first token within the parsed source.
type Node struct {
	Kind     Kind
	Text     string
	Pos      int
	Children []*Node
}

// Child returns the i-th child, or nil if there is no such child.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// String renders the tree as a parenthesized s-expression, e.g.
// `(line (expression (literal (integer "1")) (ident "dup")))`.
func (n *Node) String() string {
	var sb strings.Builder
	n.format(&sb)
	return sb.String()
}

func (n *Node) format(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("()")
		return
	}
	sb.WriteByte('(')
	sb.WriteString(n.Kind.String())
	if n.Text != "" || len(n.Children) == 0 {
		switch n.Kind {
		case Integer, String, Ident, PrintString, Comment:
			sb.WriteByte(' ')
			sb.WriteString(strconv.Quote(n.Text))
		}
	}
	for _, child := range n.Children {
		sb.WriteByte(' ')
		child.format(sb)
	}
	sb.WriteByte(')')
}

// SyntaxError reports malformed input, naming the production that failed to
// match along with the byte offset where the problem was found.
type SyntaxError struct {
	Kind    Kind
	Pos     int
	Message string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %v (offset %v)", err.Kind, err.Message, err.Pos)
}

func syntaxErrorf(kind Kind, pos int, mess string, args ...interface{}) *SyntaxError {
	return &SyntaxError{kind, pos, fmt.Sprintf(mess, args...)}
}
