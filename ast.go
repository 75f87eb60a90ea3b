package forth

import (
	"strings"
)

// Executable is implemented by every AST node; Execute runs the node against
// an interpreter's state, and String renders it back into source form.
type Executable interface {
	Execute(in *Interpreter) error
	String() string
}

// LiteralNode pushes a constant value.
type LiteralNode struct{ Value Literal }

// IdentNode names a variable, constant, native word or user word; names are
// resolved each time the node executes.
type IdentNode struct{ Name string }

// PrintStringNode writes its text to output.
type PrintStringNode struct{ Text string }

// Expression is a run of literals and identifiers, executed left to right.
type Expression struct {
	Elements []Executable
}

// BodyElement is either an *Expression or a Statement.
type BodyElement interface {
	Executable
	bodyElement()
}

// Body is an ordered sequence of expressions and statements, as found in word
// definitions and the branches of control statements.
type Body []BodyElement

// Statement is one of IfThen, IfElseThen or DoLoop.
type Statement interface {
	BodyElement
	statement()
}

// IfThen pops a condition, executing Then if it is true.
type IfThen struct{ Then Body }

// IfElseThen pops a condition, executing Then if it is true, Else otherwise.
type IfElseThen struct{ Then, Else Body }

// DoLoop pops a start and limit, then executes Body once for each counter
// value in [start, limit), binding the Counter variable after each pass.
type DoLoop struct {
	Counter string
	Body    Body
}

// Definition is one of VariableDefinition, ConstantDefinition or
// WordDefinition.
type Definition interface {
	Executable
	definition()
}

// VariableDefinition appends a new, unset, variable slot.
type VariableDefinition struct{ Name string }

// ConstantDefinition binds a name to a value.
type ConstantDefinition struct {
	Name  string
	Value Literal
}

// WordDefinition binds a name to a body of code.
type WordDefinition struct {
	Name string
	Body Body
}

// Line is one parsed line of source: exactly one of Definition or
// Expression is set.
type Line struct {
	Definition Definition
	Expression *Expression
}

func (*Expression) bodyElement() {}
func (IfThen) bodyElement()      {}
func (IfElseThen) bodyElement()  {}
func (DoLoop) bodyElement()      {}
func (IfThen) statement()        {}
func (IfElseThen) statement()    {}
func (DoLoop) statement()        {}

func (VariableDefinition) definition() {}
func (ConstantDefinition) definition() {}
func (WordDefinition) definition()     {}

func (node LiteralNode) String() string     { return node.Value.String() }
func (node IdentNode) String() string       { return node.Name }
func (node PrintStringNode) String() string { return `." ` + node.Text + `"` }

func (expr *Expression) String() string {
	var sb strings.Builder
	for i, elem := range expr.Elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(elem.String())
	}
	return sb.String()
}

func (body Body) String() string {
	var sb strings.Builder
	body.writeTo(&sb)
	return sb.String()
}

func (body Body) writeTo(sb *strings.Builder) {
	for i, elem := range body {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(elem.String())
	}
}

func (stmt IfThen) String() string {
	var sb strings.Builder
	sb.WriteString("if ")
	writeBlock(&sb, stmt.Then)
	sb.WriteString("then")
	return sb.String()
}

func (stmt IfElseThen) String() string {
	var sb strings.Builder
	sb.WriteString("if ")
	writeBlock(&sb, stmt.Then)
	sb.WriteString("else ")
	writeBlock(&sb, stmt.Else)
	sb.WriteString("then")
	return sb.String()
}

func (stmt DoLoop) String() string {
	var sb strings.Builder
	sb.WriteString("do ")
	sb.WriteString(stmt.Counter)
	sb.WriteByte(' ')
	writeBlock(&sb, stmt.Body)
	sb.WriteString("loop")
	return sb.String()
}

func (def VariableDefinition) String() string { return "variable " + def.Name }
func (def ConstantDefinition) String() string { return def.Value.String() + " constant " + def.Name }

func (def WordDefinition) String() string {
	var sb strings.Builder
	sb.WriteString(": ")
	sb.WriteString(def.Name)
	sb.WriteByte(' ')
	writeBlock(&sb, def.Body)
	sb.WriteString(";")
	return sb.String()
}

func (line Line) String() string {
	if line.Definition != nil {
		return line.Definition.String()
	}
	if line.Expression != nil {
		return line.Expression.String()
	}
	return ""
}

// writeBlock writes body followed by a space, if it is non-empty.
func writeBlock(sb *strings.Builder, body Body) {
	if len(body) > 0 {
		body.writeTo(sb)
		sb.WriteByte(' ')
	}
}
