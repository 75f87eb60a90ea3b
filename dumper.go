package forth

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Dump writes a textual snapshot of the interpreter's stack, variables,
// constants and user words to w; it has no effect on the interpreter.
func (in *Interpreter) Dump(w io.Writer) error {
	return stateDumper{in: in, out: w}.dump()
}

type stateDumper struct {
	in  *Interpreter
	out io.Writer

	addrWidth int
}

func (dump stateDumper) dump() error {
	var buf bytes.Buffer
	buf.WriteString("# Interpreter Dump\n")
	fmt.Fprintf(&buf, "  stack: %v\n", dump.stack())
	dump.dumpVars(&buf)
	dump.dumpConsts(&buf)
	dump.dumpWords(&buf)
	_, err := buf.WriteTo(dump.out)
	return err
}

func (dump stateDumper) stack() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, val := range dump.in.stack {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(val.String())
	}
	buf.WriteByte(']')
	return buf.String()
}

func (dump *stateDumper) dumpVars(buf *bytes.Buffer) {
	slots := dump.in.vars.slots
	if len(slots) == 0 {
		return
	}
	if dump.addrWidth == 0 {
		dump.addrWidth = len(strconv.Itoa(len(slots) - 1))
	}
	buf.WriteString("# Variables\n")
	for addr, v := range slots {
		fmt.Fprintf(buf, "  @%-*v %v", dump.addrWidth, addr, v.Name)
		if v.Value != nil {
			buf.WriteByte(' ')
			buf.WriteString(v.Value.String())
		}
		if cur, _ := dump.in.vars.lookup(v.Name); cur != addr {
			buf.WriteString(" (shadowed)")
		}
		buf.WriteByte('\n')
	}
}

func (dump stateDumper) dumpConsts(buf *bytes.Buffer) {
	consts := dump.in.consts
	if len(consts) == 0 {
		return
	}
	buf.WriteString("# Constants\n")
	for _, name := range sortedKeys(consts) {
		fmt.Fprintf(buf, "  %v %v\n", name, consts[name])
	}
}

func (dump stateDumper) dumpWords(buf *bytes.Buffer) {
	words := dump.in.words
	if len(words) == 0 {
		return
	}
	buf.WriteString("# Words\n")
	for _, name := range sortedKeys(words) {
		fmt.Fprintf(buf, "  %v\n", WordDefinition{name, words[name]})
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
