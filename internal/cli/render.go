package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	forth "github.com/jcorbin/easyforth"
	"github.com/jcorbin/easyforth/internal/config"
)

// Snapshot sections, as accepted by renderer.snapshot.
const (
	sectionStack   = "stack"
	sectionVars    = "vars"
	sectionConsts  = "consts"
	sectionWords   = "words"
	sectionNatives = "natives"
)

var allSections = []string{sectionStack, sectionVars, sectionConsts, sectionWords}

// renderer writes interpreter state and command feedback in one of the
// config output modes.
type renderer struct {
	out  io.Writer
	mode string
	term *termenv.Output
}

func newRenderer(out io.Writer, mode string) *renderer {
	return &renderer{
		out:  out,
		mode: mode,
		term: termenv.NewOutput(out),
	}
}

func (r *renderer) ok() {
	fmt.Fprintln(r.out, r.term.String(" ok").Foreground(termenv.ANSIGreen).String())
}

func (r *renderer) fail(err error) {
	label := r.term.String(forth.KindOf(err).String()).Foreground(termenv.ANSIRed).Bold()
	fmt.Fprintf(r.out, "%v: %v\n", label, err)
}

func (r *renderer) styleLevel(level string) string {
	s := r.term.String(level).Bold()
	switch level {
	case "ERROR":
		s = s.Foreground(termenv.ANSIRed)
	case "TRACE":
		s = s.Foreground(termenv.ANSIBrightBlack)
	}
	return s.String()
}

type section struct {
	name   string
	header table.Row
	rows   []table.Row
	value  interface{}
}

// snapshot renders the named sections of snap.
func (r *renderer) snapshot(snap forth.Snapshot, names ...string) error {
	secs := make([]section, 0, len(names))
	for _, name := range names {
		sec, err := snapshotSection(snap, name)
		if err != nil {
			return err
		}
		secs = append(secs, sec)
	}
	switch r.mode {
	case config.OutputYAML:
		return r.yamlDoc(secs)
	case config.OutputTable:
		r.tables(secs)
		return nil
	default:
		r.text(secs)
		return nil
	}
}

func snapshotSection(snap forth.Snapshot, name string) (sec section, err error) {
	sec.name = name
	switch name {
	case sectionStack:
		sec.header = table.Row{"#", "value"}
		vals := make([]interface{}, len(snap.Stack))
		for i, val := range snap.Stack {
			sec.rows = append(sec.rows, table.Row{i, val.String()})
			vals[i] = yamlValue(val)
		}
		sec.value = vals

	case sectionVars:
		sec.header = table.Row{"address", "name", "value"}
		vars := make([]map[string]interface{}, len(snap.Vars))
		for addr, v := range snap.Vars {
			val := ""
			if v.Value != nil {
				val = v.Value.String()
			}
			sec.rows = append(sec.rows, table.Row{"@" + strconv.Itoa(addr), v.Name, val})
			vars[addr] = map[string]interface{}{
				"address": addr,
				"name":    v.Name,
				"value":   yamlValue(v.Value),
			}
		}
		sec.value = vars

	case sectionConsts:
		sec.header = table.Row{"name", "value"}
		consts := make(map[string]interface{}, len(snap.Consts))
		for _, name := range sortedNames(snap.Consts) {
			sec.rows = append(sec.rows, table.Row{name, snap.Consts[name].String()})
			consts[name] = yamlValue(snap.Consts[name])
		}
		sec.value = consts

	case sectionWords:
		sec.header = table.Row{"name", "body"}
		words := make(map[string]string, len(snap.UserWords))
		for _, name := range sortedNames(snap.UserWords) {
			body := snap.UserWords[name].String()
			sec.rows = append(sec.rows, table.Row{name, body})
			words[name] = body
		}
		sec.value = words

	case sectionNatives:
		sec.header = table.Row{"name"}
		for _, name := range snap.NativeWords {
			sec.rows = append(sec.rows, table.Row{name})
		}
		sec.value = snap.NativeWords

	default:
		return sec, fmt.Errorf("unknown section %q", name)
	}
	return sec, nil
}

func (r *renderer) text(secs []section) {
	for _, sec := range secs {
		switch sec.name {
		case sectionStack:
			var sb strings.Builder
			fmt.Fprintf(&sb, "<%d>", len(sec.rows))
			for _, row := range sec.rows {
				fmt.Fprintf(&sb, " %v", row[1])
			}
			fmt.Fprintln(r.out, sb.String())
		case sectionWords:
			for _, row := range sec.rows {
				if row[1] == "" {
					fmt.Fprintf(r.out, ": %v ;\n", row[0])
				} else {
					fmt.Fprintf(r.out, ": %v %v ;\n", row[0], row[1])
				}
			}
		default:
			for _, row := range sec.rows {
				parts := make([]string, 0, len(row))
				for _, cell := range row {
					if s := fmt.Sprint(cell); s != "" {
						parts = append(parts, s)
					}
				}
				fmt.Fprintln(r.out, strings.Join(parts, " "))
			}
		}
	}
}

func (r *renderer) tables(secs []section) {
	for _, sec := range secs {
		if len(sec.rows) == 0 {
			fmt.Fprintf(r.out, "(no %v)\n", sec.name)
			continue
		}
		fmt.Fprintln(r.out, r.term.String(sec.name).Bold().String())
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(sec.header)
		t.AppendRows(sec.rows)
		t.Render()
	}
}

func (r *renderer) yamlDoc(secs []section) error {
	doc := make(map[string]interface{}, len(secs))
	for _, sec := range secs {
		doc[sec.name] = sec.value
	}
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// yamlValue converts a value into plain data for yaml encoding; pointers
// are encoded in their @address+offset form.
func yamlValue(lit forth.Literal) interface{} {
	switch v := lit.(type) {
	case nil:
		return nil
	case forth.Integer:
		return int64(v)
	case forth.String:
		return string(v)
	case *forth.Array:
		vals := v.Values()
		out := make([]interface{}, len(vals))
		for i, val := range vals {
			out[i] = yamlValue(val)
		}
		return out
	default:
		return v.String()
	}
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
