package forth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/easyforth/internal/fileinput"
	"github.com/jcorbin/easyforth/internal/logio"
)

type interpTestCases []interpTestCase

func (its interpTestCases) run(t *testing.T) {
	{
		var exclusive []interpTestCase
		for _, it := range its {
			if it.exclusive {
				exclusive = append(exclusive, it)
			}
		}
		if len(exclusive) > 0 {
			its = exclusive
		}
	}
	for _, it := range its {
		if !t.Run(it.name, it.run) {
			return
		}
	}
}

func interpTest(name string) (it interpTestCase) {
	it.name = name
	return it
}

type optFunc func(in *Interpreter)

func (f optFunc) apply(in *Interpreter) { f(in) }

type interpTestCase struct {
	name     string
	opts     []interface{}
	sources  []namedSource
	lines    []string
	expect   []func(t *testing.T, in *Interpreter)
	wantErr  error
	wantKind ErrorKind

	exclusive   bool
	nextInputID int
}

func (it interpTestCase) apply(wraps ...func(interpTestCase) interpTestCase) interpTestCase {
	for _, wrap := range wraps {
		it = wrap(it)
	}
	return it
}

func (it interpTestCase) exclusiveTest() interpTestCase {
	it.exclusive = true
	return it
}

func (it interpTestCase) withOptions(opts ...Option) interpTestCase {
	for _, opt := range opts {
		it.opts = append(it.opts, opt)
	}
	return it
}

func (it interpTestCase) withStack(values ...Literal) interpTestCase {
	it.opts = append(it.opts, optFunc(func(in *Interpreter) {
		in.push(values...)
	}))
	return it
}

func (it interpTestCase) withVar(name string, value Literal) interpTestCase {
	it.opts = append(it.opts, optFunc(func(in *Interpreter) {
		addr := in.vars.define(name)
		in.vars.slots[addr].Value = value
	}))
	return it
}

func (it interpTestCase) withInput(input string) interpTestCase {
	it.opts = append(it.opts, func(it *interpTestCase, t *testing.T) Option {
		name := t.Name() + "/input"
		if id := it.nextInputID; id > 0 {
			name += "_" + strconv.Itoa(id+1)
		}
		it.nextInputID++
		return WithInput(fileinput.NamedReader(name, strings.NewReader(input)))
	})
	return it
}

func (it interpTestCase) withNamedSource(name string, source string) interpTestCase {
	it.sources = append(it.sources, namedSource{name, source})
	return it
}

func (it interpTestCase) withMemLimit(limit int) interpTestCase {
	it.opts = append(it.opts, WithMemLimit(limit))
	return it
}

func (it interpTestCase) withMaxDepth(depth int) interpTestCase {
	it.opts = append(it.opts, WithMaxDepth(depth))
	return it
}

func (it interpTestCase) do(lines ...string) interpTestCase {
	it.lines = append(it.lines, lines...)
	return it
}

func (it interpTestCase) expectError(err error) interpTestCase {
	it.wantErr = err
	return it
}

func (it interpTestCase) expectErrorKind(kind ErrorKind) interpTestCase {
	it.wantKind = kind
	return it
}

func (it interpTestCase) expectStack(values ...Literal) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		if values == nil {
			values = []Literal{}
		}
		assert.Equal(t, values, in.StackDump(), "expected stack values")
	})
	return it
}

func (it interpTestCase) expectVar(name string, value Literal) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		addr, defined := in.vars.lookup(name)
		if assert.True(t, defined, "expected variable %q to be defined", name) {
			assert.Equal(t, value, in.vars.slots[addr].Value, "expected variable %q value", name)
		}
	})
	return it
}

func (it interpTestCase) expectArray(name string, values ...Literal) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		addr, defined := in.vars.lookup(name)
		if !assert.True(t, defined, "expected variable %q to be defined", name) {
			return
		}
		arr, isArray := in.vars.slots[addr].Value.(*Array)
		if assert.True(t, isArray, "expected variable %q to hold an array", name) {
			assert.Equal(t, values, arr.Values(), "expected array %q values", name)
		}
	})
	return it
}

func (it interpTestCase) expectConst(name string, value Literal) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		assert.Equal(t, value, in.consts[name], "expected constant %q value", name)
	})
	return it
}

func (it interpTestCase) expectWord(name string, source string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		body, defined := in.words[name]
		if assert.True(t, defined, "expected word %q to be defined", name) {
			assert.Equal(t, source, WordDefinition{name, body}.String(), "expected word %q source", name)
		}
	})
	return it
}

func (it interpTestCase) expectOutput(output string) interpTestCase {
	var out strings.Builder
	it.opts = append(it.opts, WithOutput(&out))
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		assert.Equal(t, output, out.String(), "expected output")
	})
	return it
}

func (it interpTestCase) expectDump(dump string) interpTestCase {
	it.expect = append(it.expect, func(t *testing.T, in *Interpreter) {
		var out strings.Builder
		assert.NoError(t, in.Dump(&out))
		assert.Equal(t, dump, out.String(), "expected dump")
	})
	return it
}

func (it interpTestCase) withTestOutput() interpTestCase {
	it.opts = append(it.opts, func(it *interpTestCase, t *testing.T) Option {
		return WithTee(&logio.Writer{Logf: func(mess string, args ...interface{}) {
			t.Logf("out: "+mess, args...)
		}})
	})
	return it
}

func (it interpTestCase) run(t *testing.T) {
	var trace []string
	in := it.build(t, func(mess string, args ...interface{}) {
		trace = append(trace, fmt.Sprintf(mess, args...))
	})

	defer func() {
		if t.Failed() {
			for _, line := range trace {
				t.Log(line)
			}
			it.dumpToTest(t, in)
		}
	}()

	err := it.exec(in)
	switch {
	case it.wantErr != nil:
		assert.True(t, errors.Is(err, it.wantErr), "expected error: %v\ngot: %+v", it.wantErr, err)
	case it.wantKind != NoError:
		assert.Equal(t, it.wantKind, KindOf(err), "expected error kind, got: %+v", err)
	default:
		assert.NoError(t, err, "unexpected error")
	}

	if !t.Failed() {
		for _, expect := range it.expect {
			expect(t, in)
		}
	}
}

func (it interpTestCase) exec(in *Interpreter) error {
	if len(it.sources) > 0 {
		inputs := make([]io.Reader, len(it.sources))
		for i, src := range it.sources {
			inputs[i] = fileinput.NamedReader(src.name, strings.NewReader(src.source))
		}
		if err := in.Run(context.Background(), inputs...); err != nil {
			return err
		}
	}
	for _, line := range it.lines {
		if err := in.Execute(line); err != nil {
			return err
		}
	}
	return nil
}

func (it interpTestCase) build(t *testing.T, logfn func(mess string, args ...interface{})) *Interpreter {
	var opts []Option
	for _, o := range it.opts {
		switch impl := o.(type) {
		case func(it *interpTestCase, t *testing.T) Option:
			opts = append(opts, impl(&it, t))
		case Option:
			opts = append(opts, impl)
		default:
			t.Logf("unsupported interpTestCase opt type %T", o)
			t.FailNow()
		}
	}
	opts = append(opts, WithLogf(logfn))
	return New(opts...)
}

func (it interpTestCase) dumpToTest(t *testing.T, in *Interpreter) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	in.Dump(&lw)
}

//// utilities

type namedSource struct {
	name   string
	source string
}

func ints(values ...int) []Literal {
	lits := make([]Literal, len(values))
	for i, v := range values {
		lits[i] = Integer(v)
	}
	return lits
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n") + "\n"
}
