package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	forth "github.com/jcorbin/easyforth"
	"github.com/jcorbin/easyforth/internal/config"
)

func newTestREPL(mode string) (*repl, *bytes.Buffer) {
	var out bytes.Buffer
	return &repl{
		sess:   forth.NewSession(forth.WithOutput(&out)),
		out:    &out,
		render: newRenderer(&out, mode),
	}, &out
}

func TestREPL_handle(t *testing.T) {
	r, out := newTestREPL(config.OutputText)

	for _, step := range []struct {
		line string
		out  string
		quit bool
	}{
		{line: "1 2 +", out: " ok\n"},
		{line: ".", out: "3  ok\n"},
		{line: ".stack", out: "<1> 3\n"},
		{line: "  .STACK  ", out: "<1> 3\n"},
		{line: ".s", out: "<1> 3  ok\n"},
		{line: "nope", out: "UnknownIdentifier: nope: unknown identifier\n"},
		{line: `"open`, out: "ParseError: parse error in string at offset 0: unterminated string\n"},
		{line: "variable x", out: " ok\n"},
		{line: "5 x !", out: " ok\n"},
		{line: ".vars", out: "@0 x 5\n"},
		{line: "7 constant seven", out: " ok\n"},
		{line: ".consts", out: "seven 7\n"},
		{line: ": sq dup * ;", out: " ok\n"},
		{line: ".words", out: ": sq dup * ;\n"},
		{line: ".dump", out: "<1> 3\n@0 x 5\nseven 7\n: sq dup * ;\n"},
		{line: ".clear", out: "cleared\n"},
		{line: ".stack", out: "<0>\n"},
		{line: ".quit", quit: true},
	} {
		out.Reset()
		quit := r.handle(step.line)
		assert.Equal(t, step.quit, quit, "quit after %q", step.line)
		assert.Equal(t, step.out, out.String(), "output after %q", step.line)
	}
}

func TestREPL_help(t *testing.T) {
	r, out := newTestREPL(config.OutputText)
	assert.False(t, r.handle(".help"))
	for _, dc := range dotCommands {
		assert.Contains(t, out.String(), dc.name)
	}
}

func TestWordCompleter(t *testing.T) {
	r, _ := newTestREPL(config.OutputText)
	r.handle(": double 2 * ;")
	r.handle("variable dx")
	wc := wordCompleter{r}

	for _, tc := range []struct {
		line   string
		want   []string
		length int
	}{
		{"1 dou", []string{"ble "}, 3},
		{"1 d", []string{"ouble ", "rop ", "up ", "x "}, 1},
		{".cl", []string{"ear "}, 3},
		{"1 ", nil, 0},
		{"zzz", nil, 3},
	} {
		line := []rune(tc.line)
		got, length := wc.Do(line, len(line))
		var strs []string
		for _, rs := range got {
			strs = append(strs, string(rs))
		}
		assert.Equal(t, tc.want, strs, "completions of %q", tc.line)
		assert.Equal(t, tc.length, length, "completion length of %q", tc.line)
	}
}
