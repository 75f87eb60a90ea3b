package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	forth "github.com/jcorbin/easyforth"
	"github.com/jcorbin/easyforth/internal/config"
)

func testSnapshot(t *testing.T) forth.Snapshot {
	sess := forth.NewSession()
	require.NoError(t, sess.Execute(`variable a
variable arr
2 allot
9 arr 1 + !
"hi" a !
-1 constant neg
: inc 1 + ;
neg arr`))
	return sess.Snapshot()
}

func TestRenderer_text(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, config.OutputText)
	require.NoError(t, r.snapshot(testSnapshot(t), allSections...))
	assert.Equal(t, `<2> -1 @1+0
@0 a "hi"
@1 arr [0 9 0]
neg -1
: inc 1 + ;
`, out.String())
}

func TestRenderer_yaml(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, config.OutputYAML)
	require.NoError(t, r.snapshot(testSnapshot(t), allSections...))
	assert.Equal(t, `consts:
  neg: -1
stack:
  - -1
  - '@1+0'
vars:
  - address: 0
    name: a
    value: hi
  - address: 1
    name: arr
    value:
      - 0
      - 9
      - 0
words:
  inc: 1 +
`, out.String())
}

func TestRenderer_table(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, config.OutputTable)
	require.NoError(t, r.snapshot(testSnapshot(t), sectionVars, sectionNatives))
	s := out.String()
	assert.True(t, strings.HasPrefix(s, "vars\n"), "section heading before its table in %q", s)
	assert.Contains(t, s, "\nnatives\n")
	assert.Contains(t, s, "ADDRESS")
	assert.Contains(t, s, "[0 9 0]")
	assert.Contains(t, s, "emit")

	out.Reset()
	require.NoError(t, r.snapshot(forth.Snapshot{}, sectionStack))
	assert.Equal(t, "(no stack)\n", out.String())
}

func TestRenderer_feedback(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(&out, config.OutputText)
	r.ok()
	r.fail(forth.ErrStackUnderflow)
	r.fail(errors.New("other"))
	assert.Equal(t, " ok\nStackUnderflow: stack underflow\nOtherError: other\n", out.String())
	assert.Equal(t, "ERROR", r.styleLevel("ERROR"), "no styling without a terminal")

	assert.Error(t, r.snapshot(forth.Snapshot{}, "bogus"))
}
