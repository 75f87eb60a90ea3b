package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	var stdout, stderr bytes.Buffer
	code := Execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	res := cliResult{code, stdout.String(), stderr.String()}
	t.Logf("easyforth %v => %v\nstdout: %q\nstderr: %q", args, res.code, res.stdout, res.stderr)
	return res
}

func writeSource(t *testing.T, name string, lines ...string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestExecute_run(t *testing.T) {
	chdir(t, t.TempDir())

	lib := writeSource(t, "lib.fs",
		`: square dup * ;`,
		`variable total`,
	)
	main := writeSource(t, "main.fs",
		`0 total !`,
		`3 square total +!`,
		`4 square total +!`,
		`total ? cr`,
	)
	keys := writeSource(t, "keys.fs",
		`key emit key emit`,
	)
	bad := writeSource(t, "bad.fs",
		`1 2 +`,
		`nope`,
	)

	for _, tc := range []struct {
		name   string
		stdin  string
		args   []string
		code   int
		stdout string
		stderr []string
	}{
		{
			name:   "stdin",
			stdin:  "1 2 + .\n",
			stdout: "3 ",
		},
		{
			name:   "run stdin",
			stdin:  ": hi .\" hi\" ;\nhi\n",
			args:   []string{"run"},
			stdout: "hi",
		},
		{
			name:   "files",
			args:   []string{lib, main},
			stdout: "25 \n",
		},
		{
			name:   "run files",
			args:   []string{"run", lib, main},
			stdout: "25 \n",
		},
		{
			name:   "dash reads stdin",
			stdin:  "square .\n",
			args:   []string{"run", lib, "-"},
			stderr: []string{"stack underflow"},
			code:   1,
		},
		{
			name:   "key reads stdin",
			stdin:  "ok",
			args:   []string{"run", keys},
			stdout: "ok",
		},
		{
			name:   "key with program on stdin",
			stdin:  "key emit\nX\n",
			args:   []string{"run"},
			code:   1,
			stderr: []string{"<stdin>:1: key: input exhausted"},
		},
		{
			name:   "preload",
			stdin:  "5 square .\n",
			args:   []string{"--preload", lib},
			stdout: "25 ",
		},
		{
			name:   "error location",
			args:   []string{"run", bad},
			code:   1,
			stderr: []string{"ERROR: ", "bad.fs:2: nope: unknown identifier"},
		},
		{
			name:   "missing file",
			args:   []string{"run", filepath.Join(t.TempDir(), "missing.fs")},
			code:   1,
			stderr: []string{"missing.fs"},
		},
		{
			name:   "max depth",
			stdin:  ": f f ;\nf\n",
			args:   []string{"--max-depth", "5"},
			code:   1,
			stderr: []string{"return stack overflow"},
		},
		{
			name:   "trace",
			stdin:  "1 2 +\n",
			args:   []string{"--trace"},
			stderr: []string{"TRACE: ", "1 2 +"},
		},
		{
			name:   "invalid output",
			args:   []string{"-o", "xml", "words"},
			code:   1,
			stderr: []string{`invalid output "xml"`},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, tc.stdin, tc.args...)
			assert.Equal(t, tc.code, res.code, "exit code")
			if tc.stdout != "" {
				assert.Equal(t, tc.stdout, res.stdout)
			}
			for _, want := range tc.stderr {
				assert.Contains(t, res.stderr, want)
			}
			if len(tc.stderr) == 0 {
				assert.Empty(t, res.stderr)
			}
		})
	}
}

func TestExecute_words(t *testing.T) {
	chdir(t, t.TempDir())
	lib := writeSource(t, "lib.fs", `: square dup * ;`, `: nop ;`)

	res := runCLI(t, "", "words", "--user", "--preload", lib)
	assert.Equal(t, 0, res.code)
	assert.Equal(t, ": nop ;\n: square dup * ;\n", res.stdout)

	res = runCLI(t, "", "words", "--user", "--preload", lib, "-o", "yaml")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "words:\n  nop: \"\"\n  square: dup *\n", res.stdout)

	res = runCLI(t, "", "words", "-o", "table")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "allot")
	assert.Contains(t, res.stdout, "(no words)")
}

func TestExecute_configFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	lib := writeSource(t, "lib.fs", `42 constant answer`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "easyforth.yaml"),
		[]byte("preload:\n  - "+lib+"\n"), 0o644))

	res := runCLI(t, "answer .\n")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "42 ", res.stdout)
}
