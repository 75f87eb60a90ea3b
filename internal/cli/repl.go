package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	forth "github.com/jcorbin/easyforth"
)

func newREPLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: `Start an interactive session, executing each line as it is entered.
Lines starting with a dot command, like .stack or .help, inspect or reset
the session instead; type .help to list them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.repl(cmd)
		},
	}
}

func (a *app) repl(cmd *cobra.Command) error {
	var r repl
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          a.cfg.Prompt,
		HistoryFile:     a.cfg.HistoryFile,
		AutoComplete:    wordCompleter{&r},
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r.out = rl.Stdout()
	r.render = newRenderer(r.out, a.cfg.Output)
	r.sess, err = a.newSession(cmd, forth.WithOutput(r.out))
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, "easyforth", Version)
	fmt.Fprintln(r.out, "Type .help for commands, .quit to exit")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		if r.handle(line) {
			return nil
		}
	}
}

// repl processes lines of interactive input against a session.
type repl struct {
	sess   *forth.Session
	out    io.Writer
	render *renderer
}

type dotCommand struct {
	name string
	help string
	run  func(r *repl) (quit bool)
}

var dotCommands []dotCommand

func init() {
	dotCommands = []dotCommand{
		{".help", "show this help", (*repl).help},
		{".stack", "show the stack", sectionCommand(sectionStack)},
		{".vars", "show variables", sectionCommand(sectionVars)},
		{".consts", "show constants", sectionCommand(sectionConsts)},
		{".words", "show user defined words", sectionCommand(sectionWords)},
		{".natives", "show native words", sectionCommand(sectionNatives)},
		{".dump", "show all session state", sectionCommand(allSections...)},
		{".clear", "clear the stack, variables, constants and user words", (*repl).clear},
		{".quit", "end the session", func(*repl) bool { return true }},
		{".exit", "end the session", func(*repl) bool { return true }},
	}
}

func sectionCommand(sections ...string) func(r *repl) bool {
	return func(r *repl) bool {
		if err := r.render.snapshot(r.sess.Snapshot(), sections...); err != nil {
			r.render.fail(err)
		}
		return false
	}
}

func findDotCommand(name string) (dotCommand, bool) {
	for _, dc := range dotCommands {
		if dc.name == name {
			return dc, true
		}
	}
	return dotCommand{}, false
}

// handle executes one line of input, or runs a dot command, returning true
// when the session should end.
func (r *repl) handle(line string) (quit bool) {
	if fields := strings.Fields(line); len(fields) == 1 {
		if dc, ok := findDotCommand(strings.ToLower(fields[0])); ok {
			return dc.run(r)
		}
	}
	if err := r.sess.ExecuteLine(line); err != nil {
		r.render.fail(err)
	} else {
		r.render.ok()
	}
	return false
}

func (r *repl) help() bool {
	fmt.Fprintln(r.out, "Commands:")
	for _, dc := range dotCommands {
		fmt.Fprintf(r.out, "  %-10v %v\n", dc.name, dc.help)
	}
	return false
}

func (r *repl) clear() bool {
	r.sess.ClearState()
	fmt.Fprintln(r.out, "cleared")
	return false
}

// names returns every word, variable and constant name, along with all dot
// command names, sorted.
func (r *repl) names() []string {
	var names []string
	for _, dc := range dotCommands {
		names = append(names, dc.name)
	}
	if r.sess != nil {
		snap := r.sess.Snapshot()
		names = append(names, snap.NativeWords...)
		for name := range snap.UserWords {
			names = append(names, name)
		}
		for _, v := range snap.Vars {
			names = append(names, v.Name)
		}
		for name := range snap.Consts {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// wordCompleter completes the partial word before the cursor.
type wordCompleter struct{ r *repl }

func (wc wordCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	start := pos
	for start > 0 && line[start-1] != ' ' && line[start-1] != '\t' {
		start--
	}
	partial := string(line[start:pos])
	if partial == "" {
		return nil, 0
	}
	last := ""
	for _, name := range wc.r.names() {
		if name != last && strings.HasPrefix(name, partial) {
			newLine = append(newLine, []rune(name[len(partial):]+" "))
		}
		last = name
	}
	return newLine, len([]rune(partial))
}
