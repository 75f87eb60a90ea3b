// Package cli implements the easyforth command line: running programs,
// an interactive REPL, and listing words.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jcorbin/easyforth/internal/config"
)

// Version is reported by --version.
var Version = "0.1.0"

// Execute runs the easyforth command line with the given arguments and
// streams, returning a process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stderr)
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	a.report(root.ExecuteContext(ctx))
	return a.log.ExitCode()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "easyforth [file...]",
		Short: "A small Forth interpreter",
		Long: `easyforth interprets a small Forth dialect: integers, strings, variables,
constants, arrays, user defined words, conditionals and counted loops.

With file arguments, each file is run in turn as one program. Without any,
an interactive REPL is started when standard input is a terminal; otherwise
standard input is run as a program.`,
		Args:    cobra.ArbitraryArgs,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && isTerminal(cmd.InOrStdin()) {
				return a.repl(cmd)
			}
			return a.run(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./easyforth.yaml)")
	flags.String("prompt", "", "REPL prompt")
	flags.String("history-file", "", "REPL history file")
	flags.Bool("trace", false, "enable trace logging")
	flags.Int("max-depth", 0, "limit word call depth; 0 for unlimited")
	flags.Int("mem-limit", 0, "limit the cells of any one array; 0 for unlimited")
	flags.StringP("output", "o", "", "output format (text|table|yaml)")
	flags.StringSlice("preload", nil, "source files to run before anything else")
	flags.Duration("timeout", 0, "time limit for running programs")

	_ = root.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputTable, config.OutputYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(
		newRunCmd(a),
		newREPLCmd(a),
		newWordsCmd(a),
	)
	return root
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
