package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	forth "github.com/jcorbin/easyforth"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [file...]",
		Short: "Run source files as one program",
		Long: `Run each source file in turn, line by line, stopping at the first failure.
A file named "-", or no files at all, reads the program from standard input;
key and word then see no input, since standard input is the program itself.`,
		Example: `  easyforth run lib.fs main.fs
  echo '1 2 + .' | easyforth run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args)
		},
	}
}

func (a *app) run(cmd *cobra.Command, files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var opts []forth.Option
	if slices.Contains(files, "-") {
		opts = append(opts, forth.WithInput(strings.NewReader("")))
	}
	sess, err := a.newSession(cmd, opts...)
	if err != nil {
		return err
	}
	ctx, cancel := a.withTimeout(cmd.Context())
	defer cancel()
	return runFiles(ctx, sess, cmd.InOrStdin(), files...)
}
