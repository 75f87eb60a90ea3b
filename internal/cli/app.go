package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	forth "github.com/jcorbin/easyforth"
	"github.com/jcorbin/easyforth/internal/config"
	"github.com/jcorbin/easyforth/internal/fileinput"
	"github.com/jcorbin/easyforth/internal/logio"
	"github.com/jcorbin/easyforth/internal/panicerr"
)

// app carries state shared by all commands of one invocation.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     logio.Logger
}

func newApp(stderr io.Writer) *app {
	a := &app{cfg: &config.Config{
		Prompt:   config.DefaultPrompt,
		MaxDepth: config.DefaultMaxDepth,
		MemLimit: config.DefaultMemLimit,
		Output:   config.DefaultOutput,
	}}
	a.log.SetOutput(stderr)
	a.log.Style = newRenderer(stderr, "").styleLevel
	return a
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	if cfg.Trace && cfg.File != "" {
		a.log.Printf("TRACE", "using config file %v", cfg.File)
	}
	return nil
}

// report logs any command error; recovered panics also log their stack
// when tracing.
func (a *app) report(err error) {
	a.log.ErrorIf(err)
	if a.cfg.Trace {
		if stack := panicerr.PanicStack(err); stack != "" {
			a.log.Printf("TRACE", "%s", stack)
		}
	}
}

func (a *app) renderer(cmd *cobra.Command) *renderer {
	return newRenderer(cmd.OutOrStdout(), a.cfg.Output)
}

// newSession creates a session wired to the command's input and output
// streams, then runs any preload files into it.
func (a *app) newSession(cmd *cobra.Command, extra ...forth.Option) (*forth.Session, error) {
	opts := []forth.Option{
		forth.WithInput(cmd.InOrStdin()),
		forth.WithOutput(cmd.OutOrStdout()),
		forth.WithMaxDepth(a.cfg.MaxDepth),
		forth.WithMemLimit(a.cfg.MemLimit),
	}
	if a.cfg.Trace {
		opts = append(opts, forth.WithLogf(a.log.Leveledf("TRACE")))
	}
	opts = append(opts, extra...)
	sess := forth.NewSession(opts...)
	if len(a.cfg.Preload) > 0 {
		ctx, cancel := a.withTimeout(cmd.Context())
		defer cancel()
		if err := runFiles(ctx, sess, cmd.InOrStdin(), a.cfg.Preload...); err != nil {
			return nil, fmt.Errorf("preload failed: %w", err)
		}
	}
	return sess, nil
}

func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, a.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

// runFiles runs each named file, in order, as one program; the name "-"
// reads from stdin.
func runFiles(ctx context.Context, sess *forth.Session, stdin io.Reader, names ...string) error {
	inputs := make([]io.Reader, 0, len(names))
	for _, name := range names {
		if name == "-" {
			inputs = append(inputs, fileinput.NamedReader("<stdin>", struct{ io.Reader }{stdin}))
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			for _, in := range inputs {
				if cl, ok := in.(io.Closer); ok {
					cl.Close()
				}
			}
			return err
		}
		inputs = append(inputs, f)
	}
	return sess.Run(ctx, inputs...)
}
