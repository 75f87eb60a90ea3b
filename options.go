package forth

import (
	"io"
	"strings"

	"github.com/jcorbin/easyforth/internal/flushio"
	"github.com/jcorbin/easyforth/internal/runeio"
)

// Defaults applied by New before any given options.
const (
	DefaultMaxDepth = 1024
	DefaultMemLimit = 1 << 20
)

// Option configures an Interpreter.
type Option interface{ apply(in *Interpreter) }

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

var defaults = options{
	WithInput(strings.NewReader("")),
	WithOutput(io.Discard),
	WithMaxDepth(DefaultMaxDepth),
	WithMemLimit(DefaultMemLimit),
}

type options []Option

func (opts options) apply(in *Interpreter) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

// WithInput sets the reader that key and word read characters from.
func WithInput(r io.Reader) Option { return inputOption{r} }

// WithOutput sets the writer that words like . and emit write to.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee copies all output to an additional writer.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf enables trace logging of defined names, word calls and errors.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithMaxDepth limits how deeply user words may call each other; zero means
// unlimited, which lets runaway recursion exhaust the Go stack.
func WithMaxDepth(depth int) Option { return maxDepthOption(depth) }

// WithMemLimit limits the number of cells that allot may reserve for any one
// array; zero means unlimited.
func WithMemLimit(cells int) Option { return memLimitOption(cells) }

// WithNativeWord defines an additional native word, replacing any standard
// word of the same name.
func WithNativeWord(name string, fn NativeWord) Option { return nativeOption{name, fn} }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type withLogfn func(mess string, args ...interface{})
type maxDepthOption int
type memLimitOption int
type nativeOption namedWord

func (i inputOption) apply(in *Interpreter) {
	in.in = runeio.NewReader(i.Reader)
}

func (o outputOption) apply(in *Interpreter) {
	if in.out != nil {
		in.out.Flush()
	}
	in.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(in *Interpreter) {
	in.out = flushio.Tee(in.out, flushio.NewWriteFlusher(o.Writer))
}

func (logfn withLogfn) apply(in *Interpreter) {
	in.logfn = logfn
}

func (depth maxDepthOption) apply(in *Interpreter) {
	in.maxDepth = int(depth)
}

func (lim memLimitOption) apply(in *Interpreter) {
	in.memLimit = int(lim)
}

func (nw nativeOption) apply(in *Interpreter) {
	in.defineNatives(namedWord(nw))
}
