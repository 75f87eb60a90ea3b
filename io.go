package forth

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/easyforth/internal/flushio"
	"github.com/jcorbin/easyforth/internal/runeio"
)

// ioCore holds the injected character input and text output capabilities.
type ioCore struct {
	in  runeio.Reader
	out flushio.WriteFlusher
}

func (ioc *ioCore) writeRune(r rune) error {
	_, err := runeio.WriteANSIRune(ioc.out, r)
	return err
}

func (ioc *ioCore) writeString(s string) error {
	_, err := runeio.WriteANSIString(ioc.out, s)
	return err
}

// readRune flushes any pending output, so that prompts are seen, before
// reading one rune of input.
func (ioc *ioCore) readRune() (rune, error) {
	if err := ioc.out.Flush(); err != nil {
		return 0, err
	}
	r, _, err := ioc.in.ReadRune()
	if err == io.EOF {
		return 0, fmt.Errorf("input exhausted: %w", err)
	}
	return r, err
}

func (ioc *ioCore) flush() error {
	if ioc.out == nil {
		return nil
	}
	return ioc.out.Flush()
}

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	if logfn == nil {
		return func() {}
	}
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(" ", n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
