// Command easyforth runs Forth programs, or an interactive REPL.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/jcorbin/easyforth/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
