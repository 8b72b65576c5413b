// Command tspsolve generates random point sets and solves them.
//
//	tspsolve generate -n 12 [-o points12.json] [-seed 7]
//	tspsolve solve -in points12.json [-mode local|optimal] [-budget 60s] [-strategy dfs|pq] [-out file]
//
// Settings come from defaults, tspsolve.yaml (or $TSPSOLVE_CONFIG), TSPSOLVE_*
// variables (also read from ./.env) and finally the flags given explicitly.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const usage = `usage: tspsolve <command> [flags]

commands:
  generate   write a random point set
  solve      compute a tour for a point set

run "tspsolve <command> -h" for the flags of a command.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run dispatches a command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "generate":
		err = runGenerate(args[1:], stdout, stderr)
	case "solve":
		err = runSolve(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintln(stderr, "tspsolve:", err)
		return 1
	}
}

// errUsage marks bad command-line input; the flag set has already printed why.
var errUsage = errors.New("usage")

// overrides collects the flags set explicitly on fs, keyed by config path.
// Flags left at their defaults do not shadow file or environment values.
func overrides(fs *flag.FlagSet, keys map[string]string) map[string]any {
	out := make(map[string]any)
	fs.Visit(func(f *flag.Flag) {
		if key, ok := keys[f.Name]; ok {
			out[key] = f.Value.(flag.Getter).Get()
		}
	})

	return out
}

// parse runs fs.Parse, mapping parse failures to errUsage.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}

	return errUsage
}
