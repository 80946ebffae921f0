package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, env))
}

// runMain runs the CLI and returns the process exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, args[1:], env); err != nil {
		fmt.Fprintln(env.Stderr, withHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run dispatches to a command. Anything that is not a command name is
// handed to convert, so "md2epub book.md" works.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ErrNoInput
	}

	switch args[0] {
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2epub %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(args[1:], env)
	case "completion":
		return runCompletion(args[1:], env)
	case "convert":
		return runConvertCmd(ctx, args[1:], env)
	default:
		return runConvertCmd(ctx, args, env)
	}
}

// hasVerboseFlag reports whether -v or --verbose appears before "--".
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}
