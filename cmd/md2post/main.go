package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for an unrecognized command name.
var ErrUnknownCommand = errors.New("unknown command")

// commands lists the command names accepted as the first argument.
var commands = []string{"convert", "preview", "detect", "completion", "version", "help"}

func main() {
	verbose := slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose")
	logger := newLogger(os.Stderr, false, verbose)

	loadDotEnv(logger)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(printfLogger(logger)))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args (including the program name) and returns the exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, args[1:], env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: missing command", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	if cmd == "-h" || cmd == "--help" {
		cmd = "help"
	}
	if !isCommand(cmd) {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}

	switch cmd {
	case "convert":
		return runConvert(ctx, rest, env)
	case "preview":
		return runPreview(ctx, rest, env)
	case "detect":
		return runDetect(rest, env)
	case "completion":
		return runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-md2post %s\n", Version)
		return nil
	default:
		return runHelp(rest, env)
	}
}

// isCommand reports whether arg names a command.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}
