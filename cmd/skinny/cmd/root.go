// Package cmd implements the skinny CLI commands.
//
// The root command dispatches to subcommands (aspect, skin, watch) and
// handles the global flags that select the log level.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/go-drift/skinny/pkg/errors"
)

// Set with -ldflags "-X" by release builds.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command is a subcommand of skinny. Run receives the arguments after the
// command name.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

const rootHelp = `skinny decodes and encodes aspect keys and checks skin files.

Use "skinny <command> --help" for more information about a command.`

// registered holds the commands in registration order.
var registered []*Command

// stdout receives command output. Tests replace it.
var stdout io.Writer = os.Stdout

// RegisterCommand makes cmd available to Execute.
func RegisterCommand(cmd *Command) {
	registered = append(registered, cmd)
}

func lookup(name string) *Command {
	i := slices.IndexFunc(registered, func(c *Command) bool { return c.Name == name })
	if i < 0 {
		return nil
	}
	return registered[i]
}

// options are the global flags given before the command name.
type options struct {
	help, version         bool
	debug, verbose, quiet bool
}

// splitGlobal consumes global flags up to the first other argument, which
// starts the command line proper.
func splitGlobal(args []string) (options, []string) {
	var o options
	for i, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			o.help = true
		case "--version", "version":
			o.version = true
		case "-vv", "--debug":
			o.debug = true
		case "-v", "--verbose":
			o.verbose = true
		case "-q", "--quiet":
			o.quiet = true
		default:
			return o, args[i:]
		}
	}
	return o, nil
}

// Execute runs the CLI with the given arguments, without the program name.
func Execute(args []string) error {
	opts, args := splitGlobal(args)
	switch {
	case opts.version:
		fmt.Fprintf(stdout, "skinny version %s (built %s)\n", Version, BuildTime)
		return nil
	case opts.help || len(args) == 0:
		printHelp()
		return nil
	}

	setupLogging(errors.LevelFromFlags(opts.debug, opts.verbose, opts.quiet))

	cmd := lookup(args[0])
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printHelp()
		return fmt.Errorf("unknown command: %s", args[0])
	}
	if slices.Contains(args[1:], "-h") || slices.Contains(args[1:], "--help") {
		printCommandHelp(cmd.Long, cmd.Usage)
		return nil
	}
	return cmd.Run(args[1:])
}

// setupLogging installs a text logger on stderr at level and routes
// reported errors to it.
func setupLogging(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: level <= slog.LevelDebug})
}

var globalFlags = [][2]string{
	{"-h, --help", "Show help for a command"},
	{"--version", "Show version information"},
	{"-v, --verbose", "Log at info level"},
	{"-vv, --debug", "Log at debug level"},
	{"-q, --quiet", "Log errors only"},
}

var examples = [][2]string{
	{"skinny aspect 0x12100", "Decode an aspect key"},
	{"skinny aspect 'Margin|Top|Metric'", "Encode an aspect key"},
	{"skinny skin dark.yaml", "Check and print a skin"},
	{"skinny watch dark.yaml", "Print a skin on every change"},
}

func printHelp() {
	printCommandHelp(rootHelp, "skinny [flags] <command> [args]")
	fmt.Fprintln(stdout, "\nCommands:")
	for _, c := range registered {
		fmt.Fprintf(stdout, "  %-14s %s\n", c.Name, c.Short)
	}
	fmt.Fprintln(stdout, "\nFlags:")
	for _, f := range globalFlags {
		fmt.Fprintf(stdout, "  %-20s %s\n", f[0], f[1])
	}
	fmt.Fprintln(stdout, "\nExamples:")
	for _, e := range examples {
		fmt.Fprintf(stdout, "  %-36s %s\n", e[0], e[1])
	}
}

func printCommandHelp(long, usage string) {
	fmt.Fprintf(stdout, "%s\n\nUsage:\n  %s\n", long, usage)
}
