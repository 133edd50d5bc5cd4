package main

// Notes on program structure
// --------------------------
//
// head has no subcommands. The root function parses the command line into a
// set of options, then the run function (in run.go) resolves the input and
// copies its beginning to the standard output.
//
// Errors returned while executing the program are mapped to its exit code in
// a single place, at the end of root: usage errors exit with status 2, other
// errors with status 1.
//
// The usage message is declared by the rootUsage constant, it contains a
// "Usage:	head" section presenting the structure of the command. Note the
// tabulation separating "Usage:" and "head".

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/stealthrocket/head/internal/head"
	"github.com/stealthrocket/head/internal/print/human"
	"golang.org/x/exp/slices"
)

const rootUsage = `
Usage:	head [options] [file]

   Print the first 10 lines of a file to the standard output. With no file, or
   when file is -, read the standard input.

Example:

   $ head -n 5 /etc/passwd
   ...

   $ head -c 16 < /dev/urandom
   ...

Options:
   -c, --bytes count        Print the first count bytes (mutually exclusive with -n)
       --config path        Path to the configuration file (overrides HEADCONFIG)
       --decompress format  Decompress the input, one of: none, auto, gzip, zstd, snappy
   -h, --help               Show this usage information
   -n, --lines count        Print the first count lines (default to 10)
   -v, --verbose            Print a header with the input name before its content
       --version            Show the version information
   -z, --zero-terminated    Use NUL instead of newline as the line delimiter
`

// root is the head entrypoint.
func root(ctx context.Context, args ...string) int {
	switch err := execute(ctx, args); e := err.(type) {
	case nil:
		return 0
	case exitCode:
		return int(e)
	case usage:
		fmt.Fprintf(os.Stderr, "%s\n", e)
		return 2
	default:
		fmt.Fprintf(os.Stderr, "ERR: head: %s\n", err)
		return 1
	}
}

func execute(ctx context.Context, args []string) error {
	var (
		lines          count
		bytes          count
		decompress     compression
		zeroTerminated bool
		verbose        bool
		showVersion    bool

		// Secret options, we don't document them since they are only used for
		// development. Since they are not part of the public interface we may
		// remove or change the syntax at any time.
		debug      bool
		cpuProfile human.Path
		memProfile human.Path
	)

	if path := os.Getenv("HEADCONFIG"); path != "" {
		head.ConfigPath = human.Path(path)
	}

	flagSet := newFlagSet("head")
	customVar(flagSet, &lines, "n", "lines")
	customVar(flagSet, &bytes, "c", "bytes")
	customVar(flagSet, &decompress, "decompress")
	customVar(flagSet, &head.ConfigPath, "config")
	boolVar(flagSet, &zeroTerminated, "z", "zero-terminated")
	boolVar(flagSet, &verbose, "v", "verbose")
	boolVar(flagSet, &showVersion, "version")
	boolVar(flagSet, &debug, "debug")
	customVar(flagSet, &cpuProfile, "cpuprofile")
	customVar(flagSet, &memProfile, "memprofile")

	files, err := parseFlags(flagSet, args)
	if err != nil {
		return err
	}

	if showVersion {
		printVersion()
		return nil
	}
	if debug {
		log.SetOutput(os.Stderr)
	}

	if cpuProfile != "" {
		path, _ := cpuProfile.Resolve()
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARN: could not create CPU profile: %s\n", err)
		} else {
			defer f.Close()
			_ = pprof.StartCPUProfile(f)
			defer pprof.StopCPUProfile()
		}
	}

	if memProfile != "" {
		path, _ := memProfile.Resolve()
		defer func() {
			f, err := os.Create(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "WARN: could not create memory profile: %s\n", err)
				return
			}
			defer f.Close()
			runtime.GC()
			_ = pprof.WriteHeapProfile(f)
		}()
	}

	var file string
	switch len(files) {
	case 0:
	case 1:
		file = files[0]
	default:
		return usageError("extra operand %q, only one file can be read", files[1])
	}

	if lines.set && bytes.set {
		return usageError("options -n and -c are mutually exclusive")
	}

	config, err := head.LoadConfig()
	if err != nil {
		return err
	}
	log.Printf("configuration loaded from %s", head.ConfigPath)

	var stop head.Stop
	switch {
	case bytes.set:
		stop = head.ByteLimit(bytes.n)
	case lines.set:
		stop = head.LineLimit(lines.n)
	default:
		stop = head.LineLimit(config.Lines)
	}

	if decompress.set {
		config.Decompress = decompress.Compression
	}

	emitter := config.Emitter()
	emitter.ZeroTerminated = zeroTerminated

	return run(ctx, options{
		file:       file,
		stop:       stop,
		emitter:    emitter,
		decompress: config.Decompress,
		verbose:    verbose,
	})
}

// exitCode is an error type returned from execute to indicate the exit code
// that should be returned by the program.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit: %d", e)
}

// usage is an error type returned from execute to indicate a usage error.
//
// Usage errors cause the program to exit with status code 2.
type usage string

func usageError(msg string, args ...any) error {
	return usage("head: " + fmt.Sprintf(msg, args...))
}

func (e usage) Error() string {
	return string(e)
}

// count is a flag value holding a positive number of lines or bytes. Unlike a
// plain integer, it records whether it was set on the command line.
type count struct {
	n   uint64
	set bool
}

func (c count) String() string {
	return strconv.FormatUint(c.n, 10)
}

func (c *count) Set(value string) error {
	n, err := head.ParseCount(value)
	if err != nil {
		return err
	}
	c.n, c.set = n, true
	return nil
}

type compression struct {
	head.Compression
	set bool
}

func (c *compression) Set(value string) error {
	if err := c.Compression.Set(value); err != nil {
		return err
	}
	c.set = true
	return nil
}

func newFlagSet(cmd string) *flag.FlagSet {
	flagSet := flag.NewFlagSet(cmd, flag.ContinueOnError)
	// Errors and usage are printed by root.
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}
	return flagSet
}

// parseFlags is a greedy parser which consumes all options known to f and
// returns the remaining arguments, so options may follow the file operand.
func parseFlags(f *flag.FlagSet, args []string) ([]string, error) {
	var operands []string
	for {
		if err := f.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				fmt.Println(strings.TrimSpace(rootUsage))
				return nil, exitCode(0)
			}
			return nil, usageError("%s", err)
		}
		rest := f.Args()
		if len(rest) == 0 {
			return operands, nil
		}
		// Everything following a "--" terminator is an operand.
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			return append(operands, rest...), nil
		}
		i := slices.IndexFunc(rest, func(s string) bool {
			return strings.HasPrefix(s, "-") && s != "-"
		})
		if i < 0 {
			i = len(rest)
		}
		operands = append(operands, rest[:i]...)
		args = rest[i:]
	}
}

func boolVar(f *flag.FlagSet, dst *bool, name string, alias ...string) {
	f.BoolVar(dst, name, *dst, "")
	for _, name := range alias {
		f.BoolVar(dst, name, *dst, "")
	}
}

func customVar(f *flag.FlagSet, dst flag.Value, name string, alias ...string) {
	f.Var(dst, name, "")
	for _, name := range alias {
		f.Var(dst, name, "")
	}
}
