package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/keylab/keycode/keyconv"
)

const banner = "keyconv - activation key transcoder"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("keyconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	key := fs.String("key", "", "convert a single key and exit")
	interactive := fs.Bool("i", false, "force the interactive prompt")
	verbose := fs.Bool("v", false, "log classification and conversion details")
	fs.Usage = func() {
		fmt.Fprintln(stderr, banner)
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "usage: keyconv [-key KEY] [-i] [-v]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Without -key, keys are read one per line from standard input;")
		fmt.Fprintln(stderr, "if standard input is a terminal, an interactive prompt opens instead.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return 2
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(stderr, "logger: %v\n", err)
			return 1
		}
		defer logger.Sync()
		keyconv.SetLogger(logger)
	}

	if *key != "" {
		return convertOne(strings.TrimSpace(*key), stdout, stderr)
	}

	if *interactive || stdinIsTerminal(stdin) {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	return convertStream(stdin, stdout, stderr)
}

func stdinIsTerminal(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func convertOne(token string, stdout, stderr io.Writer) int {
	res, err := keyconv.Convert(token)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	for _, f := range res.Fields {
		fmt.Fprintf(stdout, "%s: %s\n", f.Label, f.Value)
	}
	return 0
}

// convertStream treats every non-blank line as one key. A bad line does not
// stop the stream: each failure is reported against its line number and the
// exit status says whether any line failed.
func convertStream(stdin io.Reader, stdout, stderr io.Writer) int {
	var errs error
	lines := 0

	scanner := bufio.NewScanner(stdin)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}
		lines++

		res, err := keyconv.Convert(token)
		if err != nil {
			fmt.Fprintf(stderr, "line %d: %v\n", lineNo, err)
			errs = multierr.Append(errs, err)
			continue
		}

		parts := make([]string, len(res.Fields))
		for i, f := range res.Fields {
			parts[i] = f.Label + " " + f.Value
		}
		fmt.Fprintf(stdout, "%s => %s\n", token, strings.Join(parts, ", "))
	}
	failed := len(multierr.Errors(errs))

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "reading input: %v\n", err)
		errs = multierr.Append(errs, err)
	}

	if failed > 0 {
		fmt.Fprintf(stderr, "%d of %d keys failed\n", failed, lines)
	}
	if errs != nil {
		return 1
	}
	return 0
}
