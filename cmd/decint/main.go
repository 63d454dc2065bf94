// Command decint evaluates integer operations given as text and prints the
// results as display text.
//
// Usage:
//
//	decint [flags] op operand...
//	decint [flags] -f batch.yaml
//
// For example:
//
//	$ decint pow 2 100
//	1,267,650,600,228,229,401,496,703,205,376
//	$ decint quo -10 9
//	-2d
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/govalues/decint"
	"github.com/pkg/errors"
)

var version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("decint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	verbosity := fs.Int("verbosity", 3, "Log level 0-5 (0=silent, 4-5=operation traces)")
	logFormat := fs.String("log.format", "text", "Log format: text, json")
	batch := fs.String("f", "", "Evaluate the operations listed in a YAML batch file")
	showVersion := fs.Bool("version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  decint [flags] op operand...\n  decint [flags] -f batch.yaml\n\n")
		fmt.Fprintf(stderr, "Operations: %v\n\nFlags:\n", strings.Join(decint.Operations(), ", "))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "decint %s\n", version)
		return 0
	}

	log, err := newLogger(stderr, *verbosity, *logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	calc := decint.NewCalculator(decint.WithLogger(module(log, "calculator")))

	switch {
	case *batch != "" && fs.NArg() > 0:
		fmt.Fprintf(stderr, "Error: -f does not take operations on the command line\n")
		return 2
	case *batch != "":
		return runBatch(calc, module(log, "batch"), *batch, stdout, stderr)
	case fs.NArg() == 0:
		fs.Usage()
		return 2
	}

	res, err := calc.Eval(fs.Arg(0), fs.Args()[1:]...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, res)
	return 0
}
