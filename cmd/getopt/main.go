// Command getopt resolves a command line against short and long option
// specifications, in the spirit of getopt(1), and prints the result as
// name=value lines followed by "--" and the positional operands.
//
//	getopt -o f:vxz -l File=,Force -- -xzvf Archive.zip --Force Extra
//
// When no operands are given and stdin is not a terminal, the command line
// to resolve is read from stdin instead. The tool parses its own flags with
// the same resolver it demonstrates.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	getoptions "github.com/s33d1ing/GetOptions"
	"github.com/s33d1ing/GetOptions/parse"
	"golang.org/x/term"
)

const usage = `usage: getopt [-o spec] [-l name[,name...]] [-a] [-p] [-q] [-n label] [--] tokens...

  -o, --Options   short-option specification string (getopt syntax, e.g. "f:vxz")
  -l, --Long      comma-separated long-option declarations (e.g. "File=,Force")
  -a, --Alternative  allow long options to start with a single prefix
  -p, --Posix     stop option scanning at the first positional argument
  -q, --Quiet     suppress normal output, report via exit status only
  -n, --Name      label to prefix error messages with (default "getopt")

With no tokens and stdin not attached to a terminal, one line is read from
stdin and split with shell rules.`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	self := getoptions.NewParser("o:l:n:apqh", []string{
		"Options=", "Long=", "Name=", "Alternative", "Posix", "Quiet", "Help",
	})

	flags, operands, err := self.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "getopt: %v\n", err)
		fmt.Fprintln(stderr, usage)
		return 2
	}
	if flags.Bool("Help") || flags.Bool("h") {
		fmt.Fprintln(stdout, usage)
		return 0
	}

	label := "getopt"
	if name, given := value(flags, "Name", "n"); given {
		label = name
	}
	quiet := flags.Bool("Quiet") || flags.Bool("q")

	var longSpec []string
	if long, given := value(flags, "Long", "l"); given {
		longSpec = strings.Split(long, ",")
	}

	shortSpec, _ := value(flags, "Options", "o")
	parser := getoptions.NewParser(shortSpec, longSpec,
		getoptions.WithLongOnly(flags.Bool("Alternative") || flags.Bool("a")),
		getoptions.WithPosixOrder(flags.Bool("Posix") || flags.Bool("p") ||
			os.Getenv("POSIXLY_CORRECT") != ""))

	if len(operands) == 0 && !term.IsTerminal(int(os.Stdin.Fd())) {
		line, readErr := readLine(os.Stdin)
		if readErr != nil {
			fmt.Fprintf(stderr, "%s: %v\n", label, readErr)
			return 2
		}
		tokens, splitErr := parse.Split(line)
		if splitErr != nil {
			fmt.Fprintf(stderr, "%s: %v\n", label, splitErr)
			return 2
		}
		for _, token := range tokens {
			operands = append(operands, token)
		}
	}

	resolved, remaining, err := parser.Parse(operands)
	if err != nil {
		if !quiet {
			fmt.Fprintf(stderr, "%s: %v\n", label, err)
		}
		return 1
	}

	if !quiet {
		resolved.Each(func(name string, val interface{}) {
			fmt.Fprintf(stdout, "%s=%v\n", name, val)
		})
		fmt.Fprintln(stdout, "--")
		for _, token := range remaining {
			fmt.Fprintf(stdout, "%v\n", token)
		}
	}

	return 0
}

// value returns the first string captured under any of the given names,
// distinguishing a flag given an empty value from an absent flag.
func value(options *getoptions.Options, names ...string) (string, bool) {
	for _, name := range names {
		if captured, given := options.Value(name); given {
			if s, isString := captured.(string); isString {
				return s, true
			}
		}
	}

	return "", false
}

func readLine(f *os.File) (string, error) {
	reader := bufio.NewReader(f)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
