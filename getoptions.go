// Package getoptions resolves command-line style tokens into an ordered set
// of recognized options plus the leftover positional values, following POSIX
// getopt conventions extended with GNU long options.
//
// It supports:
//
//	Short options   - single characters declared in a getopt-style spec string ("f:vxz"),
//	                  clustered ("-xzvf"), with inline or separate arguments and repeat
//	                  counting of consecutive flags ("-vvv")
//	Long options    - named flags declared in a list ("File=", "Force"), with "=" or ":"
//	                  separated inline values and unambiguous abbreviation ("--Fo")
//	Prefixes        - '-', '/' and '+' all introduce options; "--Name" and "//Name" are
//	                  the long forms
//	Modes           - POSIX stop-at-first-positional (leading '+' in the spec or
//	                  WithPosixOrder), long-only with short fallback (WithLongOnly) and
//	                  the GNU "-W longname" passthrough ("W;" in the spec)
//
// Resolution is a stateless single pass. Non-string tokens are never
// interpreted as options and pass through to the remaining list unchanged.
// Errors are data: Parse always returns the options and remaining tokens
// accumulated before the failure.
package getoptions

import (
	"github.com/s33d1ing/GetOptions/parse"
)

// Parser resolves token lists against a fixed pair of option specifications.
// It is immutable after construction and safe for concurrent use; every call
// to Parse allocates fresh output containers.
type Parser struct {
	shortTable map[rune]Arity
	longNames  []string
	longTable  map[string]Arity
	prefixes   []rune
	posixMode  bool
	wEscape    bool
	longOnly   bool
}

// NewParser builds a Parser from a short-option specification string and a
// long-option declaration list, either of which may be empty. See the
// package documentation for the spec syntax.
//
// Configuration example:
//
//	parser := NewParser("f:vxz", []string{"File=", "Force"},
//		WithPosixOrder(os.Getenv("POSIXLY_CORRECT") != ""))
func NewParser(shortSpec string, longSpec []string, configs ...ConfigureParserFunc) *Parser {
	shortTable, posixMode, wEscape := parseShortSpec(shortSpec)
	longNames, longTable := parseLongSpec(longSpec)

	p := &Parser{
		shortTable: shortTable,
		longNames:  longNames,
		longTable:  longTable,
		prefixes:   defaultPrefixes,
		posixMode:  posixMode,
		wEscape:    wEscape,
	}
	for _, config := range configs {
		config(p)
	}

	return p
}

// Parse resolves a token list. Tokens are untyped: strings are candidates
// for option interpretation while any other value passes through to the
// remaining list as-is, preserving its structure. A nil token contributes
// nothing. On failure the returned Options and remaining list hold whatever
// was accumulated before the error.
func (p *Parser) Parse(tokens []interface{}) (*Options, []interface{}, error) {
	return p.resolve(parse.NewState(tokens))
}

// ParseArgs resolves a plain argument list, such as os.Args[1:].
func (p *Parser) ParseArgs(args []string) (*Options, []interface{}, error) {
	tokens := make([]interface{}, len(args))
	for i, arg := range args {
		tokens[i] = arg
	}

	return p.Parse(tokens)
}

// ParseString splits a command string with parse.Split and resolves the
// resulting tokens.
func (p *Parser) ParseString(line string) (*Options, []interface{}, error) {
	args, err := parse.Split(line)
	if err != nil {
		return newOptions(), []interface{}{}, err
	}

	return p.ParseArgs(args)
}

// Getopt resolves tokens against a short-option specification alone.
func Getopt(tokens []interface{}, shortSpec string) (*Options, []interface{}, error) {
	return NewParser(shortSpec, nil).Parse(tokens)
}

// GetoptLong resolves tokens against short and long option specifications.
func GetoptLong(tokens []interface{}, shortSpec string, longSpec []string) (*Options, []interface{}, error) {
	return NewParser(shortSpec, longSpec).Parse(tokens)
}

// GetoptLongOnly is GetoptLong in long-only mode: single-prefix tokens
// resolve as long options first and fall back to short-option parsing when
// no long-option candidate exists.
func GetoptLongOnly(tokens []interface{}, shortSpec string, longSpec []string) (*Options, []interface{}, error) {
	return NewParser(shortSpec, longSpec, WithLongOnly(true)).Parse(tokens)
}

func (p *Parser) hasShort() bool {
	return len(p.shortTable) > 0
}

func (p *Parser) hasLong() bool {
	return len(p.longNames) > 0
}
