package getoptions

// Arity describes how an option takes its argument.
type Arity int

const (
	// NoArgument denotes an option which takes no argument (a plain flag)
	NoArgument Arity = iota
	// RequiredArgument denotes an option which must be given an argument
	RequiredArgument
	// OptionalArgument denotes an option which may be given an argument
	OptionalArgument
)

// String returns the string representation of an Arity
func (a Arity) String() string {
	switch a {
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	case NoArgument:
		fallthrough
	default:
		return "none"
	}
}

// ConfigureParserFunc adjusts a Parser during construction - see NewParser
type ConfigureParserFunc func(p *Parser)

// terminator unconditionally ends option scanning; everything after it is
// passed through verbatim.
const terminator = "--"

// defaultPrefixes are the characters accepted to introduce an option: the
// POSIX dash, the Windows slash and the plus sign.
var defaultPrefixes = []rune{'-', '/', '+'}
