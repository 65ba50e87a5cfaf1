package parse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Split breaks a command string into tokens following cmd.exe conventions:
// whitespace separates tokens, double quotes group, and the caret escapes
// the character after it.
func Split(s string) ([]string, error) {
	var tokens []string
	var builder strings.Builder
	inQuotes := false
	escaped := false
	pending := false

	flush := func() {
		if pending {
			tokens = append(tokens, builder.String())
			builder.Reset()
			pending = false
		}
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}
		i += size

		if escaped {
			builder.WriteRune(r)
			pending = true
			escaped = false
			continue
		}

		switch {
		case r == '^' && !inQuotes:
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
			pending = true
		case unicode.IsSpace(r) && !inQuotes:
			flush()
		default:
			builder.WriteRune(r)
			pending = true
		}
	}

	if inQuotes {
		return nil, fmt.Errorf("unbalanced quotes in %q", s)
	}
	flush()

	if tokens == nil {
		tokens = []string{}
	}

	return tokens, nil
}
