package getoptions

import "strings"

// parseShortSpec interprets a getopt-style option string into an arity table.
// Each character names an option; a trailing ':' marks a required argument
// and '::' an optional one. A leading '+' is the POSIX stop-at-first-positional
// marker and the pseudo-entry "W;" enables the GNU "-W longname" passthrough;
// neither declares an option. Malformed specs are a caller contract violation
// and never produce a runtime error.
func parseShortSpec(spec string) (table map[rune]Arity, posixMode bool, wEscape bool) {
	table = make(map[rune]Arity)

	runes := []rune(spec)
	start := 0
	if len(runes) > 0 && runes[0] == '+' {
		posixMode = true
		start = 1
	}

	for i := start; i < len(runes); i++ {
		c := runes[i]
		if c == 'W' && i+1 < len(runes) && runes[i+1] == ';' {
			wEscape = true
			i++
			continue
		}

		arity := NoArgument
		if i+1 < len(runes) && runes[i+1] == ':' {
			arity = RequiredArgument
			i++
			if i+1 < len(runes) && runes[i+1] == ':' {
				arity = OptionalArgument
				i++
			}
		}
		table[c] = arity
	}

	return table, posixMode, wEscape
}

// parseLongSpec interprets a list of long-option declarations into an arity
// table plus the declaration order. A trailing '=' marks a required argument
// and '==' an optional one. Names match case-sensitively; a repeated name
// keeps its first position and its last arity.
func parseLongSpec(entries []string) (names []string, table map[string]Arity) {
	names = make([]string, 0, len(entries))
	table = make(map[string]Arity, len(entries))

	for _, entry := range entries {
		arity := NoArgument
		name := entry
		if strings.HasSuffix(name, "==") {
			arity = OptionalArgument
			name = strings.TrimSuffix(name, "==")
		} else if strings.HasSuffix(name, "=") {
			arity = RequiredArgument
			name = strings.TrimSuffix(name, "=")
		}
		if name == "" {
			continue
		}

		if _, seen := table[name]; !seen {
			names = append(names, name)
		}
		table[name] = arity
	}

	return names, table
}
