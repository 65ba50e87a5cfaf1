package getoptions

import (
	"strings"

	"github.com/s33d1ing/GetOptions/parse"
)

// The resolution pass walks the token list once, left to right. Each token is
// normalized (long-only rewrite, -W passthrough), classified (terminator,
// long candidate, short cluster, positional) and routed to the matching
// resolution algorithm. The first error halts the pass; whatever was
// accumulated up to that point is returned alongside it.

func (p *Parser) resolve(st parse.State) (*Options, []interface{}, error) {
	options := newOptions()
	remaining := make([]interface{}, 0, st.Len())

scan:
	for st.Advance() {
		token := st.Current()
		if token == nil {
			continue
		}

		text, isText := token.(string)
		if !isText {
			// Opaque tokens are never interpreted as options.
			remaining = append(remaining, token)
			if p.posixMode {
				remaining = append(remaining, st.Drain()...)
				break scan
			}
			continue
		}

		if text == terminator {
			remaining = append(remaining, st.Drain()...)
			break scan
		}

		var err error
		switch {
		case p.hasLong() && p.isLongToken(text):
			name, value, hasValue := splitValue(string([]rune(text)[2:]))
			err = p.resolveLong(name, value, hasValue, st, options)
		case p.longOnly && (p.hasLong() || p.hasShort()) && p.isShortToken(text):
			err = p.resolveLongOnly(text, st, options)
		case p.wEscape && p.hasLong() && p.isShortToken(text) && []rune(text)[1] == 'W':
			err = p.resolveEscapedLong(text, st, options)
		case p.hasShort() && p.isShortToken(text):
			err = p.resolveShort(text, st, options)
		default:
			remaining = append(remaining, token)
			if p.posixMode {
				// The first positional freezes the rest of the line.
				remaining = append(remaining, st.Drain()...)
				break scan
			}
		}
		if err != nil {
			return options, remaining, err
		}
	}

	return options, remaining, nil
}

// matchLong returns the declared names matching a candidate: the exact name
// when declared, otherwise every declared name the candidate abbreviates.
// Matching is case-sensitive. An empty candidate matches nothing; it would
// otherwise abbreviate every declared name.
func (p *Parser) matchLong(name string) []string {
	if name == "" {
		return nil
	}
	if _, exact := p.longTable[name]; exact {
		return []string{name}
	}

	var matches []string
	for _, candidate := range p.longNames {
		if strings.HasPrefix(candidate, name) {
			matches = append(matches, candidate)
		}
	}

	return matches
}

// resolveLong resolves a long-option candidate: abbreviation expansion,
// duplicate check, then arity dispatch. An inline value always wins; without
// one, a value-taking option may consume the next token unless it is missing
// or looks like another option.
func (p *Parser) resolveLong(name, value string, hasValue bool, st parse.State, options *Options) error {
	matches := p.matchLong(name)
	switch {
	case len(matches) == 0:
		return notRecognized(name)
	case len(matches) > 1:
		return ambiguousPrefix(name)
	}
	full := matches[0]

	if options.Called(full) {
		return alreadySpecified(full)
	}

	switch p.longTable[full] {
	case RequiredArgument:
		if hasValue {
			options.set(full, value)
			break
		}
		next, ok := st.Peek()
		if !ok || p.looksLikeOption(next) {
			return requiresArgument(full)
		}
		captured, _ := st.Take()
		options.set(full, captured)
	case OptionalArgument:
		if hasValue {
			options.set(full, value)
			break
		}
		next, ok := st.Peek()
		if !ok || p.looksLikeOption(next) {
			options.set(full, true)
			break
		}
		captured, _ := st.Take()
		options.set(full, captured)
	default: // NoArgument; an inline value on a plain flag is discarded
		options.set(full, true)
	}

	return nil
}

// resolveLongOnly handles a single-prefix token in long-only mode: the token
// is treated as a long-option candidate first and falls back to short-option
// parsing when no declared long name matches and the lead character is a
// declared short option.
func (p *Parser) resolveLongOnly(text string, st parse.State, options *Options) error {
	body := string([]rune(text)[1:])
	name, value, hasValue := splitValue(body)

	if len(p.matchLong(name)) == 0 {
		if lead := []rune(name); len(lead) > 0 {
			if _, declared := p.shortTable[lead[0]]; declared {
				return p.resolveShort(text, st, options)
			}
		}
		return notRecognized(name)
	}

	return p.resolveLong(name, value, hasValue, st, options)
}

// resolveEscapedLong handles the GNU -W passthrough: "-Wname" resolves the
// long option "name"; a bare "-W" consumes the next token as the name when
// one exists and does not itself look like an option. With no usable name the
// token falls through to ordinary short-cluster resolution.
func (p *Parser) resolveEscapedLong(text string, st parse.State, options *Options) error {
	body := string([]rune(text)[2:])
	if body == "" {
		next, ok := st.Peek()
		if !ok {
			return p.resolveShort(text, st, options)
		}
		name, isText := next.(string)
		if !isText || p.looksLikeOption(next) {
			return p.resolveShort(text, st, options)
		}
		st.Take()
		body = name
	}

	name, value, hasValue := splitValue(body)

	return p.resolveLong(name, value, hasValue, st, options)
}

// resolveShort scans a single-prefix cluster character by character. A
// value-taking option at the head of the cluster captures the rest of the
// token inline; anywhere else it may consume the next token, which always
// ends the scan of this token. A plain flag repeated consecutively within
// the cluster records its repeat count instead of true.
func (p *Parser) resolveShort(text string, st parse.State, options *Options) error {
	runes := []rune(text)

	for j := 1; j < len(runes); j++ {
		c := runes[j]
		name := string(c)

		arity, declared := p.shortTable[c]
		if !declared {
			return notRecognized(name)
		}
		if options.Called(name) {
			return alreadySpecified(name)
		}

		switch arity {
		case RequiredArgument, OptionalArgument:
			if j == 1 && j+1 < len(runes) {
				options.set(name, string(runes[j+1:]))
				return nil
			}
			next, ok := st.Peek()
			if !ok || p.looksLikeOption(next) {
				if arity == OptionalArgument {
					options.set(name, true)
					continue
				}
				return requiresArgument(name)
			}
			captured, _ := st.Take()
			options.set(name, captured)
			return nil
		default: // NoArgument
			count := 1
			for j+1 < len(runes) && runes[j+1] == c {
				count++
				j++
			}
			if count > 1 {
				options.set(name, count)
			} else {
				options.set(name, true)
			}
		}
	}

	return nil
}
