package getoptions

// Token classification is structural rather than pattern based: caller-supplied
// option names never end up inside pattern syntax, they are only ever compared
// against declared names.

// isPrefix reports whether r introduces an option under the configured
// prefix set.
func (p *Parser) isPrefix(r rune) bool {
	for _, prefix := range p.prefixes {
		if r == prefix {
			return true
		}
	}

	return false
}

// isLongToken reports whether s uses the doubled-prefix long form: --Name,
// --Name=Value or //Name. The plus sign has no doubled form.
func (p *Parser) isLongToken(s string) bool {
	runes := []rune(s)
	if len(runes) < 3 {
		return false
	}

	return runes[0] == runes[1] && runes[0] != '+' && p.isPrefix(runes[0])
}

// isShortToken reports whether s uses the single-prefix form: one prefix
// character followed by at least one non-prefix character. A lone prefix
// (the conventional stdin placeholder "-") is not an option token.
func (p *Parser) isShortToken(s string) bool {
	runes := []rune(s)
	if len(runes) < 2 {
		return false
	}

	return p.isPrefix(runes[0]) && !p.isPrefix(runes[1])
}

// looksLikeOption reports whether a token is syntactically option shaped, the
// test used to decide if the next token may be consumed as an argument.
// Non-string tokens never look like options; neither does a lone "-", which
// getopt convention allows as a value. The bare terminator does, so it can
// never be swallowed as an argument.
func (p *Parser) looksLikeOption(token interface{}) bool {
	s, ok := token.(string)
	if !ok {
		return false
	}

	runes := []rune(s)

	return len(runes) >= 2 && p.isPrefix(runes[0])
}

// splitValue separates an option body into its name and an inline value.
// The value is whatever follows the first '=' or ':' after the name; without
// a separator the value is unset. An empty value after a separator still
// counts as captured.
func splitValue(body string) (name string, value string, hasValue bool) {
	for i, r := range body {
		if r == '=' || r == ':' {
			return body[:i], body[i+1:], true
		}
	}

	return body, "", false
}
