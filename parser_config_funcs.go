package getoptions

// WithPosixOrder stops option scanning at the first positional argument,
// leaving it and everything after it in the remaining list. Equivalent to a
// leading '+' in the short-option specification; a '+' already present in
// the spec cannot be turned back off.
func WithPosixOrder(enabled bool) ConfigureParserFunc {
	return func(p *Parser) {
		if enabled {
			p.posixMode = true
		}
	}
}

// WithLongOnly makes single-prefix tokens resolve as long options first,
// falling back to short-option parsing when no long-option candidate exists.
func WithLongOnly(enabled bool) ConfigureParserFunc {
	return func(p *Parser) {
		p.longOnly = enabled
	}
}

// WithPrefixes replaces the characters accepted to introduce an option.
// The default set is '-', '/' and '+'.
func WithPrefixes(prefixes ...rune) ConfigureParserFunc {
	return func(p *Parser) {
		if len(prefixes) > 0 {
			p.prefixes = prefixes
		}
	}
}
