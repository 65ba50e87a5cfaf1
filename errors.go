package getoptions

import (
	"errors"
	"fmt"
)

// Resolution failures are data, not panics: Parse always returns whatever it
// accumulated alongside an error wrapping one of these sentinels, so callers
// can branch with errors.Is while the message carries the offending name.
var (
	// ErrRequiresArgument - an option with a required argument reached the end
	// of the input or was followed by something which looks like another option.
	ErrRequiresArgument = errors.New("requires an argument")

	// ErrAlreadySpecified - the same option name resolved twice.
	ErrAlreadySpecified = errors.New("already specified")

	// ErrNotRecognized - a token or cluster character matches no declared option.
	ErrNotRecognized = errors.New("not recognized")

	// ErrAmbiguousPrefix - a long-option abbreviation matches more than one
	// declared name.
	ErrAmbiguousPrefix = errors.New("is ambiguous")
)

func requiresArgument(name string) error {
	return fmt.Errorf("option '%s' %w", name, ErrRequiresArgument)
}

func alreadySpecified(name string) error {
	return fmt.Errorf("option '%s' %w", name, ErrAlreadySpecified)
}

func notRecognized(name string) error {
	return fmt.Errorf("option '%s' %w", name, ErrNotRecognized)
}

func ambiguousPrefix(name string) error {
	return fmt.Errorf("option '%s' %w", name, ErrAmbiguousPrefix)
}
