//go:build linux || darwin

package parse

import "github.com/google/shlex"

// Split breaks a command string into tokens following POSIX shell word
// splitting and quoting rules.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
