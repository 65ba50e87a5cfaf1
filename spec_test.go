package getoptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShortSpec(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		want      map[rune]Arity
		posixMode bool
		wEscape   bool
	}{
		{
			name: "plain flags and a required argument",
			spec: "f:vxz",
			want: map[rune]Arity{'f': RequiredArgument, 'v': NoArgument, 'x': NoArgument, 'z': NoArgument},
		},
		{
			name:      "leading plus enables posix mode",
			spec:      "+f:b:",
			want:      map[rune]Arity{'f': RequiredArgument, 'b': RequiredArgument},
			posixMode: true,
		},
		{
			name: "double colon marks an optional argument",
			spec: "ab::c:",
			want: map[rune]Arity{'a': NoArgument, 'b': OptionalArgument, 'c': RequiredArgument},
		},
		{
			name:    "W semicolon is a marker not an option",
			spec:    "W;x",
			want:    map[rune]Arity{'x': NoArgument},
			wEscape: true,
		},
		{
			name: "W without semicolon is an ordinary option",
			spec: "Wx",
			want: map[rune]Arity{'W': NoArgument, 'x': NoArgument},
		},
		{
			name: "empty spec",
			spec: "",
			want: map[rune]Arity{},
		},
		{
			name:      "lone plus",
			spec:      "+",
			want:      map[rune]Arity{},
			posixMode: true,
		},
		{
			name:      "plus after the first position is an option",
			spec:      "+x+",
			want:      map[rune]Arity{'x': NoArgument, '+': NoArgument},
			posixMode: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, posixMode, wEscape := parseShortSpec(tc.spec)
			assert.Equal(t, tc.want, table)
			assert.Equal(t, tc.posixMode, posixMode)
			assert.Equal(t, tc.wEscape, wEscape)
		})
	}
}

func TestParseLongSpec(t *testing.T) {
	names, table := parseLongSpec([]string{"File=", "Force", "Verbose=="})

	assert.Equal(t, []string{"File", "Force", "Verbose"}, names,
		"declaration order should be preserved")
	assert.Equal(t, map[string]Arity{
		"File":    RequiredArgument,
		"Force":   NoArgument,
		"Verbose": OptionalArgument,
	}, table)
}

func TestParseLongSpec_Degenerate(t *testing.T) {
	t.Run("empty entries are skipped", func(t *testing.T) {
		names, table := parseLongSpec([]string{"", "=", "Force"})
		assert.Equal(t, []string{"Force"}, names)
		assert.Len(t, table, 1)
	})

	t.Run("a repeated name keeps its first position and last arity", func(t *testing.T) {
		names, table := parseLongSpec([]string{"File=", "Force", "File"})
		assert.Equal(t, []string{"File", "Force"}, names)
		assert.Equal(t, NoArgument, table["File"])
	})

	t.Run("nil list", func(t *testing.T) {
		names, table := parseLongSpec(nil)
		assert.Empty(t, names)
		assert.Empty(t, table)
	})
}

func TestArity_String(t *testing.T) {
	assert.Equal(t, "none", NoArgument.String())
	assert.Equal(t, "required", RequiredArgument.String())
	assert.Equal(t, "optional", OptionalArgument.String())
}
