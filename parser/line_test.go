package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrimLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "a, b, c", "a, b, c"},
		{"whitespace", "  a, b, c  ", "a, b, c"},
		{"trailing period", "a, b, c.", "a, b, c"},
		{"period then whitespace", "  a, b, c .  ", "a, b, c"},
		{"comment", "a, b, c // a comment", "a, b, c"},
		{"comment with period", "a, b. // trailing", "a, b"},
		{"comment only", "// nothing here", ""},
		{"blank", "   ", ""},
		{"empty", "", ""},
		{"only one trailing period removed", "a..", "a."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TrimLine(tt.in))
		})
	}
}

func TestTrimLineIdempotent(t *testing.T) {
	for _, in := range []string{"a, b, c", "name: x, y", "0, 1", ""} {
		trimmed := TrimLine(in)
		require.Equal(t, trimmed, TrimLine(trimmed))
	}
}

func TestSplitValues(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"spaced", " a , b , c ", []string{"a", "b", "c"}},
		{"quoted", `"a", "b c"`, []string{"a", "b c"}},
		{"quote then retrim", `" a "`, []string{"a"}},
		{"lone quote kept", `"`, []string{`"`}},
		{"empty tokens", "a,,b", []string{"a", "", "b"}},
		{"single", "continuous", []string{"continuous"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitValues(tt.in))
		})
	}
}
