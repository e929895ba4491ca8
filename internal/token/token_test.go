package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSeparator(t *testing.T) {
	tests := []struct {
		input    byte
		expected bool
	}{
		{' ', true},
		{'\t', false},
		{'\n', false},
		{'a', false},
		{0xa0, false},
	}

	for _, tt := range tests {
		t.Run(string(rune(tt.input)), func(t *testing.T) {
			require.Equal(t, tt.expected, IsSeparator(tt.input))
		})
	}
}
