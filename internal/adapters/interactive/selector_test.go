package interactive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

func TestCreateFuzzySearchFunc(t *testing.T) {
	items := []string{"src/Token.sol:Token", "src/v2/Token.sol:Token", "lib/oz/ERC20.sol:ERC20"}
	search := createFuzzySearchFunc(items)

	tests := []struct {
		input    string
		index    int
		expected bool
	}{
		{"", 2, true},
		{"v2", 1, true},
		{"V2", 1, true},
		{"v2", 0, false},
		{"sv2tk", 1, true},
		{"erc", 2, true},
		{"xyz", 0, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, search(tt.input, tt.index), "input %q on %q", tt.input, items[tt.index])
	}
}

func TestSelectorAdapter_NonInteractive(t *testing.T) {
	s := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true})
	ctx := context.Background()

	ok, err := s.Confirm(ctx, "Deploy?")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "--yes")

	_, err = s.SelectTemplate(ctx, "Pick", []string{"a", "b"})
	assert.Error(t, err)
}

func TestSelectorAdapter_SingleOption(t *testing.T) {
	s := NewSelectorAdapter(&config.RuntimeConfig{})

	choice, err := s.SelectTemplate(context.Background(), "Pick", []string{"src/Token.sol:Token"})
	require.NoError(t, err)
	assert.Equal(t, "src/Token.sol:Token", choice)

	_, err = s.SelectTemplate(context.Background(), "Pick", nil)
	assert.Error(t, err)
}
