package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatEther(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	tenThousandEther, _ := new(big.Int).SetString("10000000000000000000000", 10)

	tests := []struct {
		name     string
		wei      *big.Int
		expected string
	}{
		{"nil", nil, "0.0"},
		{"zero", big.NewInt(0), "0.0"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
		{"thousand wei", big.NewInt(1000), "0.000000000000001"},
		{"one ether", oneEther, "1.0"},
		{"one and a half", new(big.Int).Add(oneEther, new(big.Int).Div(oneEther, big.NewInt(2))), "1.5"},
		{"anvil default", tenThousandEther, "10000.0"},
		{"negative", big.NewInt(-5e17), "-0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatEther(tt.wei))
		})
	}
}

func TestSigningAccountHasFunds(t *testing.T) {
	assert.False(t, (&SigningAccount{}).HasFunds())
	assert.False(t, (&SigningAccount{Balance: big.NewInt(0)}).HasFunds())
	assert.True(t, (&SigningAccount{Balance: big.NewInt(1)}).HasFunds())
}
