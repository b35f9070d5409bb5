package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

// FormatEther renders a wei amount as a decimal ether string, always keeping
// at least one fractional digit ("0.0", "1.5", "0.000000000000001").
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}

	sign := ""
	v := new(big.Int).Set(wei)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}

	whole, frac := new(big.Int).QuoRem(v, big.NewInt(params.Ether), new(big.Int))

	fracStr := frac.String()
	fracStr = strings.Repeat("0", 18-len(fracStr)) + fracStr
	fracStr = strings.TrimRight(fracStr, "0")
	if fracStr == "" {
		fracStr = "0"
	}

	return sign + whole.String() + "." + fracStr
}
