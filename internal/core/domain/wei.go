package domain

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// weiDecimals is the fixed-point scale of the ledger's native currency.
const weiDecimals = 18

// FormatWei converts an exact wei amount into a display-precision ether
// string. Aggregation must never sum these strings back — exact arithmetic
// stays in *big.Int.
func FormatWei(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -weiDecimals).String()
}

// ParseEther converts an operator-supplied ether string into exact wei.
// Sub-wei precision is rejected rather than silently truncated.
func ParseEther(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("amount %q is negative", s)
	}
	shifted := d.Shift(weiDecimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("amount %q has more than %d decimal places", s, weiDecimals)
	}
	return shifted.BigInt(), nil
}
