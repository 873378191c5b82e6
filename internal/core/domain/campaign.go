package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Campaign is a ledger-held fundraising campaign. Identifiers are assigned by
// the contract, start at 1 and increase monotonically. Records are never
// deleted; the admin only toggles the active flag.
type Campaign struct {
	ID           uint64         `json:"id"`
	Creator      common.Address `json:"creator"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Media        string         `json:"media"` // empty is valid: the upload side-channel is a stub
	Location     string         `json:"location"`
	TargetAmount *big.Int       `json:"-"` // wei
	Wallet       common.Address `json:"wallet"`
	Collected    *big.Int       `json:"-"` // wei, monotonically non-decreasing
	CreatedAt    int64          `json:"created_at"` // unix seconds
	Active       bool           `json:"active"`
}

// TargetDisplay returns the target amount as a display-precision ether string.
func (c *Campaign) TargetDisplay() string {
	return FormatWei(c.TargetAmount)
}

// CollectedDisplay returns the collected amount as a display-precision ether string.
func (c *Campaign) CollectedDisplay() string {
	return FormatWei(c.Collected)
}
