package domain

import "github.com/ethereum/go-ethereum/common"

// Comment is an append-only campaign comment. When Anonymous is set the
// author address is still recorded on the ledger but hidden from display.
type Comment struct {
	CampaignID uint64         `json:"campaign_id"`
	Author     common.Address `json:"author"`
	Anonymous  bool           `json:"anonymous"`
	Text       string         `json:"text"`
	Timestamp  int64          `json:"timestamp"`
}
