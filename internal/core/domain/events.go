package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// EventKind identifies a ledger-emitted event.
type EventKind string

const (
	EventCampaignCreated  EventKind = "CampaignCreated"
	EventDonationReceived EventKind = "DonationReceived"
	EventDisbursed        EventKind = "Disbursed"
	EventCommentAdded     EventKind = "CommentAdded"
	EventLiked            EventKind = "Liked"
	EventUnliked          EventKind = "Unliked"
)

// Event is a push notification decoded from a ledger log. Events are
// triggers, not authoritative incremental state: delivery order may differ
// from block order, so consumers re-read rather than apply payloads.
type Event struct {
	Kind       EventKind      `json:"kind"`
	CampaignID uint64         `json:"campaign_id"`
	Actor      common.Address `json:"actor"`  // creator, donor, recipient, commenter or liker
	Amount     *big.Int       `json:"-"`      // nil for non-monetary events
	Text       string         `json:"text,omitempty"`
	TxHash     string         `json:"tx_hash,omitempty"`
}

// RequiresFullRefresh reports whether the event affects the global aggregate
// (money moved or a campaign appeared) rather than a single campaign's
// social state.
func (e Event) RequiresFullRefresh() bool {
	switch e.Kind {
	case EventCampaignCreated, EventDonationReceived, EventDisbursed:
		return true
	default:
		return false
	}
}

// TxReceipt is the confirmation of a submitted write.
type TxReceipt struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
	GasUsed     uint64 `json:"gas_used"`
}
