package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Donation is an append-only record per campaign, ordered by insertion.
type Donation struct {
	CampaignID uint64         `json:"campaign_id"`
	Donor      common.Address `json:"donor"`
	Amount     *big.Int       `json:"-"` // wei
	Timestamp  int64          `json:"timestamp"`
}

// Disbursement is an append-only payout record per campaign.
type Disbursement struct {
	CampaignID uint64         `json:"campaign_id"`
	Recipient  common.Address `json:"recipient"`
	Amount     *big.Int       `json:"-"` // wei
	Timestamp  int64          `json:"timestamp"`
}

// ActivityType tags entries in the recent-activity feed.
type ActivityType string

const (
	ActivityDonation     ActivityType = "DONATION"
	ActivityDisbursement ActivityType = "DISBURSEMENT"
)

// ActivityEntry is one row of the merged recent-activity feed. Counterparty
// is the donor for donations and the recipient for disbursements.
type ActivityEntry struct {
	Type         ActivityType   `json:"type"`
	CampaignID   uint64         `json:"campaign_id"`
	Counterparty common.Address `json:"counterparty"`
	Amount       *big.Int       `json:"-"`
	Timestamp    int64          `json:"timestamp"`
}

// ActivityFromDonation converts a donation record into a feed entry.
func ActivityFromDonation(d Donation) ActivityEntry {
	return ActivityEntry{
		Type:         ActivityDonation,
		CampaignID:   d.CampaignID,
		Counterparty: d.Donor,
		Amount:       d.Amount,
		Timestamp:    d.Timestamp,
	}
}

// ActivityFromDisbursement converts a disbursement record into a feed entry.
func ActivityFromDisbursement(d Disbursement) ActivityEntry {
	return ActivityEntry{
		Type:         ActivityDisbursement,
		CampaignID:   d.CampaignID,
		Counterparty: d.Recipient,
		Amount:       d.Amount,
		Timestamp:    d.Timestamp,
	}
}
