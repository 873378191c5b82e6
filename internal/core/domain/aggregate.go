package domain

import (
	"math/big"
	"time"

	"github.com/google/uuid"
)

// AggregateView is the derived dashboard summary. It is a pure function of
// the campaign/donation/disbursement records visible during one aggregation
// pass: rebuilt, swapped in whole, never mutated in place, and never
// persisted. Campaigns that failed to load in the pass are absent, not
// substituted with stale entries.
type AggregateView struct {
	PassID         uuid.UUID       `json:"pass_id"`
	GeneratedAt    time.Time       `json:"generated_at"`
	TotalCampaigns int             `json:"total_campaigns"`
	TotalCollected *big.Int        `json:"-"` // exact wei sum over surviving campaigns
	TotalDonations int64           `json:"total_donations"`
	RecentActivity []ActivityEntry `json:"recent_activity"` // sorted desc by timestamp, len <= activity bound
	Campaigns      []Campaign      `json:"campaigns"`
}

// EmptyAggregateView is the view published before the first pass completes.
func EmptyAggregateView() *AggregateView {
	return &AggregateView{
		PassID:         uuid.New(),
		GeneratedAt:    time.Now().UTC(),
		TotalCollected: new(big.Int),
		RecentActivity: []ActivityEntry{},
		Campaigns:      []Campaign{},
	}
}

// TotalCollectedDisplay returns the exact sum formatted for display.
func (v *AggregateView) TotalCollectedDisplay() string {
	return FormatWei(v.TotalCollected)
}
