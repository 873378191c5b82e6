package domain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatWei(t *testing.T) {
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{"nil", nil, "0"},
		{"zero", big.NewInt(0), "0"},
		{"one ether", big.NewInt(1e18), "1"},
		{"two and a half", big.NewInt(25e17), "2.5"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
		{"large", new(big.Int).Mul(big.NewInt(1e18), big.NewInt(1000000)), "1000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatWei(tt.wei))
		})
	}
}

func TestParseEther(t *testing.T) {
	wei, err := ParseEther("2.5")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(25e17), wei)

	wei, err = ParseEther("0")
	require.NoError(t, err)
	assert.Zero(t, wei.Sign())

	_, err = ParseEther("-1")
	assert.Error(t, err)

	_, err = ParseEther("abc")
	assert.Error(t, err)

	// More precision than the ledger's fixed point must be rejected.
	_, err = ParseEther("0.0000000000000000001")
	assert.Error(t, err)
}

func TestParseEther_RoundTrip(t *testing.T) {
	for _, s := range []string{"0.1", "1", "123.456", "0.000000000000000001"} {
		wei, err := ParseEther(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatWei(wei), "round trip of %s", s)
	}
}

func TestCampaignDisplayAmounts(t *testing.T) {
	c := Campaign{
		TargetAmount: big.NewInt(5e18),
		Collected:    big.NewInt(25e17),
	}
	assert.Equal(t, "5", c.TargetDisplay())
	assert.Equal(t, "2.5", c.CollectedDisplay())
}

func TestActivityConstructors(t *testing.T) {
	donor := common.HexToAddress("0x1111111111111111111111111111111111111111")
	recipient := common.HexToAddress("0x2222222222222222222222222222222222222222")

	d := ActivityFromDonation(Donation{CampaignID: 3, Donor: donor, Amount: big.NewInt(10), Timestamp: 42})
	assert.Equal(t, ActivityDonation, d.Type)
	assert.Equal(t, uint64(3), d.CampaignID)
	assert.Equal(t, donor, d.Counterparty)

	p := ActivityFromDisbursement(Disbursement{CampaignID: 3, Recipient: recipient, Amount: big.NewInt(5), Timestamp: 43})
	assert.Equal(t, ActivityDisbursement, p.Type)
	assert.Equal(t, recipient, p.Counterparty)
}

func TestEventRequiresFullRefresh(t *testing.T) {
	full := []EventKind{EventCampaignCreated, EventDonationReceived, EventDisbursed}
	for _, k := range full {
		assert.True(t, Event{Kind: k}.RequiresFullRefresh(), "%s", k)
	}

	targeted := []EventKind{EventCommentAdded, EventLiked, EventUnliked}
	for _, k := range targeted {
		assert.False(t, Event{Kind: k}.RequiresFullRefresh(), "%s", k)
	}
}

func TestSessionNetworkMatches(t *testing.T) {
	s := &Session{State: SessionConnected, ChainID: 71}
	assert.True(t, s.NetworkMatches(71))
	assert.False(t, s.NetworkMatches(1))

	// A disconnected session never matches, whatever the recorded chain id.
	s.State = SessionDisconnected
	assert.False(t, s.NetworkMatches(71))
}

func TestEmptyAggregateView(t *testing.T) {
	v := EmptyAggregateView()
	assert.Zero(t, v.TotalCampaigns)
	assert.Zero(t, v.TotalCollected.Sign())
	assert.Empty(t, v.RecentActivity)
	assert.Equal(t, "0", v.TotalCollectedDisplay())
}
