package service

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports/mocks"
	"charity-ledger-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAggregatorFixture(t *testing.T) (*mocks.MockLedger, *aggregatorService) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedger(ctrl)
	session := mocks.NewMockSessionService(ctrl)
	session.EXPECT().Ledger().Return(ledger, nil).AnyTimes()

	svc := NewAggregatorService(session, zerolog.Nop()).(*aggregatorService)
	return ledger, svc
}

func donation(campaignID uint64, amountWei, ts int64) *domain.Donation {
	return &domain.Donation{
		CampaignID: campaignID,
		Donor:      common.HexToAddress("0x0000000000000000000000000000000000000d01"),
		Amount:     big.NewInt(amountWei),
		Timestamp:  ts,
	}
}

func disbursement(campaignID uint64, amountWei, ts int64) *domain.Disbursement {
	return &domain.Disbursement{
		CampaignID: campaignID,
		Recipient:  common.HexToAddress("0x0000000000000000000000000000000000000d02"),
		Amount:     big.NewInt(amountWei),
		Timestamp:  ts,
	}
}

func TestAggregator_InitialSnapshotIsEmpty(t *testing.T) {
	_, svc := newAggregatorFixture(t)

	snap := svc.Snapshot()
	require.NotNil(t, snap)
	assert.Zero(t, snap.TotalCampaigns)
	assert.Zero(t, snap.TotalCollected.Sign())
	assert.Empty(t, snap.Campaigns)
}

func TestAggregator_Refresh_EmptyLedger(t *testing.T) {
	ledger, svc := newAggregatorFixture(t)
	ledger.EXPECT().NextCampaignID(gomock.Any()).Return(uint64(1), nil)

	view, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Zero(t, view.TotalCampaigns)
	assert.Zero(t, view.TotalDonations)
	assert.Zero(t, view.TotalCollected.Sign())
	assert.Same(t, view, svc.Snapshot())
}

func TestAggregator_Refresh_SumsExactly(t *testing.T) {
	ledger, svc := newAggregatorFixture(t)

	collected := new(big.Int)
	collected.SetString("2500000000000000000", 10) // 2.5 ether in wei

	c1 := testCampaign(1, 0)
	c1.Collected = collected
	c2 := testCampaign(2, 0)

	ledger.EXPECT().NextCampaignID(gomock.Any()).Return(uint64(3), nil)
	ledger.EXPECT().Campaign(gomock.Any(), uint64(1)).Return(c1, nil)
	ledger.EXPECT().Campaign(gomock.Any(), uint64(2)).Return(c2, nil)
	ledger.EXPECT().DonationsCount(gomock.Any(), uint64(1)).Return(uint64(2), nil)
	ledger.EXPECT().DonationAt(gomock.Any(), uint64(1), uint64(1)).Return(donation(1, 2e18, 2000), nil)
	ledger.EXPECT().DonationAt(gomock.Any(), uint64(1), uint64(0)).Return(donation(1, 5e17, 1000), nil)
	ledger.EXPECT().DisbursementsCount(gomock.Any(), uint64(1)).Return(uint64(0), nil)
	ledger.EXPECT().DonationsCount(gomock.Any(), uint64(2)).Return(uint64(0), nil)
	ledger.EXPECT().DisbursementsCount(gomock.Any(), uint64(2)).Return(uint64(0), nil)

	view, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, view.TotalCampaigns)
	assert.Equal(t, int64(2), view.TotalDonations)
	assert.Zero(t, view.TotalCollected.Cmp(collected))
	assert.Equal(t, "2.5", view.TotalCollectedDisplay())

	require.Len(t, view.RecentActivity, 2)
	assert.Equal(t, int64(2000), view.RecentActivity[0].Timestamp)
	assert.Equal(t, int64(1000), view.RecentActivity[1].Timestamp)
}

func TestAggregator_Refresh_OmitsFailedCampaigns(t *testing.T) {
	ledger, svc := newAggregatorFixture(t)

	ledger.EXPECT().NextCampaignID(gomock.Any()).Return(uint64(3), nil)
	ledger.EXPECT().Campaign(gomock.Any(), uint64(1)).Return(testCampaign(1, 700), nil)
	ledger.EXPECT().Campaign(gomock.Any(), uint64(2)).Return(nil, errors.New("execution reverted"))
	ledger.EXPECT().DonationsCount(gomock.Any(), uint64(1)).Return(uint64(0), nil)
	ledger.EXPECT().DisbursementsCount(gomock.Any(), uint64(1)).Return(uint64(0), nil)

	view, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	// The unreadable campaign is absent, not substituted with a stale entry.
	assert.Equal(t, 1, view.TotalCampaigns)
	assert.Equal(t, int64(700), view.TotalCollected.Int64())
}

func TestAggregator_Refresh_FailsWholeWhenCountUnavailable(t *testing.T) {
	ledger, svc := newAggregatorFixture(t)

	before := svc.Snapshot()
	ledger.EXPECT().NextCampaignID(gomock.Any()).
		Return(uint64(0), apperror.ErrRemoteCallFailed("nextCampaignId", errors.New("node down")))

	_, err := svc.Refresh(context.Background())
	require.Error(t, err)
	// A failed pass publishes nothing.
	assert.Same(t, before, svc.Snapshot())
}

func TestAggregator_Refresh_FeedSortedAndBounded(t *testing.T) {
	ledger, svc := newAggregatorFixture(t)

	ledger.EXPECT().NextCampaignID(gomock.Any()).Return(uint64(3), nil)
	for id := uint64(1); id <= 2; id++ {
		base := int64(id * 100)
		ledger.EXPECT().Campaign(gomock.Any(), id).Return(testCampaign(id, 0), nil)
		// 5 donations on chain, only the newest 3 are sampled.
		ledger.EXPECT().DonationsCount(gomock.Any(), id).Return(uint64(5), nil)
		ledger.EXPECT().DonationAt(gomock.Any(), id, uint64(4)).Return(donation(id, 1, base+5), nil)
		ledger.EXPECT().DonationAt(gomock.Any(), id, uint64(3)).Return(donation(id, 1, base+4), nil)
		ledger.EXPECT().DonationAt(gomock.Any(), id, uint64(2)).Return(donation(id, 1, base+3), nil)
		ledger.EXPECT().DisbursementsCount(gomock.Any(), id).Return(uint64(3), nil)
		ledger.EXPECT().DisbursementAt(gomock.Any(), id, uint64(2)).Return(disbursement(id, 1, base+8), nil)
		ledger.EXPECT().DisbursementAt(gomock.Any(), id, uint64(1)).Return(disbursement(id, 1, base+7), nil)
		ledger.EXPECT().DisbursementAt(gomock.Any(), id, uint64(0)).Return(disbursement(id, 1, base+6), nil)
	}

	view, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	// 12 sampled entries collapse to the 7 newest.
	require.Len(t, view.RecentActivity, 7)
	for i := 1; i < len(view.RecentActivity); i++ {
		assert.GreaterOrEqual(t, view.RecentActivity[i-1].Timestamp, view.RecentActivity[i].Timestamp)
	}
	assert.Equal(t, int64(208), view.RecentActivity[0].Timestamp)
}

func TestAggregator_RefreshCampaign_PatchesSnapshot(t *testing.T) {
	ledger, svc := newAggregatorFixture(t)

	ledger.EXPECT().NextCampaignID(gomock.Any()).Return(uint64(3), nil)
	ledger.EXPECT().Campaign(gomock.Any(), uint64(1)).Return(testCampaign(1, 100), nil)
	ledger.EXPECT().Campaign(gomock.Any(), uint64(2)).Return(testCampaign(2, 200), nil)
	ledger.EXPECT().DonationsCount(gomock.Any(), gomock.Any()).Return(uint64(0), nil).Times(2)
	ledger.EXPECT().DisbursementsCount(gomock.Any(), gomock.Any()).Return(uint64(0), nil).Times(2)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	updated := testCampaign(2, 900)
	updated.Active = false
	ledger.EXPECT().Campaign(gomock.Any(), uint64(2)).Return(updated, nil)

	got, err := svc.RefreshCampaign(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, got.Active)

	snap := svc.Snapshot()
	require.Len(t, snap.Campaigns, 2)
	assert.Equal(t, int64(900), snap.Campaigns[1].Collected.Int64())
	assert.False(t, snap.Campaigns[1].Active)
	assert.Equal(t, int64(1000), snap.TotalCollected.Int64())
}
