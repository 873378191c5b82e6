package service

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports"
	"charity-ledger-gateway/internal/core/ports/mocks"
	"charity-ledger-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testChainID      = int64(71)
	testContractAddr = "0xD09bf13AaFba0Cb3e0a0d5556eF75C4Bd69fe340"
)

type gatewayFixture struct {
	ledger     *mocks.MockLedger
	session    *mocks.MockSessionService
	aggregator *mocks.MockAggregatorService
	audit      *mocks.MockAuditService
	svc        ports.GatewayService
}

func newGatewayFixture(t *testing.T, connectedChainID int64) *gatewayFixture {
	ctrl := gomock.NewController(t)
	f := &gatewayFixture{
		ledger:     mocks.NewMockLedger(ctrl),
		session:    mocks.NewMockSessionService(ctrl),
		aggregator: mocks.NewMockAggregatorService(ctrl),
		audit:      mocks.NewMockAuditService(ctrl),
	}
	f.session.EXPECT().Ledger().Return(f.ledger, nil).AnyTimes()
	f.session.EXPECT().Current().Return(domain.Session{
		State:   domain.SessionConnected,
		Account: testAccount,
		ChainID: connectedChainID,
	}).AnyTimes()
	f.svc = NewGatewayService(f.session, f.aggregator, f.audit, testChainID, testContractAddr, zerolog.Nop())
	return f
}

func testCampaign(id uint64, collectedWei int64) *domain.Campaign {
	return &domain.Campaign{
		ID:           id,
		Creator:      testAccount,
		Title:        "Flood Relief",
		TargetAmount: big.NewInt(10e15),
		Wallet:       common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		Collected:    big.NewInt(collectedWei),
		CreatedAt:    1700000000,
		Active:       true,
	}
}

func TestGatewayService_GetCampaign(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()

	t.Run("returns existing campaign", func(t *testing.T) {
		f.ledger.EXPECT().Campaign(ctx, uint64(1)).Return(testCampaign(1, 500), nil)

		c, err := f.svc.GetCampaign(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), c.ID)
	})

	t.Run("zero record maps to not found", func(t *testing.T) {
		f.ledger.EXPECT().Campaign(ctx, uint64(99)).Return(&domain.Campaign{Collected: big.NewInt(0), TargetAmount: big.NewInt(0)}, nil)

		_, err := f.svc.GetCampaign(ctx, 99)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "GTW_004", appErr.Code)
	})
}

func TestGatewayService_LoadAllCampaigns_SkipsFailures(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()

	f.ledger.EXPECT().NextCampaignID(ctx).Return(uint64(4), nil)
	f.ledger.EXPECT().Campaign(ctx, uint64(1)).Return(testCampaign(1, 100), nil)
	f.ledger.EXPECT().Campaign(ctx, uint64(2)).Return(nil, errors.New("execution reverted"))
	f.ledger.EXPECT().Campaign(ctx, uint64(3)).Return(testCampaign(3, 300), nil)

	campaigns, err := f.svc.LoadAllCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	assert.Equal(t, uint64(1), campaigns[0].ID)
	assert.Equal(t, uint64(3), campaigns[1].ID)
}

func TestGatewayService_LoadAllCampaigns_EmptyLedger(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()

	f.ledger.EXPECT().NextCampaignID(ctx).Return(uint64(1), nil)

	campaigns, err := f.svc.LoadAllCampaigns(ctx)
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestGatewayService_IsAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("true for session account", func(t *testing.T) {
		f := newGatewayFixture(t, testChainID)
		f.ledger.EXPECT().NextCampaignID(ctx).Return(uint64(5), nil)
		f.ledger.EXPECT().IsAdmin(ctx, testAccount).Return(true, nil)

		assert.True(t, f.svc.IsAdmin(ctx, nil))
	})

	t.Run("degrades to false when liveness probe fails", func(t *testing.T) {
		f := newGatewayFixture(t, testChainID)
		f.ledger.EXPECT().NextCampaignID(ctx).Return(uint64(0), errors.New("node down"))

		assert.False(t, f.svc.IsAdmin(ctx, nil))
	})

	t.Run("degrades to false when disconnected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		session := mocks.NewMockSessionService(ctrl)
		session.EXPECT().Ledger().Return(nil, apperror.ErrGatewayUnavailable())

		svc := NewGatewayService(session, mocks.NewMockAggregatorService(ctrl), mocks.NewMockAuditService(ctrl),
			testChainID, testContractAddr, zerolog.Nop())
		assert.False(t, svc.IsAdmin(ctx, nil))
	})

	t.Run("checks explicit address", func(t *testing.T) {
		f := newGatewayFixture(t, testChainID)
		other := common.HexToAddress("0x00000000000000000000000000000000000000bb")
		f.ledger.EXPECT().NextCampaignID(ctx).Return(uint64(5), nil)
		f.ledger.EXPECT().IsAdmin(ctx, other).Return(false, nil)

		assert.False(t, f.svc.IsAdmin(ctx, &other))
	})
}

func TestGatewayService_CheckStatus(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()

	owner := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	f.ledger.EXPECT().Owner(ctx).Return(owner, nil)
	f.ledger.EXPECT().IsAdmin(ctx, testAccount).Return(true, nil)
	f.ledger.EXPECT().NextCampaignID(ctx).Return(uint64(7), nil)

	report, err := f.svc.CheckStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, testAccount, report.Account)
	assert.Equal(t, owner, report.Owner)
	assert.False(t, report.IsOwner)
	assert.True(t, report.IsAdmin)
	assert.Equal(t, uint64(7), report.NextCampaignID)
	assert.True(t, report.NetworkOK)
	assert.Equal(t, testContractAddr, report.ContractAddress)
}

func TestGatewayService_CheckStatus_SurfacesFailures(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()

	f.ledger.EXPECT().Owner(ctx).Return(common.Address{}, apperror.ErrRemoteCallFailed("owner", errors.New("timeout")))

	_, err := f.svc.CheckStatus(ctx)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CHAIN_001", appErr.Code)
}

func validCreateParams() ports.CreateCampaignParams {
	return ports.CreateCampaignParams{
		Title:        "Flood Relief",
		Description:  "Emergency support",
		Location:     "Hue",
		TargetAmount: big.NewInt(10e15),
		Wallet:       common.HexToAddress("0x00000000000000000000000000000000000000aa"),
	}
}

func TestGatewayService_CreateCampaign_NonAdminRejected(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()

	// Fresh admin read says no. The transaction must never be submitted.
	f.ledger.EXPECT().IsAdmin(ctx, testAccount).Return(false, nil)
	f.audit.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.WriteAudit) {
		assert.Equal(t, domain.WriteStatusRejected, entry.Status)
		assert.Equal(t, domain.ActionCreateCampaign, entry.Action)
		assert.Empty(t, entry.TxHash)
	})

	_, err := f.svc.CreateCampaign(ctx, validCreateParams())
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GTW_002", appErr.Code)
}

func TestGatewayService_CreateCampaign_Validation(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()

	p := validCreateParams()
	p.Title = "   "
	_, err := f.svc.CreateCampaign(ctx, p)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)

	p = validCreateParams()
	p.TargetAmount = big.NewInt(0)
	_, err = f.svc.CreateCampaign(ctx, p)
	assert.Error(t, err)
}

func TestGatewayService_Donate_Success(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()
	amount := big.NewInt(25e17)
	receipt := &domain.TxReceipt{TxHash: "0xfeed", BlockNumber: 42}

	f.ledger.EXPECT().Donate(ctx, uint64(3), amount).Return(receipt, nil)
	f.audit.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.WriteAudit) {
		assert.Equal(t, domain.WriteStatusConfirmed, entry.Status)
		assert.Equal(t, "0xfeed", entry.TxHash)
	})

	// The post-confirmation refresh runs on its own goroutine.
	refreshed := make(chan struct{})
	f.aggregator.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) (*domain.AggregateView, error) {
		close(refreshed)
		return domain.EmptyAggregateView(), nil
	})

	got, err := f.svc.Donate(ctx, 3, amount)
	require.NoError(t, err)
	assert.Equal(t, receipt, got)

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a full re-aggregation after confirmed donation")
	}
}

func TestGatewayService_Donate_Validation(t *testing.T) {
	f := newGatewayFixture(t, testChainID)

	_, err := f.svc.Donate(context.Background(), 3, big.NewInt(0))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VAL_001", appErr.Code)

	_, err = f.svc.Donate(context.Background(), 3, nil)
	assert.Error(t, err)
}

func TestGatewayService_WrongNetworkBlocksWrites(t *testing.T) {
	f := newGatewayFixture(t, 1) // connected to mainnet, target is 71

	_, err := f.svc.Donate(context.Background(), 3, big.NewInt(100))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GTW_003", appErr.Code)
}

func TestGatewayService_Disburse_RejectedSubmission(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()
	amount := big.NewInt(10e15)
	recipient := common.HexToAddress("0x00000000000000000000000000000000000000dd")

	f.ledger.EXPECT().IsAdmin(ctx, testAccount).Return(true, nil)
	f.ledger.EXPECT().Disburse(ctx, uint64(2), recipient, amount).
		Return(nil, apperror.ErrRemoteCallFailed("disburseFromContract", errors.New("reverted")))
	f.audit.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, entry *domain.WriteAudit) {
		assert.Equal(t, domain.WriteStatusRejected, entry.Status)
		assert.Equal(t, domain.ActionDisburse, entry.Action)
	})

	_, err := f.svc.Disburse(ctx, 2, recipient, amount)
	require.Error(t, err)
}

func TestGatewayService_SetAdmin_OwnerOnly(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()
	target := common.HexToAddress("0x00000000000000000000000000000000000000ee")

	// Session account is not the contract owner.
	f.ledger.EXPECT().Owner(ctx).Return(common.HexToAddress("0x00000000000000000000000000000000000000cc"), nil)
	f.audit.EXPECT().Record(ctx, gomock.Any())

	_, err := f.svc.SetAdmin(ctx, target, true)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "GTW_002", appErr.Code)
}

func TestGatewayService_AddComment_TargetedRefresh(t *testing.T) {
	f := newGatewayFixture(t, testChainID)
	ctx := context.Background()

	f.ledger.EXPECT().AddComment(ctx, uint64(5), "stay strong", true).
		Return(&domain.TxReceipt{TxHash: "0xc0ffee"}, nil)
	f.audit.EXPECT().Record(ctx, gomock.Any())

	refreshed := make(chan struct{})
	f.aggregator.EXPECT().RefreshCampaign(gomock.Any(), uint64(5)).
		DoAndReturn(func(context.Context, uint64) (*domain.Campaign, error) {
			close(refreshed)
			return testCampaign(5, 0), nil
		})

	_, err := f.svc.AddComment(ctx, 5, "stay strong", true)
	require.NoError(t, err)

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a targeted campaign refresh after comment")
	}
}
