package ports

import (
	"context"
	"math/big"

	"charity-ledger-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
)

// LedgerReader executes read calls against the deployed contract.
type LedgerReader interface {
	NextCampaignID(ctx context.Context) (uint64, error)
	Campaign(ctx context.Context, id uint64) (*domain.Campaign, error)
	Owner(ctx context.Context) (common.Address, error)
	IsAdmin(ctx context.Context, addr common.Address) (bool, error)
	DonationsCount(ctx context.Context, campaignID uint64) (uint64, error)
	DonationAt(ctx context.Context, campaignID, index uint64) (*domain.Donation, error)
	DisbursementsCount(ctx context.Context, campaignID uint64) (uint64, error)
	DisbursementAt(ctx context.Context, campaignID, index uint64) (*domain.Disbursement, error)
	CommentsCount(ctx context.Context, campaignID uint64) (uint64, error)
	CommentAt(ctx context.Context, campaignID, index uint64) (*domain.Comment, error)
}

// CreateCampaignParams holds validated input for campaign creation.
type CreateCampaignParams struct {
	Title        string
	Description  string
	Media        string // empty when the upload side-channel returned no reference
	Location     string
	TargetAmount *big.Int // wei
	Wallet       common.Address
}

// LedgerWriter submits signed transactions. Each method sends exactly one
// transaction and blocks until exactly one confirmation is observed; a
// failure at any stage returns an error and is never retried here.
type LedgerWriter interface {
	CreateCampaign(ctx context.Context, p CreateCampaignParams) (*domain.TxReceipt, error)
	Donate(ctx context.Context, campaignID uint64, amount *big.Int) (*domain.TxReceipt, error)
	Disburse(ctx context.Context, campaignID uint64, recipient common.Address, amount *big.Int) (*domain.TxReceipt, error)
	SetCampaignActive(ctx context.Context, campaignID uint64, active bool) (*domain.TxReceipt, error)
	SetAdmin(ctx context.Context, addr common.Address, allowed bool) (*domain.TxReceipt, error)
	AddComment(ctx context.Context, campaignID uint64, text string, anonymous bool) (*domain.TxReceipt, error)
	Like(ctx context.Context, campaignID uint64) (*domain.TxReceipt, error)
	Unlike(ctx context.Context, campaignID uint64) (*domain.TxReceipt, error)
}

// LedgerSubscriber exposes contract events as a channel. The channel closes
// when the subscription ends; delivery order is not guaranteed to match
// block order.
type LedgerSubscriber interface {
	SubscribeEvents(ctx context.Context) (<-chan domain.Event, error)
}

// Ledger is the full remote ledger client bound to one contract address.
type Ledger interface {
	LedgerReader
	LedgerWriter
	LedgerSubscriber
	Close()
}

// ConnectionInfo describes the account/network a connect attempt landed on.
type ConnectionInfo struct {
	Account common.Address
	ChainID int64
}

// LedgerConnector dials the remote node and binds the contract. Session
// state owns when to connect; the connector owns how.
type LedgerConnector interface {
	Connect(ctx context.Context) (Ledger, *ConnectionInfo, error)
}
