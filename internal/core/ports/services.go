package ports

import (
	"context"
	"io"
	"math/big"

	"charity-ledger-gateway/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
)

// SessionService owns the operator's connection lifecycle.
type SessionService interface {
	// Connect dials the ledger and binds the signer account. Re-connecting an
	// already connected session reconnects cleanly.
	Connect(ctx context.Context) (*domain.Session, error)
	// Disconnect drops the handle. Safe to call when never connected.
	Disconnect()
	// Current returns a copy of the session state.
	Current() domain.Session
	// Ledger returns the bound client, or ErrGatewayUnavailable when the
	// session is not connected.
	Ledger() (Ledger, error)
}

// StatusReport answers the operator's singular "check my status" query.
// Unlike aggregation reads, failures here surface directly.
type StatusReport struct {
	Account         common.Address `json:"account"`
	Owner           common.Address `json:"owner"`
	IsOwner         bool           `json:"is_owner"`
	IsAdmin         bool           `json:"is_admin"`
	NextCampaignID  uint64         `json:"next_campaign_id"`
	ChainID         int64          `json:"chain_id"`
	NetworkOK       bool           `json:"network_ok"`
	ContractAddress string         `json:"contract_address"`
}

// CampaignDetail is a single campaign with its full record pages.
type CampaignDetail struct {
	Campaign      domain.Campaign       `json:"campaign"`
	Donations     []domain.Donation     `json:"donations"`
	Disbursements []domain.Disbursement `json:"disbursements"`
	Comments      []domain.Comment      `json:"comments"`
}

// GatewayService wraps the session with typed, precondition-guarded contract
// operations and normalized errors.
type GatewayService interface {
	// Reads.
	NextCampaignID(ctx context.Context) (uint64, error)
	GetCampaign(ctx context.Context, id uint64) (*domain.Campaign, error)
	LoadAllCampaigns(ctx context.Context) ([]domain.Campaign, error)
	CampaignDetail(ctx context.Context, id uint64) (*CampaignDetail, error)
	// IsAdmin degrades to false when the liveness probe fails; it never
	// returns an error. Pass nil to check the session account.
	IsAdmin(ctx context.Context, addr *common.Address) bool
	CheckStatus(ctx context.Context) (*StatusReport, error)

	// Writes. Each re-validates its precondition with a fresh read, submits
	// one signed transaction, awaits one confirmation, and triggers a
	// dashboard re-aggregation on success.
	CreateCampaign(ctx context.Context, p CreateCampaignParams) (*domain.TxReceipt, error)
	Donate(ctx context.Context, campaignID uint64, amount *big.Int) (*domain.TxReceipt, error)
	Disburse(ctx context.Context, campaignID uint64, recipient common.Address, amount *big.Int) (*domain.TxReceipt, error)
	SetCampaignActive(ctx context.Context, campaignID uint64, active bool) (*domain.TxReceipt, error)
	SetAdmin(ctx context.Context, addr common.Address, allowed bool) (*domain.TxReceipt, error)
	AddComment(ctx context.Context, campaignID uint64, text string, anonymous bool) (*domain.TxReceipt, error)
	Like(ctx context.Context, campaignID uint64) (*domain.TxReceipt, error)
	Unlike(ctx context.Context, campaignID uint64) (*domain.TxReceipt, error)
}

// AggregatorService derives the dashboard view from ledger reads.
type AggregatorService interface {
	// Refresh runs one full aggregation pass and atomically publishes the
	// result. Passes serialize; a pass is committed whole or not at all.
	Refresh(ctx context.Context) (*domain.AggregateView, error)
	// RefreshCampaign re-reads a single campaign (targeted reconciliation
	// for social events).
	RefreshCampaign(ctx context.Context, id uint64) (*domain.Campaign, error)
	// Snapshot returns the last published view without touching the ledger.
	Snapshot() *domain.AggregateView
}

// Reconciler translates push events into re-aggregation triggers.
type Reconciler interface {
	// Attach starts consuming ledger events. Idempotent: attaching while
	// attached is a no-op.
	Attach(ctx context.Context) error
	// Detach stops the consumer. Safe to call when never attached.
	Detach()
	Attached() bool
}

// MediaStore uploads campaign media and returns a reference. The current
// implementation is a stub that always returns no reference; an empty
// reference is valid everywhere.
type MediaStore interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

// AuditService records operator write submissions (fire-and-forget).
type AuditService interface {
	Record(ctx context.Context, entry *domain.WriteAudit)
}
