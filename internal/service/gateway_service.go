package service

import (
	"context"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports"
	"charity-ledger-gateway/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// refreshTimeout bounds the post-confirmation re-aggregation, which runs
// detached from the request context.
const refreshTimeout = 30 * time.Second

// gatewayService implements ports.GatewayService. Every write re-validates
// its precondition with a fresh ledger read immediately before submission;
// cached permission state is never trusted for money movement. The ledger
// contract remains the final authority either way, the guard only saves the
// operator a doomed transaction.
type gatewayService struct {
	session         ports.SessionService
	aggregator      ports.AggregatorService
	audit           ports.AuditService
	targetChainID   int64
	contractAddress string
	log             zerolog.Logger
}

// NewGatewayService creates a new contract gateway service.
func NewGatewayService(
	session ports.SessionService,
	aggregator ports.AggregatorService,
	audit ports.AuditService,
	targetChainID int64,
	contractAddress string,
	log zerolog.Logger,
) ports.GatewayService {
	return &gatewayService{
		session:         session,
		aggregator:      aggregator,
		audit:           audit,
		targetChainID:   targetChainID,
		contractAddress: contractAddress,
		log:             log,
	}
}

// NextCampaignID returns the next identifier the ledger will assign.
func (s *gatewayService) NextCampaignID(ctx context.Context) (uint64, error) {
	ledger, err := s.session.Ledger()
	if err != nil {
		return 0, err
	}
	return ledger.NextCampaignID(ctx)
}

// GetCampaign reads one campaign. The contract returns a zero record for an
// id it never assigned; that surfaces as not found rather than an empty
// campaign.
func (s *gatewayService) GetCampaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	ledger, err := s.session.Ledger()
	if err != nil {
		return nil, err
	}

	campaign, err := ledger.Campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.ID == 0 {
		return nil, apperror.ErrNotFound("campaign")
	}
	return campaign, nil
}

// LoadAllCampaigns reads every campaign in [1, nextCampaignId) concurrently.
// A campaign whose read fails is skipped; the rest still load.
func (s *gatewayService) LoadAllCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	ledger, err := s.session.Ledger()
	if err != nil {
		return nil, err
	}

	next, err := ledger.NextCampaignID(ctx)
	if err != nil {
		return nil, err
	}
	if next <= 1 {
		return []domain.Campaign{}, nil
	}

	results := make([]*domain.Campaign, next-1)
	var wg sync.WaitGroup
	for id := uint64(1); id < next; id++ {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			campaign, err := ledger.Campaign(ctx, id)
			if err != nil {
				s.log.Warn().Err(err).Uint64("campaign_id", id).Msg("skipping unreadable campaign")
				return
			}
			results[id-1] = campaign
		}(id)
	}
	wg.Wait()

	campaigns := make([]domain.Campaign, 0, len(results))
	for _, c := range results {
		if c != nil {
			campaigns = append(campaigns, *c)
		}
	}
	sort.Slice(campaigns, func(i, j int) bool { return campaigns[i].ID < campaigns[j].ID })
	return campaigns, nil
}

// CampaignDetail reads one campaign together with its full donation,
// disbursement and comment records.
func (s *gatewayService) CampaignDetail(ctx context.Context, id uint64) (*ports.CampaignDetail, error) {
	ledger, err := s.session.Ledger()
	if err != nil {
		return nil, err
	}

	campaign, err := s.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.CampaignDetail{
		Campaign:      *campaign,
		Donations:     []domain.Donation{},
		Disbursements: []domain.Disbursement{},
		Comments:      []domain.Comment{},
	}

	donCount, err := ledger.DonationsCount(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < donCount; i++ {
		d, err := ledger.DonationAt(ctx, id, i)
		if err != nil {
			return nil, err
		}
		detail.Donations = append(detail.Donations, *d)
	}

	disCount, err := ledger.DisbursementsCount(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < disCount; i++ {
		d, err := ledger.DisbursementAt(ctx, id, i)
		if err != nil {
			return nil, err
		}
		detail.Disbursements = append(detail.Disbursements, *d)
	}

	comCount, err := ledger.CommentsCount(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < comCount; i++ {
		c, err := ledger.CommentAt(ctx, id, i)
		if err != nil {
			return nil, err
		}
		detail.Comments = append(detail.Comments, *c)
	}

	return detail, nil
}

// IsAdmin answers the UI-gating question only. It probes ledger liveness
// first and degrades to false on any failure; an unreachable ledger means
// "show no admin controls", never an error page.
func (s *gatewayService) IsAdmin(ctx context.Context, addr *common.Address) bool {
	ledger, err := s.session.Ledger()
	if err != nil {
		return false
	}

	// Liveness probe. A node that cannot answer the cheapest read cannot
	// answer the admin read either.
	if _, err := ledger.NextCampaignID(ctx); err != nil {
		s.log.Debug().Err(err).Msg("admin probe failed, degrading to non-admin")
		return false
	}

	account := s.session.Current().Account
	if addr != nil {
		account = *addr
	}

	ok, err := ledger.IsAdmin(ctx, account)
	if err != nil {
		s.log.Debug().Err(err).Msg("admin read failed, degrading to non-admin")
		return false
	}
	return ok
}

// CheckStatus answers the operator's explicit status query. Unlike IsAdmin,
// failures here surface directly: the operator asked and deserves the truth.
func (s *gatewayService) CheckStatus(ctx context.Context) (*ports.StatusReport, error) {
	ledger, err := s.session.Ledger()
	if err != nil {
		return nil, err
	}
	sess := s.session.Current()

	owner, err := ledger.Owner(ctx)
	if err != nil {
		return nil, err
	}
	isAdmin, err := ledger.IsAdmin(ctx, sess.Account)
	if err != nil {
		return nil, err
	}
	next, err := ledger.NextCampaignID(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.StatusReport{
		Account:         sess.Account,
		Owner:           owner,
		IsOwner:         sess.Account == owner,
		IsAdmin:         isAdmin,
		NextCampaignID:  next,
		ChainID:         sess.ChainID,
		NetworkOK:       sess.NetworkMatches(s.targetChainID),
		ContractAddress: s.contractAddress,
	}, nil
}

// writeLedger gates every write behind the connected-and-right-network check.
func (s *gatewayService) writeLedger() (ports.Ledger, error) {
	ledger, err := s.session.Ledger()
	if err != nil {
		return nil, err
	}
	sess := s.session.Current()
	if !sess.NetworkMatches(s.targetChainID) {
		return nil, apperror.ErrWrongNetwork(sess.ChainID, s.targetChainID)
	}
	return ledger, nil
}

// requireAdmin re-reads the admin flag for the session account. Fresh read,
// no cache: admin can be revoked between clicks.
func (s *gatewayService) requireAdmin(ctx context.Context, ledger ports.Ledger, action string) error {
	ok, err := ledger.IsAdmin(ctx, s.session.Current().Account)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.ErrPermissionDenied(action)
	}
	return nil
}

// requireOwner re-reads the contract owner and compares it to the session
// account.
func (s *gatewayService) requireOwner(ctx context.Context, ledger ports.Ledger, action string) error {
	owner, err := ledger.Owner(ctx)
	if err != nil {
		return err
	}
	if s.session.Current().Account != owner {
		return apperror.ErrPermissionDenied(action)
	}
	return nil
}

// CreateCampaign validates input, re-checks admin rights and submits one
// createCampaign transaction.
func (s *gatewayService) CreateCampaign(ctx context.Context, p ports.CreateCampaignParams) (*domain.TxReceipt, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, apperror.Validation("title is required")
	}
	if p.TargetAmount == nil || p.TargetAmount.Sign() <= 0 {
		return nil, apperror.Validation("target amount must be positive")
	}
	if p.Wallet == (common.Address{}) {
		return nil, apperror.Validation("campaign wallet is required")
	}

	ledger, err := s.writeLedger()
	if err != nil {
		return nil, err
	}
	if err := s.requireAdmin(ctx, ledger, "create campaign"); err != nil {
		s.recordAudit(ctx, domain.ActionCreateCampaign, nil, nil, err, p.Title)
		return nil, err
	}

	receipt, err := ledger.CreateCampaign(ctx, p)
	s.recordAudit(ctx, domain.ActionCreateCampaign, nil, receipt, err, p.Title)
	if err != nil {
		return nil, err
	}
	s.refreshAsync()
	return receipt, nil
}

// Donate sends the donation amount as transaction value. Any connected
// account may donate; the campaign itself enforces active status.
func (s *gatewayService) Donate(ctx context.Context, campaignID uint64, amount *big.Int) (*domain.TxReceipt, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, apperror.Validation("donation amount must be positive")
	}

	ledger, err := s.writeLedger()
	if err != nil {
		return nil, err
	}

	receipt, err := ledger.Donate(ctx, campaignID, amount)
	s.recordAudit(ctx, domain.ActionDonate, &campaignID, receipt, err, domain.FormatWei(amount))
	if err != nil {
		return nil, err
	}
	s.refreshAsync()
	return receipt, nil
}

// Disburse re-checks admin rights and pays out from the contract balance.
func (s *gatewayService) Disburse(ctx context.Context, campaignID uint64, recipient common.Address, amount *big.Int) (*domain.TxReceipt, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, apperror.Validation("disbursement amount must be positive")
	}
	if recipient == (common.Address{}) {
		return nil, apperror.Validation("recipient is required")
	}

	ledger, err := s.writeLedger()
	if err != nil {
		return nil, err
	}
	if err := s.requireAdmin(ctx, ledger, "disburse funds"); err != nil {
		s.recordAudit(ctx, domain.ActionDisburse, &campaignID, nil, err, domain.FormatWei(amount))
		return nil, err
	}

	receipt, err := ledger.Disburse(ctx, campaignID, recipient, amount)
	s.recordAudit(ctx, domain.ActionDisburse, &campaignID, receipt, err, domain.FormatWei(amount))
	if err != nil {
		return nil, err
	}
	s.refreshAsync()
	return receipt, nil
}

// SetCampaignActive re-checks admin rights and toggles the active flag.
func (s *gatewayService) SetCampaignActive(ctx context.Context, campaignID uint64, active bool) (*domain.TxReceipt, error) {
	ledger, err := s.writeLedger()
	if err != nil {
		return nil, err
	}
	if err := s.requireAdmin(ctx, ledger, "toggle campaign"); err != nil {
		s.recordAudit(ctx, domain.ActionSetCampaignActive, &campaignID, nil, err, "")
		return nil, err
	}

	receipt, err := ledger.SetCampaignActive(ctx, campaignID, active)
	s.recordAudit(ctx, domain.ActionSetCampaignActive, &campaignID, receipt, err, "")
	if err != nil {
		return nil, err
	}
	s.refreshAsync()
	return receipt, nil
}

// SetAdmin re-checks contract ownership and grants or revokes admin rights.
// Owner only: admins cannot mint other admins.
func (s *gatewayService) SetAdmin(ctx context.Context, addr common.Address, allowed bool) (*domain.TxReceipt, error) {
	if addr == (common.Address{}) {
		return nil, apperror.Validation("address is required")
	}

	ledger, err := s.writeLedger()
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, ledger, "manage admins"); err != nil {
		s.recordAudit(ctx, domain.ActionSetAdmin, nil, nil, err, addr.Hex())
		return nil, err
	}

	receipt, err := ledger.SetAdmin(ctx, addr, allowed)
	s.recordAudit(ctx, domain.ActionSetAdmin, nil, receipt, err, addr.Hex())
	if err != nil {
		return nil, err
	}
	// Admin flags do not appear on the dashboard, nothing to refresh.
	return receipt, nil
}

// AddComment appends a comment. Social writes trigger a targeted refresh of
// the affected campaign only.
func (s *gatewayService) AddComment(ctx context.Context, campaignID uint64, text string, anonymous bool) (*domain.TxReceipt, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperror.Validation("comment text is required")
	}

	ledger, err := s.writeLedger()
	if err != nil {
		return nil, err
	}

	receipt, err := ledger.AddComment(ctx, campaignID, text, anonymous)
	s.recordAudit(ctx, domain.ActionAddComment, &campaignID, receipt, err, "")
	if err != nil {
		return nil, err
	}
	s.refreshCampaignAsync(campaignID)
	return receipt, nil
}

// Like records a like.
func (s *gatewayService) Like(ctx context.Context, campaignID uint64) (*domain.TxReceipt, error) {
	ledger, err := s.writeLedger()
	if err != nil {
		return nil, err
	}

	receipt, err := ledger.Like(ctx, campaignID)
	s.recordAudit(ctx, domain.ActionLike, &campaignID, receipt, err, "")
	if err != nil {
		return nil, err
	}
	s.refreshCampaignAsync(campaignID)
	return receipt, nil
}

// Unlike removes a like.
func (s *gatewayService) Unlike(ctx context.Context, campaignID uint64) (*domain.TxReceipt, error) {
	ledger, err := s.writeLedger()
	if err != nil {
		return nil, err
	}

	receipt, err := ledger.Unlike(ctx, campaignID)
	s.recordAudit(ctx, domain.ActionUnlike, &campaignID, receipt, err, "")
	if err != nil {
		return nil, err
	}
	s.refreshCampaignAsync(campaignID)
	return receipt, nil
}

// recordAudit writes one audit entry for a write attempt. Preconditions that
// failed before submission audit as rejected with no tx hash.
func (s *gatewayService) recordAudit(ctx context.Context, action domain.WriteAction, campaignID *uint64, receipt *domain.TxReceipt, opErr error, details string) {
	entry := &domain.WriteAudit{
		ID:         uuid.New(),
		Operator:   s.session.Current().Account.Hex(),
		Action:     action,
		CampaignID: campaignID,
		Status:     domain.WriteStatusConfirmed,
		Details:    details,
		CreatedAt:  time.Now().UTC(),
	}
	if receipt != nil {
		entry.TxHash = receipt.TxHash
	}
	if opErr != nil {
		entry.Status = domain.WriteStatusRejected
	}
	s.audit.Record(ctx, entry)
}

// refreshAsync triggers a best-effort full re-aggregation after a confirmed
// monetary write. The write already succeeded; a failed refresh only delays
// the dashboard until the next trigger.
func (s *gatewayService) refreshAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if _, err := s.aggregator.Refresh(ctx); err != nil {
			s.log.Warn().Err(err).Msg("post-write aggregation refresh failed")
		}
	}()
}

func (s *gatewayService) refreshCampaignAsync(id uint64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if _, err := s.aggregator.RefreshCampaign(ctx, id); err != nil {
			s.log.Warn().Err(err).Uint64("campaign_id", id).Msg("post-write campaign refresh failed")
		}
	}()
}
