package service

import (
	"context"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit entries are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record stores an audit entry asynchronously (fire-and-forget). The write
// path must never block or fail because the audit trail is unhappy.
func (s *auditService) Record(ctx context.Context, entry *domain.WriteAudit) {
	go func() {
		evt := s.log.Info().
			Str("operator", entry.Operator).
			Str("action", string(entry.Action)).
			Str("status", string(entry.Status))
		if entry.CampaignID != nil {
			evt = evt.Uint64("campaign_id", *entry.CampaignID)
		}
		if entry.TxHash != "" {
			evt = evt.Str("tx_hash", entry.TxHash)
		}
		evt.Msg("write audit")

		if s.repo != nil {
			if err := s.repo.Create(context.Background(), entry); err != nil {
				s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist write audit")
			}
		}
	}()
}
