package postgres

import (
	"context"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports"
)

type auditRepo struct {
	pool Pool
}

// NewAuditRepository creates a PostgreSQL-backed AuditRepository.
func NewAuditRepository(pool Pool) ports.AuditRepository {
	return &auditRepo{pool: pool}
}

func (r *auditRepo) Create(ctx context.Context, entry *domain.WriteAudit) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO write_audits (id, operator, action, campaign_id, tx_hash, status, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.Operator, string(entry.Action), entry.CampaignID,
		entry.TxHash, string(entry.Status), entry.Details, entry.CreatedAt,
	)
	return err
}
