package ports

import (
	"context"

	"charity-ledger-gateway/internal/core/domain"
)

// AuditRepository persists the operator write-audit trail.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.WriteAudit) error
}
