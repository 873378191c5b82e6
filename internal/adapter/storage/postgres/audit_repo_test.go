package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"charity-ledger-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAudit() *domain.WriteAudit {
	cid := uint64(3)
	return &domain.WriteAudit{
		ID:         uuid.New(),
		Operator:   "0x1e2f3a4b5c6d7e8f9a0b1c2d3e4f5a6b7c8d9e0f",
		Action:     domain.ActionDisburse,
		CampaignID: &cid,
		TxHash:     "0xdeadbeef",
		Status:     domain.WriteStatusConfirmed,
		Details:    "amount=2.5",
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	entry := newTestAudit()

	mock.ExpectExec("INSERT INTO write_audits").
		WithArgs(entry.ID, entry.Operator, string(entry.Action), entry.CampaignID,
			entry.TxHash, string(entry.Status), entry.Details, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_NilCampaignID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	entry := newTestAudit()
	entry.Action = domain.ActionSetAdmin
	entry.CampaignID = nil

	mock.ExpectExec("INSERT INTO write_audits").
		WithArgs(entry.ID, entry.Operator, string(entry.Action), entry.CampaignID,
			entry.TxHash, string(entry.Status), entry.Details, entry.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_DBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	entry := newTestAudit()

	mock.ExpectExec("INSERT INTO write_audits").
		WithArgs(entry.ID, entry.Operator, string(entry.Action), entry.CampaignID,
			entry.TxHash, string(entry.Status), entry.Details, entry.CreatedAt).
		WillReturnError(errors.New("connection reset"))

	err = repo.Create(context.Background(), entry)
	assert.Error(t, err)
}

func TestHealthCheck_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", hc.Name())

	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	assert.NoError(t, hc.Ping(context.Background()))
}
