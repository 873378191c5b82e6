package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuditService_RecordPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepository(ctrl)

	entry := &domain.WriteAudit{
		ID:       uuid.New(),
		Operator: testAccount.Hex(),
		Action:   domain.ActionDonate,
		Status:   domain.WriteStatusConfirmed,
	}

	persisted := make(chan struct{})
	repo.EXPECT().Create(gomock.Any(), entry).DoAndReturn(func(context.Context, *domain.WriteAudit) error {
		close(persisted)
		return nil
	})

	svc := NewAuditService(repo, zerolog.Nop())
	svc.Record(context.Background(), entry)

	select {
	case <-persisted:
	case <-time.After(2 * time.Second):
		t.Fatal("expected audit entry to reach the repository")
	}
}

func TestAuditService_RepoFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAuditRepository(ctrl)

	done := make(chan struct{})
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *domain.WriteAudit) error {
		close(done)
		return errors.New("db down")
	})

	svc := NewAuditService(repo, zerolog.Nop())
	svc.Record(context.Background(), &domain.WriteAudit{ID: uuid.New(), Action: domain.ActionLike})
	<-done
}

func TestAuditService_NilRepoLogsOnly(t *testing.T) {
	svc := NewAuditService(nil, zerolog.Nop())
	// Must not panic with no repository wired.
	svc.Record(context.Background(), &domain.WriteAudit{ID: uuid.New(), Action: domain.ActionUnlike})
	time.Sleep(10 * time.Millisecond)
	require.True(t, true)
}
