package service

import (
	"context"
	"sync"
	"time"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports"
	"charity-ledger-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// sessionService implements ports.SessionService. It owns the single ledger
// handle: exactly one connection exists at a time and every other service
// reaches the ledger through here.
type sessionService struct {
	connector ports.LedgerConnector
	log       zerolog.Logger

	mu      sync.RWMutex
	session domain.Session
	ledger  ports.Ledger
}

// NewSessionService creates a new session service. The session starts
// disconnected; nothing dials until Connect is called.
func NewSessionService(connector ports.LedgerConnector, log zerolog.Logger) ports.SessionService {
	return &sessionService{
		connector: connector,
		log:       log,
		session:   domain.Session{State: domain.SessionDisconnected},
	}
}

// Connect dials the ledger and binds the signer account. Calling Connect on
// an already connected session drops the old handle and reconnects.
func (s *sessionService) Connect(ctx context.Context) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger != nil {
		s.ledger.Close()
		s.ledger = nil
	}
	s.session = domain.Session{State: domain.SessionConnecting}

	ledger, info, err := s.connector.Connect(ctx)
	if err != nil {
		s.session = domain.Session{State: domain.SessionDisconnected}
		s.log.Warn().Err(err).Msg("ledger connection failed")
		return nil, err
	}

	s.ledger = ledger
	s.session = domain.Session{
		State:       domain.SessionConnected,
		Account:     info.Account,
		ChainID:     info.ChainID,
		ConnectedAt: time.Now(),
	}

	s.log.Info().
		Str("account", info.Account.Hex()).
		Int64("chain_id", info.ChainID).
		Msg("session connected")

	current := s.session
	return &current, nil
}

// Disconnect drops the ledger handle. Safe to call when never connected.
func (s *sessionService) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ledger != nil {
		s.ledger.Close()
		s.ledger = nil
		s.log.Info().Msg("session disconnected")
	}
	s.session = domain.Session{State: domain.SessionDisconnected}
}

// Current returns a copy of the session state.
func (s *sessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Ledger returns the bound client, or ErrGatewayUnavailable when the session
// is not connected.
func (s *sessionService) Ledger() (ports.Ledger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session.State != domain.SessionConnected || s.ledger == nil {
		return nil, apperror.ErrGatewayUnavailable()
	}
	return s.ledger, nil
}
