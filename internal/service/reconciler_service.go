package service

import (
	"context"
	"sync"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// reconcilerService implements ports.Reconciler. Events are pure triggers:
// the payload is never written into the view, it only decides how much to
// re-read. Missing an event therefore costs freshness, not correctness.
type reconcilerService struct {
	session    ports.SessionService
	aggregator ports.AggregatorService
	log        zerolog.Logger

	mu       sync.Mutex
	attached bool
	cancel   context.CancelFunc
	gen      uint64 // bumped per attach; a stale consumer must not tear down its successor
}

// NewReconciler creates a new event reconciler.
func NewReconciler(session ports.SessionService, aggregator ports.AggregatorService, log zerolog.Logger) ports.Reconciler {
	return &reconcilerService{
		session:    session,
		aggregator: aggregator,
		log:        log,
	}
}

// Attach opens the event subscription and starts the consumer. Idempotent:
// attaching while attached is a no-op and never opens a second subscription.
func (r *reconcilerService) Attach(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.attached {
		return nil
	}

	ledger, err := r.session.Ledger()
	if err != nil {
		return err
	}

	// The consumer outlives the attach request, so it runs under its own
	// cancellable context rather than the caller's.
	runCtx, cancel := context.WithCancel(context.Background())
	events, err := ledger.SubscribeEvents(runCtx)
	if err != nil {
		cancel()
		return err
	}

	r.gen++
	r.cancel = cancel
	r.attached = true
	go r.consume(runCtx, r.gen, events)

	r.log.Info().Msg("reconciler attached to ledger events")
	return nil
}

// Detach stops the consumer. Safe to call when never attached.
func (r *reconcilerService) Detach() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.attached {
		return
	}
	r.cancel()
	r.cancel = nil
	r.attached = false
	r.log.Info().Msg("reconciler detached")
}

// Attached reports whether the consumer is running.
func (r *reconcilerService) Attached() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attached
}

// consume drains the event channel until it closes, then marks the
// reconciler detached so a later Attach can resubscribe. The cleanup only
// touches shared state while this consumer is still the current generation:
// after Detach->Attach the old channel drains asynchronously, and its exit
// must not cancel the fresh subscription.
func (r *reconcilerService) consume(ctx context.Context, gen uint64, events <-chan domain.Event) {
	defer func() {
		r.mu.Lock()
		if r.gen == gen {
			if r.cancel != nil {
				r.cancel()
				r.cancel = nil
			}
			r.attached = false
		}
		r.mu.Unlock()
	}()

	for ev := range events {
		r.handle(ctx, ev)
	}
	r.log.Info().Msg("ledger event stream closed")
}

// handle maps one event onto a refresh. Monetary events invalidate totals
// and the feed, so they trigger a full pass; social events only touch one
// campaign record. A panicking refresh loses that one event, not the stream.
func (r *reconcilerService) handle(ctx context.Context, ev domain.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().Interface("panic", rec).Str("kind", string(ev.Kind)).Msg("event handler panicked")
		}
	}()

	r.log.Debug().
		Str("kind", string(ev.Kind)).
		Uint64("campaign_id", ev.CampaignID).
		Str("tx_hash", ev.TxHash).
		Msg("ledger event received")

	if ev.RequiresFullRefresh() {
		if _, err := r.aggregator.Refresh(ctx); err != nil {
			r.log.Warn().Err(err).Str("kind", string(ev.Kind)).Msg("event-triggered refresh failed")
		}
		return
	}

	if _, err := r.aggregator.RefreshCampaign(ctx, ev.CampaignID); err != nil {
		r.log.Warn().Err(err).Uint64("campaign_id", ev.CampaignID).Msg("event-triggered campaign refresh failed")
	}
}
