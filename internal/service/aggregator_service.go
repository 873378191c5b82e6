package service

import (
	"context"
	"math/big"
	"sort"
	"sync"
	"time"

	"charity-ledger-gateway/internal/core/domain"
	"charity-ledger-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// feedLimit caps the merged recent-activity feed on the dashboard.
	feedLimit = 7
	// perCampaignSample is how many of the newest donations and disbursements
	// each campaign contributes to the feed.
	perCampaignSample = 3
)

// aggregatorService implements ports.AggregatorService. The ledger stays the
// only authority: a pass derives everything from fresh reads and publishes
// the result as one immutable snapshot.
type aggregatorService struct {
	session ports.SessionService
	log     zerolog.Logger

	passMu sync.Mutex // serializes aggregation passes

	snapMu   sync.RWMutex
	snapshot *domain.AggregateView
}

// NewAggregatorService creates a new dashboard aggregator with an empty
// initial snapshot.
func NewAggregatorService(session ports.SessionService, log zerolog.Logger) ports.AggregatorService {
	return &aggregatorService{
		session:  session,
		log:      log,
		snapshot: domain.EmptyAggregateView(),
	}
}

// campaignSlot carries one campaign's reads out of the fan-out. A nil
// campaign means the read failed and the slot is dropped from the pass.
type campaignSlot struct {
	campaign  *domain.Campaign
	donations int64
	activity  []domain.ActivityEntry
}

// Refresh runs one full aggregation pass. Passes serialize; concurrent
// callers queue up rather than interleave. The snapshot swaps atomically so
// readers never observe a half-built view.
func (s *aggregatorService) Refresh(ctx context.Context) (*domain.AggregateView, error) {
	s.passMu.Lock()
	defer s.passMu.Unlock()

	ledger, err := s.session.Ledger()
	if err != nil {
		return nil, err
	}

	next, err := ledger.NextCampaignID(ctx)
	if err != nil {
		return nil, err
	}

	// Campaign ids live in [1, next). Fan out one worker per id; a campaign
	// whose read fails is skipped, it does not fail the pass.
	slots := make([]campaignSlot, 0)
	if next > 1 {
		slots = make([]campaignSlot, next-1)
		var wg sync.WaitGroup
		for id := uint64(1); id < next; id++ {
			wg.Add(1)
			go func(id uint64) {
				defer wg.Done()
				slots[id-1] = s.readCampaign(ctx, ledger, id)
			}(id)
		}
		wg.Wait()
	}

	view := &domain.AggregateView{
		PassID:         uuid.New(),
		GeneratedAt:    time.Now(),
		TotalCollected: new(big.Int),
	}
	for _, slot := range slots {
		if slot.campaign == nil {
			continue
		}
		view.Campaigns = append(view.Campaigns, *slot.campaign)
		view.TotalCollected.Add(view.TotalCollected, slot.campaign.Collected)
		view.TotalDonations += slot.donations
		view.RecentActivity = append(view.RecentActivity, slot.activity...)
	}
	view.TotalCampaigns = len(view.Campaigns)

	sort.Slice(view.RecentActivity, func(i, j int) bool {
		return view.RecentActivity[i].Timestamp > view.RecentActivity[j].Timestamp
	})
	if len(view.RecentActivity) > feedLimit {
		view.RecentActivity = view.RecentActivity[:feedLimit]
	}

	s.publish(view)

	s.log.Info().
		Str("pass_id", view.PassID.String()).
		Int("campaigns", view.TotalCampaigns).
		Int64("donations", view.TotalDonations).
		Msg("aggregation pass published")

	return view, nil
}

// readCampaign gathers one campaign plus its feed sample. A failed campaign
// read drops the slot; failed sub-reads degrade to a campaign without feed
// entries.
func (s *aggregatorService) readCampaign(ctx context.Context, ledger ports.Ledger, id uint64) campaignSlot {
	campaign, err := ledger.Campaign(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Uint64("campaign_id", id).Msg("skipping unreadable campaign")
		return campaignSlot{}
	}

	slot := campaignSlot{campaign: campaign}

	donCount, err := ledger.DonationsCount(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Uint64("campaign_id", id).Msg("donation count unavailable")
	} else {
		slot.donations = int64(donCount)
		for _, idx := range sampleIndexes(donCount) {
			d, err := ledger.DonationAt(ctx, id, idx)
			if err != nil {
				s.log.Warn().Err(err).Uint64("campaign_id", id).Uint64("index", idx).Msg("donation read failed")
				continue
			}
			slot.activity = append(slot.activity, domain.ActivityFromDonation(*d))
		}
	}

	disCount, err := ledger.DisbursementsCount(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Uint64("campaign_id", id).Msg("disbursement count unavailable")
	} else {
		for _, idx := range sampleIndexes(disCount) {
			d, err := ledger.DisbursementAt(ctx, id, idx)
			if err != nil {
				s.log.Warn().Err(err).Uint64("campaign_id", id).Uint64("index", idx).Msg("disbursement read failed")
				continue
			}
			slot.activity = append(slot.activity, domain.ActivityFromDisbursement(*d))
		}
	}

	return slot
}

// sampleIndexes returns the newest perCampaignSample record indexes, newest
// first. Records append on chain, so the newest sit at the tail.
func sampleIndexes(count uint64) []uint64 {
	var idxs []uint64
	for i := uint64(0); i < perCampaignSample && i < count; i++ {
		idxs = append(idxs, count-1-i)
	}
	return idxs
}

// RefreshCampaign re-reads a single campaign and patches it into the current
// snapshot. Used for targeted reconciliation where a full pass would be
// wasteful.
func (s *aggregatorService) RefreshCampaign(ctx context.Context, id uint64) (*domain.Campaign, error) {
	ledger, err := s.session.Ledger()
	if err != nil {
		return nil, err
	}

	campaign, err := ledger.Campaign(ctx, id)
	if err != nil {
		return nil, err
	}

	s.snapMu.Lock()
	old := s.snapshot
	view := &domain.AggregateView{
		PassID:         old.PassID,
		GeneratedAt:    time.Now(),
		TotalDonations: old.TotalDonations,
		RecentActivity: old.RecentActivity,
		Campaigns:      make([]domain.Campaign, len(old.Campaigns)),
		TotalCollected: new(big.Int),
	}
	copy(view.Campaigns, old.Campaigns)

	patched := false
	for i := range view.Campaigns {
		if view.Campaigns[i].ID == id {
			view.Campaigns[i] = *campaign
			patched = true
			break
		}
	}
	if !patched {
		view.Campaigns = append(view.Campaigns, *campaign)
		sort.Slice(view.Campaigns, func(i, j int) bool { return view.Campaigns[i].ID < view.Campaigns[j].ID })
	}
	for i := range view.Campaigns {
		view.TotalCollected.Add(view.TotalCollected, view.Campaigns[i].Collected)
	}
	view.TotalCampaigns = len(view.Campaigns)
	s.snapshot = view
	s.snapMu.Unlock()

	return campaign, nil
}

// Snapshot returns the last published view without touching the ledger.
func (s *aggregatorService) Snapshot() *domain.AggregateView {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.snapshot
}

func (s *aggregatorService) publish(view *domain.AggregateView) {
	s.snapMu.Lock()
	s.snapshot = view
	s.snapMu.Unlock()
}
