package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"opportunityhub/internal/domain"
	"opportunityhub/internal/enrich"
	"opportunityhub/internal/ingest"
	"opportunityhub/internal/repository"
)

// OpportunityService serves the opportunity read path. Reads never
// block on refresh: when the cache is empty or stale a background
// refresh is triggered and the caller gets whatever is available now,
// falling back to the static seed list.
type OpportunityService struct {
	sources     repository.SourceRepository
	opps        repository.OpportunityRepository
	prefs       repository.PreferencesRepository
	coordinator *ingest.Coordinator
	staleness   time.Duration
	autoRefresh bool
}

func NewOpportunityService(
	sources repository.SourceRepository,
	opps repository.OpportunityRepository,
	prefs repository.PreferencesRepository,
	coordinator *ingest.Coordinator,
	staleness time.Duration,
	autoRefresh bool,
) *OpportunityService {
	return &OpportunityService{
		sources:     sources,
		opps:        opps,
		prefs:       prefs,
		coordinator: coordinator,
		staleness:   staleness,
		autoRefresh: autoRefresh,
	}
}

// GetLive returns the current enriched opportunity list for a user.
// userID 0 means anonymous: no preferences, every relevance score 0.
func (s *OpportunityService) GetLive(userID, limit int, includeUnapproved bool) ([]domain.EnrichedOpportunity, error) {
	s.maybeTriggerRefresh()

	opps, err := s.opps.GetRecent(limit, includeUnapproved)
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunities: %w", err)
	}

	if len(opps) == 0 {
		opps = enrich.Seeds()
		if limit > 0 && len(opps) > limit {
			opps = opps[:limit]
		}
	}

	prefs := s.loadPreferences(userID)
	return enrich.Enrich(opps, prefs), nil
}

// RefreshAsync requests a background refresh; false means one is
// already in flight.
func (s *OpportunityService) RefreshAsync() bool {
	return s.coordinator.TriggerAsync()
}

// maybeTriggerRefresh applies the trigger policy: an empty cache
// always refreshes; a stale cache refreshes only when auto-refresh is
// on. Policy-check errors are logged, never surfaced — the read path
// serves what it has.
func (s *OpportunityService) maybeTriggerRefresh() {
	hasActive, err := s.sources.HasActive()
	if err != nil {
		log.Printf("Warning: could not check active sources: %v", err)
		return
	}
	if !hasActive {
		return
	}

	count, err := s.opps.CountAll()
	if err != nil {
		log.Printf("Warning: could not count cached opportunities: %v", err)
		return
	}
	if count == 0 {
		s.coordinator.TriggerAsync()
		return
	}

	if !s.autoRefresh {
		return
	}
	latest, err := s.sources.LatestFetch()
	if err != nil {
		log.Printf("Warning: could not read latest fetch time: %v", err)
		return
	}
	if latest != nil && time.Since(*latest) > s.staleness {
		s.coordinator.TriggerAsync()
	}
}

func (s *OpportunityService) loadPreferences(userID int) *domain.UserPreferences {
	if userID <= 0 {
		return nil
	}
	prefs, err := s.prefs.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, domain.ErrPreferencesNotFound) {
			log.Printf("Warning: could not load preferences for user %d: %v", userID, err)
		}
		return nil
	}
	return prefs
}
