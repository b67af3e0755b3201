package handler

import (
	"log"
	"net/http"
	"strconv"

	"opportunityhub/internal/domain"
	"opportunityhub/internal/enrich"
	"opportunityhub/internal/repository"
	"opportunityhub/internal/service"
)

type OpportunityHandler struct {
	opportunities *service.OpportunityService
	sources       repository.SourceRepository
	pageSize      int
}

func NewOpportunityHandler(
	opportunities *service.OpportunityService,
	sources repository.SourceRepository,
	pageSize int,
) *OpportunityHandler {
	if pageSize <= 0 {
		pageSize = 24
	}
	return &OpportunityHandler{
		opportunities: opportunities,
		sources:       sources,
		pageSize:      pageSize,
	}
}

// List serves the enriched opportunity list with optional q/region/
// type filters. May kick off a background refresh; never waits for it.
func (h *OpportunityHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := h.pageSize
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	userID := 0
	if raw := query.Get("user_id"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "user_id must be a positive integer")
			return
		}
		userID = n
	}

	opps, err := h.opportunities.GetLive(userID, limit, false)
	if err != nil {
		log.Printf("Error listing opportunities: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load opportunities")
		return
	}

	opps = enrich.Filter(opps, query.Get("q"), query.Get("region"), query.Get("type"))
	if opps == nil {
		opps = []domain.EnrichedOpportunity{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"opportunities": opps,
		"count":         len(opps),
	})
}

// Refresh requests an asynchronous refresh and reports whether one was
// started or already running.
func (h *OpportunityHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	started := h.opportunities.RefreshAsync()
	writeJSON(w, http.StatusAccepted, map[string]bool{"started": started})
}

// ListSources exposes the source registry for operators.
func (h *OpportunityHandler) ListSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.sources.GetAll()
	if err != nil {
		log.Printf("Error listing sources: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load sources")
		return
	}
	if sources == nil {
		sources = []domain.Source{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"sources": sources})
}
