package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"opportunityhub/internal/domain"
	"opportunityhub/internal/repository"
	"opportunityhub/internal/service"
)

type AlertHandler struct {
	alerts *service.AlertService
	prefs  repository.PreferencesRepository
	users  repository.UserRepository
}

func NewAlertHandler(
	alerts *service.AlertService,
	prefs repository.PreferencesRepository,
	users repository.UserRepository,
) *AlertHandler {
	return &AlertHandler{alerts: alerts, prefs: prefs, users: users}
}

// CreateUser registers an alert recipient.
func (h *AlertHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.users.Create(payload.Email)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			writeError(w, http.StatusBadRequest, "email is required")
			return
		}
		log.Printf("Error creating user: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// UpdatePreferences upserts a user's interest profile.
func (h *AlertHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	var payload struct {
		Regions       string `json:"regions"`
		Types         string `json:"types"`
		Keywords      string `json:"keywords"`
		AlertChannels string `json:"alert_channels"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	prefs := &domain.UserPreferences{
		UserID:        userID,
		Regions:       payload.Regions,
		Types:         payload.Types,
		Keywords:      payload.Keywords,
		AlertChannels: payload.AlertChannels,
	}
	if err := h.prefs.Upsert(prefs); err != nil {
		log.Printf("Error upserting preferences for user %d: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "failed to save preferences")
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

// Generate enqueues alerts for a user.
func (h *AlertHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	generated, err := h.alerts.Generate(userID, limit)
	if err != nil {
		log.Printf("Error generating alerts for user %d: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "failed to generate alerts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"generated": generated})
}

// Deliver drains one batch of pending email alerts.
func (h *AlertHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	sent, err := h.alerts.DeliverPending()
	if err != nil {
		log.Printf("Error delivering alerts: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to deliver alerts")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"sent": sent})
}

func pathUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "user id must be a positive integer")
		return 0, false
	}
	return userID, true
}
