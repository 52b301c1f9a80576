package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sprintertech/signet-orders/bundle"
	"github.com/sprintertech/signet-orders/store"
)

const DEFAULT_OUTCOME_LIMIT = 100

type BundleStore interface {
	Bundle(id uuid.UUID) (*bundle.Bundle, error)
	Pending() []*bundle.Bundle
}

type OutcomeStore interface {
	Outcomes(ctx context.Context, limit int) ([]store.Outcome, error)
	Counts(ctx context.Context) (map[string]int, error)
}

type StatusHandler struct {
	bundles  BundleStore
	outcomes OutcomeStore
}

func NewStatusHandler(bundles BundleStore, outcomes OutcomeStore) *StatusHandler {
	return &StatusHandler{
		bundles:  bundles,
		outcomes: outcomes,
	}
}

// HandleBundle returns the status of a bundle submitted by this filler
func (h *StatusHandler) HandleBundle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["bundleId"])
	if err != nil {
		JSONError(w, fmt.Errorf("invalid bundle id: %s", err), http.StatusBadRequest)
		return
	}

	b, err := h.bundles.Bundle(id)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	JSONResponse(w, b.Status())
}

func (h *StatusHandler) HandlePending(w http.ResponseWriter, r *http.Request) {
	pending := h.bundles.Pending()
	statuses := make([]bundle.Status, len(pending))
	for i, b := range pending {
		statuses[i] = b.Status()
	}

	JSONResponse(w, statuses)
}

// HandleOutcomes returns the most recent journaled bundle outcomes
func (h *StatusHandler) HandleOutcomes(w http.ResponseWriter, r *http.Request) {
	limit := DEFAULT_OUTCOME_LIMIT
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed <= 0 {
			JSONError(w, fmt.Errorf("invalid limit %s", l), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	outcomes, err := h.outcomes.Outcomes(r.Context(), limit)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, outcomes)
}

// HandleCounts returns the number of journaled bundles per final state
func (h *StatusHandler) HandleCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.outcomes.Counts(r.Context())
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	JSONResponse(w, counts)
}
