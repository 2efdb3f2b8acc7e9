package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/scaffold"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, scaffold.ErrInhabitantNotFound),
		errors.Is(err, scaffold.ErrDinnerEventNotFound),
		errors.Is(err, scaffold.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, storage.ErrNoActiveSeason):
		return http.StatusUnprocessableEntity
	case errors.Is(err, storage.ErrInvalidSeason),
		errors.Is(err, storage.ErrInvalidPreferences),
		errors.Is(err, scaffold.ErrDuplicateDesiredOrder),
		errors.Is(err, scaffold.ErrOrderKeyMismatch),
		errors.Is(err, scaffold.ErrEventOutsideSeason),
		errors.Is(err, scaffold.ErrInvalidDinnerMode):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// fail writes err with the status its kind maps to. Internal errors are
// logged and hidden from the caller.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		metrics.OperationErrorsTotal.WithLabelValues(op).Inc()
		s.logger.Error("request failed", zap.String("operation", op), zap.String("path", r.URL.Path), zap.Error(err))
		respondError(w, status, "Error: internal error")
		return
	}
	respondError(w, status, "Error: "+err.Error())
}

// decode reads a JSON body into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Validation Failed: "+err.Error())
		return false
	}
	return true
}

func (s *Server) handleCreateSeason(w http.ResponseWriter, r *http.Request) {
	var draft storage.SeasonDraft
	if !s.decode(w, r, &draft) {
		return
	}

	res, err := s.storage.CreateSeason(r.Context(), draft)
	if err != nil {
		s.fail(w, r, "create_season", err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

func (s *Server) handleUpdateSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var draft storage.SeasonDraft
	if !s.decode(w, r, &draft) {
		return
	}

	res, err := s.storage.UpdateSeason(r.Context(), id, draft)
	if err != nil {
		s.fail(w, r, "update_season", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleRebuildSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.storage.RebuildTeamSchedule(r.Context(), id)
	if err != nil {
		s.fail(w, r, "rebuild_schedule", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleTeamRoster(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	roster, err := s.storage.TeamRoster(r.Context(), id)
	if err != nil {
		s.fail(w, r, "team_roster", err)
		return
	}
	respondJSON(w, http.StatusOK, roster)
}

// handleHeal runs as a dry run unless dry_run=false is passed explicitly.
func (s *Server) handleHeal(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	dryRun := true
	if raw := r.URL.Query().Get("dry_run"); raw != "" {
		dryRun, err = strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid value for 'dry_run' parameter")
			return
		}
	}

	report, err := s.storage.Heal(r.Context(), id, dryRun)
	if err != nil {
		s.fail(w, r, "heal", err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Preferences *weekday.Map[scaffold.DinnerMode] `json:"preferences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := s.storage.UpdatePreferences(r.Context(), id, req.Preferences)
	if err != nil {
		s.fail(w, r, "update_preferences", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	inhabitantID, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	eventID, err := pathID(r, "eventID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	history, err := s.storage.OrderHistory(r.Context(), inhabitantID, eventID)
	if err != nil {
		s.fail(w, r, "order_history", err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	var req storage.BookingRequest
	if !s.decode(w, r, &req) {
		return
	}
	req.ActorID = userFromContext(r.Context())

	res, err := s.storage.Book(r.Context(), req)
	if err != nil {
		s.fail(w, r, "book", err)
		return
	}
	status := http.StatusOK
	if res.Counts.Created > 0 {
		status = http.StatusCreated
	}
	respondJSON(w, status, res)
}

func (s *Server) handleHouseholdOrders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	orders, err := s.storage.HouseholdOrders(r.Context(), id)
	if err != nil {
		s.fail(w, r, "household_orders", err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleHeadcount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	counts, err := s.storage.Headcount(r.Context(), id)
	if err != nil {
		s.fail(w, r, "headcount", err)
		return
	}
	respondJSON(w, http.StatusOK, counts)
}

func (s *Server) handleScaffoldHousehold(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := s.storage.ScaffoldHousehold(r.Context(), id)
	if err != nil {
		s.fail(w, r, "scaffold_household", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) handleScaffoldAll(w http.ResponseWriter, r *http.Request) {
	summary, err := s.storage.ScaffoldAll(r.Context())
	if err != nil {
		s.fail(w, r, "scaffold_all", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
