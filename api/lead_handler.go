package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/database"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/errs"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/models"
	"github.com/ourdigitalstory0-sys/liferepublic-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type leadHandler struct {
	responder Responder
	logger    zerolog.Logger
	leadRepo  *database.LeadRepo
	notifier  *services.LeadNotifier
}

func newLeadHandler(leadRepo *database.LeadRepo, notifier *services.LeadNotifier) leadHandler {
	logger := log.With().Str("handlerName", "leadHandler").Logger()

	return leadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		leadRepo:  leadRepo,
		notifier:  notifier,
	}
}

// LeadListResponse carries one page of leads plus the matching total
type LeadListResponse struct {
	Leads []*models.Lead `json:"leads"`
	Total int64          `json:"total"`
}

// createLead captures an enquiry from one of the public forms
// @Summary Create lead
// @Description Persists the lead, then dispatches the email relay and SMS notifications without awaiting them; notification failure never fails the request
// @Tags Leads
// @Accept json
// @Produce json
// @Param lead body models.Lead true "Lead data"
// @Success 201 {object} models.Lead "Created lead"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing name or phone"
// @Router /lead [post]
func (h leadHandler) createLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var lead models.Lead
		if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode lead request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if lead.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}
		if lead.Phone == "" {
			h.responder.WriteError(w, errs.NewValidationError("phone", "phone is required"))
			return
		}

		// Status and ID are server-assigned regardless of what the form sent
		lead.ID = 0
		lead.Status = models.LeadStatusNew

		if err := h.leadRepo.Add(&lead); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "lead", err))
			return
		}

		// The insert is the source of truth; notification is advisory and
		// runs detached so a slow or dead relay cannot block the response.
		go h.notifier.Notify(lead)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, lead)
	}
}

// listLeads returns leads for the admin panel, newest first
func (h leadHandler) listLeads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit := pageParams(r)
		search := r.URL.Query().Get("search")

		total, err := h.leadRepo.Count(search)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "leads", err))
			return
		}

		leads, err := h.leadRepo.List(page, limit, search)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "leads", err))
			return
		}

		h.responder.WriteJSON(w, LeadListResponse{Leads: leads, Total: total})
	}
}

// updateLeadStatus moves a lead between New, Contacted and Closed. Setting
// the current status again is a no-op, so the operation is idempotent.
func (h leadHandler) updateLeadStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leadID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if !models.ValidLeadStatus(body.Status) {
			h.responder.WriteError(w, errs.NewValidationError("status", "unknown lead status"))
			return
		}

		if _, err := h.leadRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "lead", err))
			return
		}

		if err := h.leadRepo.UpdateStatus(id, body.Status); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "lead", err))
			return
		}

		updated, err := h.leadRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "lead", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h leadHandler) deleteLead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := leadID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.leadRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "lead", err))
			return
		}

		if err := h.leadRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "lead", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "lead deleted successfully",
		})
	}
}

func leadID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "leadID")
	if raw == "" {
		return 0, errs.NewBadRequestError("missing leadID")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid leadID")
	}
	return uint(id), nil
}
