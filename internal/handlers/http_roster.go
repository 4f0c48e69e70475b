package handlers

import (
	"net/http"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

type updateSlotRequest struct {
	Primary    string `json:"primary"`
	Backup     string `json:"backup"`
	Kanban     string `json:"kanban"`
	Monitoring string `json:"monitoring"`
}

// GET /api/v1/roster?department=
func (h *HTTPHandler) handleListRoster(w http.ResponseWriter, r *http.Request) {
	var dept entity.Department
	if v := r.URL.Query().Get("department"); v != "" {
		dept = department(v)
	}

	slots, err := h.roster.List(r.Context(), dept)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), toSlotResponses(slots))
}

// POST /api/v1/roster/generate
func (h *HTTPHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	result, err := h.roster.Generate(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), toResultResponse(result))
}

// POST /api/v1/roster/reconcile
func (h *HTTPHandler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	result, err := h.roster.Reconcile(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), toResultResponse(result))
}

// PUT /api/v1/roster/slots/{id}
func (h *HTTPHandler) handleUpdateSlot(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}

	var req updateSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}

	slot, err := h.roster.UpdateSlot(r.Context(), id, entity.SlotAssignment{
		Primary:    req.Primary,
		Backup:     req.Backup,
		Kanban:     req.Kanban,
		Monitoring: req.Monitoring,
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), toSlotResponse(slot))
}
