package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/diegoclair/duty-roster/internal/domain"
)

type createLeaveRequest struct {
	PersonID  string `json:"person_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Note      string `json:"note"`
}

type decideLeaveRequest struct {
	DecidedBy string `json:"decided_by"`
}

// POST /api/v1/leave-requests
func (h *HTTPHandler) handleCreateLeave(w http.ResponseWriter, r *http.Request) {
	var req createLeaveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}

	leave, err := h.leave.Create(r.Context(), req.PersonID, start, end, req.Note)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondCreated(w, RequestIDFromContext(r.Context()), toLeaveResponse(leave))
}

// GET /api/v1/leave-requests?person_id=
func (h *HTTPHandler) handleListLeave(w http.ResponseWriter, r *http.Request) {
	requests, err := h.leave.List(r.Context(), r.URL.Query().Get("person_id"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	out := make([]leaveResponse, 0, len(requests))
	for _, l := range requests {
		out = append(out, toLeaveResponse(l))
	}
	respondOK(w, RequestIDFromContext(r.Context()), out)
}

// GET /api/v1/leave-requests/{id}
func (h *HTTPHandler) handleGetLeave(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}

	leave, err := h.leave.Get(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), toLeaveResponse(leave))
}

// POST /api/v1/leave-requests/{id}/approve
func (h *HTTPHandler) handleApproveLeave(w http.ResponseWriter, r *http.Request) {
	id, decidedBy, ok := h.decision(w, r)
	if !ok {
		return
	}

	result, err := h.leave.Approve(r.Context(), id, decidedBy)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), toResultResponse(result))
}

// POST /api/v1/leave-requests/{id}/reject
func (h *HTTPHandler) handleRejectLeave(w http.ResponseWriter, r *http.Request) {
	id, decidedBy, ok := h.decision(w, r)
	if !ok {
		return
	}

	if err := h.leave.Reject(r.Context(), id, decidedBy); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /api/v1/leave-requests/{id}/cancel
func (h *HTTPHandler) handleCancelLeave(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}

	if err := h.leave.Cancel(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /api/v1/leave-requests/{id}/cancel-approved
func (h *HTTPHandler) handleCancelApprovedLeave(w http.ResponseWriter, r *http.Request) {
	id, decidedBy, ok := h.decision(w, r)
	if !ok {
		return
	}

	if err := h.leave.CancelApproved(r.Context(), id, decidedBy); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /api/v1/leave-requests/{id}
func (h *HTTPHandler) handleDeleteLeave(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}

	if err := h.leave.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /api/v1/leave-requests/cleanup
func (h *HTTPHandler) handleCleanup(w http.ResponseWriter, r *http.Request) {
	canceled, err := h.leave.CleanupExpired(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), map[string]int64{"canceled": canceled})
}

// GET /api/v1/leave-requests/cleanup
func (h *HTTPHandler) handleCleanupStatus(w http.ResponseWriter, r *http.Request) {
	count, err := h.leave.ExpiredPendingCount(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), map[string]int64{"expired_pending": count})
}

// POST /api/v1/leave-requests/purge?older_than_days=
func (h *HTTPHandler) handlePurgeCanceled(w http.ResponseWriter, r *http.Request) {
	days := domain.DefaultCanceledRetentionDays
	if v := r.URL.Query().Get("older_than_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondBadRequest(w, r, "older_than_days must be an integer")
			return
		}
		days = n
	}

	purged, err := h.leave.PurgeCanceled(r.Context(), days)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), map[string]int64{"purged": purged})
}

// decision reads the request id and the optional decided_by body.
func (h *HTTPHandler) decision(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	id, err := int64Param(r, "id")
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return 0, "", false
	}

	var req decideLeaveRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(w, r, err.Error())
		return 0, "", false
	}

	return id, req.DecidedBy, true
}
