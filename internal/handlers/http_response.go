package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
	"github.com/go-chi/chi/v5"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type response struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Error     *apiError `json:"error,omitempty"`
}

func respondOK(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusOK, reqID, data, nil)
}

func respondCreated(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusCreated, reqID, data, nil)
}

func respondError(w http.ResponseWriter, reqID string, status int, apiErr *apiError) {
	respondJSON(w, status, reqID, nil, apiErr)
}

func respondJSON(w http.ResponseWriter, status int, reqID string, data any, apiErr *apiError) {
	resp := response{
		Status:    "ok",
		RequestID: reqID,
		Timestamp: time.Now().UTC(),
		Data:      data,
		Error:     apiErr,
	}
	if apiErr != nil {
		resp.Status = "error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondServiceError maps a domain error to its HTTP status. Unexpected errors are logged and hidden.
func (h *HTTPHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	reqID := RequestIDFromContext(r.Context())
	kind := domain.ErrorKind(err)

	status := statusForKind(kind)
	if status == http.StatusInternalServerError {
		h.log(r).Error("request failed", "error", err)
		respondError(w, reqID, status, &apiError{Code: kind, Message: "internal error"})
		return
	}

	respondError(w, reqID, status, &apiError{Code: kind, Message: err.Error()})
}

func statusForKind(kind string) int {
	switch kind {
	case "not_found":
		return http.StatusNotFound
	case "invalid_status", "duplicate":
		return http.StatusConflict
	case "past_date", "unknown_person":
		return http.StatusUnprocessableEntity
	case "invalid_department", "invalid_input":
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	respondError(w, RequestIDFromContext(r.Context()), http.StatusBadRequest, &apiError{Code: "invalid_input", Message: message})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func int64Param(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// parseDate accepts an empty string as the zero date.
func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be formatted as %s", field, domain.DateLayout)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

type personResponse struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Department string    `json:"department"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toPersonResponse(p *entity.Person) personResponse {
	return personResponse{
		ID:         p.ID,
		FullName:   p.FullName,
		Department: string(p.Department),
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type leaveResponse struct {
	ID         int64      `json:"id"`
	PersonID   string     `json:"person_id"`
	PersonName string     `json:"person_name"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Status     string     `json:"status"`
	Note       string     `json:"note,omitempty"`
	DecidedBy  string     `json:"decided_by,omitempty"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toLeaveResponse(l *entity.LeaveRequest) leaveResponse {
	return leaveResponse{
		ID:         l.ID,
		PersonID:   l.PersonID,
		PersonName: l.PersonName,
		StartDate:  formatDate(l.StartDate),
		EndDate:    formatDate(l.EndDate),
		Status:     string(l.Status),
		Note:       l.Note,
		DecidedBy:  l.DecidedBy,
		DecidedAt:  l.DecidedAt,
		CreatedAt:  l.CreatedAt,
	}
}

type slotResponse struct {
	ID         int64  `json:"id"`
	Department string `json:"department"`
	WeekStart  string `json:"week_start"`
	WeekEnd    string `json:"week_end"`
	Primary    string `json:"primary,omitempty"`
	Backup     string `json:"backup,omitempty"`
	Kanban     string `json:"kanban,omitempty"`
	Monitoring string `json:"monitoring,omitempty"`
}

func toSlotResponse(s *entity.RosterSlot) slotResponse {
	return slotResponse{
		ID:         s.ID,
		Department: string(s.Department),
		WeekStart:  formatDate(s.WeekStart),
		WeekEnd:    formatDate(s.WeekEnd()),
		Primary:    s.Primary,
		Backup:     s.Backup,
		Kanban:     s.Kanban,
		Monitoring: s.Monitoring,
	}
}

func toSlotResponses(slots []*entity.RosterSlot) []slotResponse {
	out := make([]slotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, toSlotResponse(s))
	}
	return out
}

type diagnosticResponse struct {
	Kind       string `json:"kind"`
	Iteration  int    `json:"iteration"`
	Department string `json:"department,omitempty"`
	Date       string `json:"date,omitempty"`
	Role       string `json:"role,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message"`
}

type resultResponse struct {
	Iterations  int                  `json:"iterations"`
	Converged   bool                 `json:"converged"`
	Exhausted   bool                 `json:"exhausted"`
	Changed     []slotResponse       `json:"changed"`
	Diagnostics []diagnosticResponse `json:"diagnostics"`
}

func toResultResponse(res *roster.Result) resultResponse {
	if res == nil {
		return resultResponse{Changed: []slotResponse{}, Diagnostics: []diagnosticResponse{}}
	}

	diags := make([]diagnosticResponse, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		diags = append(diags, diagnosticResponse{
			Kind:       string(d.Kind),
			Iteration:  d.Iteration,
			Department: string(d.Department),
			Date:       formatDate(d.Date),
			Role:       string(d.Role),
			From:       d.From,
			To:         d.To,
			Reason:     d.Reason,
			Message:    d.String(),
		})
	}

	return resultResponse{
		Iterations:  res.Iterations,
		Converged:   res.Converged,
		Exhausted:   res.Exhausted,
		Changed:     toSlotResponses(res.Changed),
		Diagnostics: diags,
	}
}
