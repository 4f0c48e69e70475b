package handlers

import (
	"net/http"
	"strings"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/go-chi/chi/v5"
)

type createPersonRequest struct {
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	IsActive   *bool  `json:"is_active"`
}

type updatePersonRequest struct {
	FullName   *string `json:"full_name"`
	Department *string `json:"department"`
	IsActive   *bool   `json:"is_active"`
}

// POST /api/v1/persons
func (h *HTTPHandler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var req createPersonRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	person, err := h.person.Create(r.Context(), req.FullName, department(req.Department), active)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondCreated(w, RequestIDFromContext(r.Context()), toPersonResponse(person))
}

// GET /api/v1/persons
func (h *HTTPHandler) handleListPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.person.List(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	out := make([]personResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, toPersonResponse(p))
	}
	respondOK(w, RequestIDFromContext(r.Context()), out)
}

// GET /api/v1/persons/{id}
func (h *HTTPHandler) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	person, err := h.person.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), toPersonResponse(person))
}

// PATCH /api/v1/persons/{id}
func (h *HTTPHandler) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	var req updatePersonRequest
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}

	update := entity.PersonUpdate{FullName: req.FullName, IsActive: req.IsActive}
	if req.Department != nil {
		dept := department(*req.Department)
		update.Department = &dept
	}

	person, err := h.person.Update(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	respondOK(w, RequestIDFromContext(r.Context()), toPersonResponse(person))
}

// DELETE /api/v1/persons/{id}
func (h *HTTPHandler) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	if err := h.person.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// department normalizes user input. Unknown values pass through so the service can reject them.
func department(s string) entity.Department {
	if dept, ok := entity.ParseDepartment(s); ok {
		return dept
	}
	return entity.Department(strings.TrimSpace(s))
}
