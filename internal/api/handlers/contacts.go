package handlers

import (
	"net/http"
	"strconv"

	"parcel-tracking-service/internal/api/dto"
	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/services"
)

// ContactHandler serves the public submission endpoint and the admin inbox.
type ContactHandler struct {
	Contacts *services.ContactService
}

// Submit stores a contact form submission.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitContactRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	m, err := h.Contacts.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toContactResponse(m))
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.Contacts.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListContactsResponse{Contacts: make([]dto.ContactResponse, 0, len(msgs))}
	for _, m := range msgs {
		res.Contacts = append(res.Contacts, toContactResponse(m))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ContactHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "message id must be an integer")
		return
	}

	m, err := h.Contacts.View(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toContactResponse(m))
}

func toContactResponse(m domain.ContactMessage) dto.ContactResponse {
	return dto.ContactResponse{
		ID:      m.ID,
		Name:    m.Name,
		Email:   m.Email,
		Message: m.Message,
		Date:    m.Date,
	}
}
