package handlers

import (
	"net/http"

	"parcel-tracking-service/internal/api/dto"
	"parcel-tracking-service/internal/services"
)

// AuthHandler exposes login and password-recovery endpoints.
type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LoginResponse{Token: token})
}

// Forgot accepts a recovery request. Always 204 on valid input; whether
// the address exists is deliberately not revealed.
func (h *AuthHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	if err := h.Auth.Forgot(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
