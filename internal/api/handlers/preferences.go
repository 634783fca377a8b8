package handlers

import (
	"net/http"

	"parcel-tracking-service/internal/api/dto"
	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/ports"
)

// PreferenceHandler stores per-account display settings (language and
// dark mode), replacing the browser-local storage the old client used.
type PreferenceHandler struct {
	Prefs ports.PreferenceStore
}

func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := IdentityFrom(r.Context())
	if !id.Role.LoggedIn() || id.Email == "" {
		writeError(w, r, http.StatusUnauthorized, "login required")
		return
	}

	p, err := h.Prefs.GetPreferences(r.Context(), id.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PreferencesResponse{Lang: p.Lang, DarkMode: p.DarkMode})
}

func (h *PreferenceHandler) Put(w http.ResponseWriter, r *http.Request) {
	id := IdentityFrom(r.Context())
	if !id.Role.LoggedIn() || id.Email == "" {
		writeError(w, r, http.StatusUnauthorized, "login required")
		return
	}

	var req dto.PreferencesRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	p := domain.Preferences{Lang: req.Lang, DarkMode: req.DarkMode}
	if err := h.Prefs.PutPreferences(r.Context(), id.Email, p); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PreferencesResponse{Lang: p.Lang, DarkMode: p.DarkMode})
}
