package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/i18n"
	"parcel-tracking-service/internal/ports"
	"parcel-tracking-service/internal/services"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
// Validation failures echo their message (it names the offending field);
// everything unexpected is logged and returned as a generic 500 so
// internals never leak to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, r, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, r, http.StatusUnauthorized, "invalid credentials")
	default:
		log.Printf("request failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// decodeStrict parses a single JSON object, rejecting unknown fields and
// trailing content. Returns false after writing the error response.
func decodeStrict(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// langFrom picks the response language: explicit ?lang= wins, then the
// Accept-Language header, then the Portuguese default.
func langFrom(r *http.Request) i18n.Lang {
	if q := r.URL.Query().Get("lang"); q != "" {
		return i18n.Match(q)
	}
	if h := r.Header.Get("Accept-Language"); h != "" {
		return i18n.Match(h)
	}
	return i18n.DefaultLang
}

type identityKey struct{}

// WithIdentity stores the verified identity on the request context.
func WithIdentity(ctx context.Context, id ports.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the verified identity, or a guest one when the
// request carried no valid credential.
func IdentityFrom(ctx context.Context) ports.Identity {
	if id, ok := ctx.Value(identityKey{}).(ports.Identity); ok {
		return id
	}
	return ports.Identity{Role: domain.RoleGuest}
}
