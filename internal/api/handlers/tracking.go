package handlers

import (
	"net/http"

	"parcel-tracking-service/internal/api/dto"
	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/i18n"
	"parcel-tracking-service/internal/services"
)

// TrackingHandler serves the public code lookup and the logged-in
// "my shipments" listing.
type TrackingHandler struct {
	Tracking *services.TrackingService
}

func (h *TrackingHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	lang := langFrom(r)

	rec, err := h.Tracking.Resolve(r.Context(), code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toTrackingResponse(rec, lang))
}

func (h *TrackingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	id := IdentityFrom(r.Context())
	if !id.Role.LoggedIn() {
		writeError(w, r, http.StatusUnauthorized, "login required")
		return
	}
	lang := langFrom(r)

	recs, err := h.Tracking.MyTrackings(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListTrackingResponse{Trackings: make([]dto.TrackingResponse, 0, len(recs))}
	for _, rec := range recs {
		res.Trackings = append(res.Trackings, toTrackingResponse(rec, lang))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func toTrackingResponse(rec domain.TrackingRecord, lang i18n.Lang) dto.TrackingResponse {
	out := dto.TrackingResponse{
		Code:        rec.Code,
		Status:      string(rec.Status),
		StatusLabel: i18n.StatusLabel(lang, rec.Status),
		Recipient:   rec.Recipient,
		LastUpdate:  rec.LastUpdate(),
		History:     make([]dto.TrackingEventResponse, 0, len(rec.History)),
	}
	for _, ev := range rec.History {
		out.History = append(out.History, dto.TrackingEventResponse{
			Status:      string(ev.Status),
			StatusLabel: i18n.StatusLabel(lang, ev.Status),
			Date:        ev.Date,
			DateLabel:   i18n.FormatDate(lang, ev.Date),
		})
	}
	return out
}
