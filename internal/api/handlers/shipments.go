package handlers

import (
	"net/http"
	"strconv"

	"parcel-tracking-service/internal/api/dto"
	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/i18n"
	"parcel-tracking-service/internal/services"
)

// ShipmentHandler exposes the admin shipment-management endpoints.
// The router mounts every route here behind the admin guard.
type ShipmentHandler struct {
	Shipments *services.ShipmentService
}

func (h *ShipmentHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	lang := langFrom(r)

	users, err := h.Shipments.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListUsersResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		res.Users = append(res.Users, toUserResponse(u, lang))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *ShipmentHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.Shipments.GetUser(r.Context(), r.PathValue("email"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toUserResponse(u, langFrom(r)))
}

func (h *ShipmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShipmentRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	shipment, err := h.Shipments.Add(r.Context(), r.PathValue("email"), req.Code, domain.Status(req.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, toShipmentResponse(shipment, langFrom(r)))
}

func (h *ShipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := shipmentID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateShipmentRequest
	if !decodeStrict(w, r, &req) {
		return
	}

	shipment, err := h.Shipments.Update(r.Context(), r.PathValue("email"), id, req.Code, domain.Status(req.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toShipmentResponse(shipment, langFrom(r)))
}

func (h *ShipmentHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := shipmentID(w, r)
	if !ok {
		return
	}

	if err := h.Shipments.Remove(r.Context(), r.PathValue("email"), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func shipmentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "shipment id must be an integer")
		return 0, false
	}
	return id, true
}

func toShipmentResponse(s domain.Shipment, lang i18n.Lang) dto.ShipmentResponse {
	return dto.ShipmentResponse{
		ID:          s.ID,
		Code:        s.Code,
		Status:      string(s.Status),
		StatusLabel: i18n.StatusLabel(lang, s.Status),
	}
}

func toUserResponse(u domain.User, lang i18n.Lang) dto.UserResponse {
	out := dto.UserResponse{
		Email:     u.Email,
		Shipments: make([]dto.ShipmentResponse, 0, len(u.Shipments)),
	}
	for _, s := range u.Shipments {
		out.Shipments = append(out.Shipments, toShipmentResponse(s, lang))
	}
	return out
}
