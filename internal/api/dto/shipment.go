package dto

type ShipmentResponse struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
}

type UserResponse struct {
	Email     string             `json:"email"`
	Shipments []ShipmentResponse `json:"shipments"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

type CreateShipmentRequest struct {
	Code   string `json:"code"`
	Status string `json:"status"`
}

type UpdateShipmentRequest struct {
	Code   string `json:"code"`
	Status string `json:"status"`
}
