package dto

import "time"

type TrackingEventResponse struct {
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	Date        time.Time `json:"date"`
	DateLabel   string    `json:"date_label"`
}

type TrackingResponse struct {
	Code        string                  `json:"code"`
	Status      string                  `json:"status"`
	StatusLabel string                  `json:"status_label"`
	Recipient   string                  `json:"recipient"`
	LastUpdate  time.Time               `json:"last_update"`
	History     []TrackingEventResponse `json:"history"`
}

type ListTrackingResponse struct {
	Trackings []TrackingResponse `json:"trackings"`
}
