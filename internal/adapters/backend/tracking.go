package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"parcel-tracking-service/internal/domain"
	"parcel-tracking-service/internal/platform/obs"
)

type trackingEventResponse struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
}

type trackingResponse struct {
	Code      string                  `json:"code"`
	Status    string                  `json:"status"`
	Recipient string                  `json:"recipient"`
	History   []trackingEventResponse `json:"history"`
}

// Resolve fetches one tracking record from the upstream backend.
// A 404 maps to domain.ErrNotFound; anything else surfaces as a transport
// error after retries are exhausted.
func (c *Client) Resolve(ctx context.Context, code string) (_ domain.TrackingRecord, err error) {
	defer obs.Time(ctx, "backend.resolve")(&err)

	endpoint := c.baseURL + "/api/tracking/" + url.PathEscape(code)

	body, err := c.doWithRetry(ctx, func(ctx context.Context) (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			return domain.TrackingRecord{}, fmt.Errorf("tracking %q: %w", code, domain.ErrNotFound)
		}
		return domain.TrackingRecord{}, fmt.Errorf("fetch tracking %q: %w", code, err)
	}

	var decoded trackingResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.TrackingRecord{}, fmt.Errorf("decode tracking response: %w", err)
	}

	record, err := toRecord(decoded)
	if err != nil {
		return domain.TrackingRecord{}, fmt.Errorf("tracking %q: %w", code, err)
	}
	return record, nil
}

// ListByEmail fetches the authenticated account's records. The upstream
// scopes by the bearer credential; the email argument is not sent.
func (c *Client) ListByEmail(ctx context.Context, email string) (_ []domain.TrackingRecord, err error) {
	defer obs.Time(ctx, "backend.myTrackings")(&err)

	endpoint := c.baseURL + "/api/my-trackings"

	body, err := c.doWithRetry(ctx, func(ctx context.Context) (*http.Request, error) {
		return c.newRequest(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch my trackings: %w", err)
	}

	var decoded []trackingResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode my trackings response: %w", err)
	}

	records := make([]domain.TrackingRecord, 0, len(decoded))
	for _, d := range decoded {
		record, err := toRecord(d)
		if err != nil {
			return nil, fmt.Errorf("tracking %q: %w", d.Code, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// toRecord validates upstream payloads before they cross into the domain.
// A backend serving inconsistent history is a bug worth failing loudly on.
func toRecord(d trackingResponse) (domain.TrackingRecord, error) {
	record := domain.TrackingRecord{
		Code:      d.Code,
		Status:    domain.Status(d.Status),
		Recipient: d.Recipient,
		History:   make([]domain.TrackingEvent, 0, len(d.History)),
	}
	for _, ev := range d.History {
		record.History = append(record.History, domain.TrackingEvent{
			Status: domain.Status(ev.Status),
			Date:   ev.Date,
		})
	}
	if err := record.Validate(); err != nil {
		return domain.TrackingRecord{}, err
	}
	return record, nil
}
