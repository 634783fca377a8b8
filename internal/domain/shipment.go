package domain

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a shipment as shown to customers.
type Status string

const (
	StatusPending   Status = "pending"
	StatusTransit   Status = "transit"
	StatusDelivered Status = "delivered"
	StatusContact   Status = "contact"
)

// StatusOptions lists every status an operator may assign, in display order.
var StatusOptions = []Status{StatusPending, StatusTransit, StatusDelivered, StatusContact}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusTransit, StatusDelivered, StatusContact:
		return true
	}
	return false
}

// Shipment is a single parcel owned by exactly one account.
// IDs are unique within the owning account's shipment list.
type Shipment struct {
	ID     int64
	Code   string
	Status Status
}

// Validate enforces the write-path invariants: a non-empty tracking code
// and one of the defined statuses. Callers cannot bypass these by going
// straight to a repository; repositories validate on insert/update too.
func (s Shipment) Validate() error {
	if strings.TrimSpace(s.Code) == "" {
		return &ValidationError{Field: "code", Reason: "must not be empty"}
	}
	if !s.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", string(s.Status))}
	}
	return nil
}

// User is an account that owns an ordered list of shipments.
// Email is the unique key; there is no signup flow in this service,
// accounts come from seed data or the backing database.
type User struct {
	Email     string
	Shipments []Shipment
}

// FindShipment returns the index of the shipment with the given id, or -1.
func (u User) FindShipment(id int64) int {
	for i, s := range u.Shipments {
		if s.ID == id {
			return i
		}
	}
	return -1
}
