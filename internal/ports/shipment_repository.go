package ports

import (
	"context"

	"parcel-tracking-service/internal/domain"
)

// Port: a boundary for account and shipment persistence.
// Implementations must keep shipment ids unique within an account's list
// and preserve insertion order.
type ShipmentRepository interface {
	// List every account, shipments included, ordered by email.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// Fetch one account by email. Returns domain.ErrNotFound when absent.
	GetUser(ctx context.Context, email string) (domain.User, error)

	// Append a shipment to the account's list. The shipment carries its
	// final id; implementations reject duplicates.
	AddShipment(ctx context.Context, email string, s domain.Shipment) error

	// Replace the shipment with a matching id in place. Returns
	// domain.ErrNotFound when the id is absent from the account's list.
	UpdateShipment(ctx context.Context, email string, s domain.Shipment) error

	// Remove the shipment with the given id. Removing an absent id is a
	// no-op, not an error.
	RemoveShipment(ctx context.Context, email string, id int64) error
}
