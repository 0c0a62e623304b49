package delivery

import (
	"context"

	"github.com/google/uuid"
)

// Update is a partial change set. Nil fields are left untouched, never
// nulled out by an update.
type Update struct {
	Product       *string
	Status        *Status
	RecipientID   *uuid.UUID
	DeliverymanID *uuid.UUID
	PhotoURL      *string
}

type Repository interface {
	FetchDeliveryByID(ctx context.Context, id uuid.UUID) (*Delivery, error)
	FetchDeliveries(ctx context.Context, page int) (Deliveries, error)
	FetchDeliveriesByRecipient(ctx context.Context, recipientID uuid.UUID) (Deliveries, error)
	FetchDeliveriesByDeliveryman(ctx context.Context, deliverymanID uuid.UUID) (Deliveries, error)
	CreateDelivery(ctx context.Context, req Delivery) (*Delivery, error)
	UpdateDelivery(ctx context.Context, id uuid.UUID, patch Update) (*Delivery, error)
	DeleteDelivery(ctx context.Context, id uuid.UUID) (*Delivery, error)
}
