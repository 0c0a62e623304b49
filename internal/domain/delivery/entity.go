package delivery

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks a shipment through its lifecycle. The expected forward
// progression is PENDING -> AWAITING -> WITHDRAWN -> DELIVERED, with
// RETURNED as an alternate terminal outcome. Transitions are not ordered:
// any status can be set by an explicit update call.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAwaiting  Status = "AWAITING"
	StatusWithdrawn Status = "WITHDRAWN"
	StatusDelivered Status = "DELIVERED"
	StatusReturned  Status = "RETURNED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAwaiting, StatusWithdrawn, StatusDelivered, StatusReturned:
		return true
	}
	return false
}

type (
	Delivery struct {
		ID            uuid.UUID
		Product       string
		Status        Status
		PhotoURL      *string
		RecipientID   uuid.UUID
		DeliverymanID *uuid.UUID

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Deliveries []*Delivery
)
