package delivery

import (
	"time"

	"github.com/google/uuid"
)

type (
	Delivery struct {
		ID            uuid.UUID
		Product       string
		Status        string
		PhotoURL      *string
		RecipientID   uuid.UUID
		DeliverymanID *uuid.UUID

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Deliveries []*Delivery
)
