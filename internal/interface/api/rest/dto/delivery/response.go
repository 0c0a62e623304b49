package delivery

import (
	"time"

	"github.com/google/uuid"
)

type (
	Delivery struct {
		ID            uuid.UUID  `json:"id"`
		Product       string     `json:"product"`
		Status        string     `json:"status"`
		PhotoURL      *string    `json:"photoUrl"`
		RecipientID   uuid.UUID  `json:"recipientId"`
		DeliverymanID *uuid.UUID `json:"deliverymanId"`
		CreatedAt     time.Time  `json:"createdAt"`
	}
	Deliveries   []Delivery
	ResponseData struct {
		Data Deliveries `json:"data"`
	}

	// Updated is the minimal projection returned by a delivery update.
	Updated struct {
		ID            uuid.UUID  `json:"id"`
		Status        string     `json:"status"`
		DeliverymanID *uuid.UUID `json:"deliverymanId"`
		PhotoURL      *string    `json:"photoUrl"`
	}

	DeliverymanRef struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}

	RecipientRef struct {
		ID      uuid.UUID `json:"id"`
		Name    string    `json:"name"`
		Email   string    `json:"email"`
		Address string    `json:"address"`
		Phone   string    `json:"phone"`
	}

	// Details joins a delivery with its recipient and assigned deliveryman.
	Details struct {
		Delivery    Delivery        `json:"delivery"`
		Recipient   *RecipientRef   `json:"recipient"`
		Deliveryman *DeliverymanRef `json:"deliveryman"`
	}
)
