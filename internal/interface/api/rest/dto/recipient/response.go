package recipient

import (
	"github.com/google/uuid"

	deliveryDTO "github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/dto/delivery"
)

type (
	Recipient struct {
		ID         uuid.UUID `json:"id"`
		Name       string    `json:"name"`
		DocumentID string    `json:"documentId"`
		Email      string    `json:"email"`
		Address    string    `json:"address"`
		Phone      string    `json:"phone"`
	}
	Recipients   []Recipient
	ResponseData struct {
		Data Recipients `json:"data"`
	}

	ItemsResponse struct {
		Recipient  Recipient              `json:"recipient"`
		Deliveries deliveryDTO.Deliveries `json:"deliveries"`
	}
)
