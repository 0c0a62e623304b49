package recipient

import (
	"time"

	"github.com/google/uuid"
)

type (
	Recipient struct {
		ID         uuid.UUID
		Name       string
		DocumentID string
		Email      string
		Address    string
		Phone      string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Recipients []*Recipient
)
