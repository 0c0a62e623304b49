package account

import (
	"time"

	"github.com/google/uuid"
)

type (
	Account struct {
		ID           uuid.UUID
		Name         string
		DocumentID   string
		PasswordHash string
		Role         string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Accounts []*Account
)
