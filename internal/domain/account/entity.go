package account

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleDeliveryman Role = "DELIVERYMAN"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleDeliveryman
}

type (
	Account struct {
		ID           uuid.UUID
		Name         string
		DocumentID   string
		PasswordHash string
		Role         Role

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Accounts []*Account
)
