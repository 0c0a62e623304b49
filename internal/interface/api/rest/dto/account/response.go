package account

import (
	"github.com/google/uuid"
)

type (
	// Created echoes only id and name; the password hash never leaves the
	// service.
	Created struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}

	Account struct {
		ID         uuid.UUID `json:"id"`
		Name       string    `json:"name"`
		DocumentID string    `json:"documentId"`
		Role       string    `json:"role"`
	}
	Accounts     []Account
	ResponseData struct {
		Data Accounts `json:"data"`
	}
)
