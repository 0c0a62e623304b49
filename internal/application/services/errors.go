package services

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")

	ErrAccountNotFound   = errors.New("account not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrDeliveryNotFound  = errors.New("delivery not found")

	// ErrNotDeliveryman is raised when a delivery is assigned to an account
	// that does not hold the DELIVERYMAN role.
	ErrNotDeliveryman = errors.New("assigned account is not a deliveryman")
)
