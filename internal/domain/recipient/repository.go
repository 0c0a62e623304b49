package recipient

import (
	"context"

	"github.com/google/uuid"
)

// Update is a partial change set. Nil fields are left untouched.
type Update struct {
	Name       *string
	DocumentID *string
	Email      *string
	Address    *string
	Phone      *string
}

type Repository interface {
	FetchRecipientByID(ctx context.Context, id uuid.UUID) (*Recipient, error)
	FetchRecipientByEmail(ctx context.Context, email string) (*Recipient, error)
	// FetchRecipientByIdentifier matches the recipient id, document id or email.
	FetchRecipientByIdentifier(ctx context.Context, identifier string) (*Recipient, error)
	FetchRecipients(ctx context.Context, page int) (Recipients, error)
	CreateRecipient(ctx context.Context, req Recipient) (*Recipient, error)
	UpdateRecipient(ctx context.Context, id uuid.UUID, patch Update) (*Recipient, error)
	DeleteRecipient(ctx context.Context, id uuid.UUID) (*Recipient, error)
}
