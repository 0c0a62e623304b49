package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
	"github.com/thiagohrcosta/FastFeet-API/internal/domain/recipient"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

type RecipientService interface {
	CreateRecipient(ctx context.Context, caller policy.Caller, req recipient.Recipient) (*recipient.Recipient, error)
	FindRecipientByIdentifier(ctx context.Context, caller policy.Caller, identifier string) (*recipient.Recipient, error)
	FindRecipients(ctx context.Context, caller policy.Caller, page int) (recipient.Recipients, error)
	UpdateRecipient(ctx context.Context, caller policy.Caller, id uuid.UUID, patch recipient.Update) (*recipient.Recipient, error)
	DeleteRecipient(ctx context.Context, caller policy.Caller, id uuid.UUID) error

	// FindRecipientItems is the tokenless self-identification read: the
	// presented email and document id must both match one stored recipient.
	FindRecipientItems(ctx context.Context, email, documentID string) (*recipient.Recipient, delivery.Deliveries, error)
}
