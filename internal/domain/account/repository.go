package account

import (
	"context"

	"github.com/google/uuid"
)

// Update is a partial change set. Nil fields are left untouched.
type Update struct {
	Name         *string
	DocumentID   *string
	Role         *Role
	PasswordHash *string
}

type Repository interface {
	FetchAccountByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FetchAccountByDocumentID(ctx context.Context, documentID string) (*Account, error)
	// FetchAccountByIdentifier matches either the account id or the document id.
	FetchAccountByIdentifier(ctx context.Context, identifier string) (*Account, error)
	FetchAccounts(ctx context.Context, page int) (Accounts, error)
	FetchDeliverymen(ctx context.Context) (Accounts, error)
	CreateAccount(ctx context.Context, req Account) (*Account, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, patch Update) (*Account, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) (*Account, error)
}
