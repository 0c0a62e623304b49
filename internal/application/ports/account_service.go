package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

// AccountPatch carries an admin's partial account update. The password, when
// present, is plaintext and gets hashed by the service.
type AccountPatch struct {
	Name       *string
	DocumentID *string
	Role       *account.Role
	Password   *string
}

type AccountService interface {
	// CreateAccount is the public registration operation. Role defaults to
	// DELIVERYMAN when empty.
	CreateAccount(ctx context.Context, name, documentID, password string, role account.Role) (*account.Account, error)
	FindAccountByIdentifier(ctx context.Context, caller policy.Caller, identifier string) (*account.Account, error)
	FindAccounts(ctx context.Context, caller policy.Caller, page int) (account.Accounts, error)
	FindDeliverymen(ctx context.Context, caller policy.Caller) (account.Accounts, error)
	UpdateAccount(ctx context.Context, caller policy.Caller, id uuid.UUID, patch AccountPatch) (*account.Account, error)
	DeleteAccount(ctx context.Context, caller policy.Caller, id uuid.UUID) error
}
