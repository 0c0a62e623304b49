package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) account.Repository {
	return &Repository{db: db}
}

func scanAccount(row pgx.Row) (*Account, error) {
	a := new(Account)
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.DocumentID,
		&a.PasswordHash,
		&a.Role,

		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) FetchAccounts(ctx context.Context, page int) (account.Accounts, error) {
	rows, err := r.db.Query(ctx, SelectAccounts, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var as Accounts
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		as = append(as, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&as), nil
}

func (r *Repository) FetchDeliverymen(ctx context.Context) (account.Accounts, error) {
	rows, err := r.db.Query(ctx, SelectDeliverymen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var as Accounts
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		as = append(as, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&as), nil
}

func (r *Repository) FetchAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, SelectAccountByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) FetchAccountByDocumentID(ctx context.Context, documentID string) (*account.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, SelectAccountByDocumentID, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) FetchAccountByIdentifier(ctx context.Context, identifier string) (*account.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, SelectAccountByIdentifier, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) CreateAccount(ctx context.Context, req account.Account) (*account.Account, error) {
	a, err := scanAccount(r.db.QueryRow(
		ctx,
		InsertAccount,
		req.Name, req.DocumentID, req.PasswordHash, string(req.Role),
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrDocumentIDInUse
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) UpdateAccount(ctx context.Context, id uuid.UUID, patch account.Update) (*account.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, UpdateAccountByID,
		patch.Name, patch.DocumentID, (*string)(patch.Role), patch.PasswordHash, id,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrDocumentIDInUse
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}

func (r *Repository) DeleteAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	a, err := scanAccount(r.db.QueryRow(ctx, DeleteAccountByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), nil
}
