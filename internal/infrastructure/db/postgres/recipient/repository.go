package recipient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/thiagohrcosta/FastFeet-API/internal/domain/recipient"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres"
)

// Raised by the recipients unique constraints on document_id and email.
var (
	ErrDocumentIDInUse = errors.New("document id already in use")
	ErrEmailInUse      = errors.New("email already in use")
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) recipient.Repository {
	return &Repository{db: db}
}

func scanRecipient(row pgx.Row) (*Recipient, error) {
	rc := new(Recipient)
	err := row.Scan(
		&rc.ID,
		&rc.Name,
		&rc.DocumentID,
		&rc.Email,
		&rc.Address,
		&rc.Phone,

		&rc.CreatedAt,
		&rc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rc, nil
}

// conflictErr picks the sentinel matching the violated constraint. The
// constraint name is the only reliable discriminator between the two
// unique columns.
func conflictErr(err error) error {
	if postgres.ConstraintName(err) == "recipients_email_key" {
		return ErrEmailInUse
	}
	return ErrDocumentIDInUse
}

func (r *Repository) FetchRecipients(ctx context.Context, page int) (recipient.Recipients, error) {
	rows, err := r.db.Query(ctx, SelectRecipients, page)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rcs Recipients
	for rows.Next() {
		rc, err := scanRecipient(rows)
		if err != nil {
			return nil, err
		}
		rcs = append(rcs, rc)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&rcs), nil
}

func (r *Repository) FetchRecipientByID(ctx context.Context, id uuid.UUID) (*recipient.Recipient, error) {
	rc, err := scanRecipient(r.db.QueryRow(ctx, SelectRecipientByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rc), nil
}

func (r *Repository) FetchRecipientByEmail(ctx context.Context, email string) (*recipient.Recipient, error) {
	rc, err := scanRecipient(r.db.QueryRow(ctx, SelectRecipientByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rc), nil
}

func (r *Repository) FetchRecipientByIdentifier(ctx context.Context, identifier string) (*recipient.Recipient, error) {
	rc, err := scanRecipient(r.db.QueryRow(ctx, SelectRecipientByIdentifier, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rc), nil
}

func (r *Repository) CreateRecipient(ctx context.Context, req recipient.Recipient) (*recipient.Recipient, error) {
	rc, err := scanRecipient(r.db.QueryRow(
		ctx,
		InsertRecipient,
		req.Name, req.DocumentID, req.Email, req.Address, req.Phone,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, conflictErr(err)
		}
		return nil, err
	}

	return fromDBModel(rc), nil
}

func (r *Repository) UpdateRecipient(ctx context.Context, id uuid.UUID, patch recipient.Update) (*recipient.Recipient, error) {
	rc, err := scanRecipient(r.db.QueryRow(ctx, UpdateRecipientByID,
		patch.Name, patch.DocumentID, patch.Email, patch.Address, patch.Phone, id,
	))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, conflictErr(err)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rc), nil
}

func (r *Repository) DeleteRecipient(ctx context.Context, id uuid.UUID) (*recipient.Recipient, error) {
	rc, err := scanRecipient(r.db.QueryRow(ctx, DeleteRecipientByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rc), nil
}
