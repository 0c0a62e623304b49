package delivery

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres"
)

// ErrBadReference is raised by the deliveries foreign keys when the
// referenced recipient or account does not exist.
var ErrBadReference = errors.New("delivery references an unknown recipient or account")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) delivery.Repository {
	return &Repository{db: db}
}

func scanDelivery(row pgx.Row) (*Delivery, error) {
	d := new(Delivery)
	err := row.Scan(
		&d.ID,
		&d.Product,
		&d.Status,
		&d.PhotoURL,
		&d.RecipientID,
		&d.DeliverymanID,

		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *Repository) fetchMany(ctx context.Context, query string, args ...any) (delivery.Deliveries, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ds Deliveries
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ds), nil
}

func (r *Repository) FetchDeliveries(ctx context.Context, page int) (delivery.Deliveries, error) {
	return r.fetchMany(ctx, SelectDeliveries, page)
}

func (r *Repository) FetchDeliveriesByRecipient(ctx context.Context, recipientID uuid.UUID) (delivery.Deliveries, error) {
	return r.fetchMany(ctx, SelectDeliveriesByRecipient, recipientID)
}

func (r *Repository) FetchDeliveriesByDeliveryman(ctx context.Context, deliverymanID uuid.UUID) (delivery.Deliveries, error) {
	return r.fetchMany(ctx, SelectDeliveriesByDeliveryman, deliverymanID)
}

func (r *Repository) FetchDeliveryByID(ctx context.Context, id uuid.UUID) (*delivery.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx, SelectDeliveryByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), nil
}

func (r *Repository) CreateDelivery(ctx context.Context, req delivery.Delivery) (*delivery.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(
		ctx,
		InsertDelivery,
		req.Product, string(req.Status), req.PhotoURL, req.RecipientID, req.DeliverymanID,
	))
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, ErrBadReference
		}
		return nil, err
	}

	return fromDBModel(d), nil
}

func (r *Repository) UpdateDelivery(ctx context.Context, id uuid.UUID, patch delivery.Update) (*delivery.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx, UpdateDeliveryByID,
		patch.Product, (*string)(patch.Status), patch.RecipientID, patch.DeliverymanID, patch.PhotoURL, id,
	))
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return nil, ErrBadReference
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), nil
}

func (r *Repository) DeleteDelivery(ctx context.Context, id uuid.UUID) (*delivery.Delivery, error) {
	d, err := scanDelivery(r.db.QueryRow(ctx, DeleteDeliveryByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(d), nil
}
