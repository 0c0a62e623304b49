package ports

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	"github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
	"github.com/thiagohrcosta/FastFeet-API/internal/domain/recipient"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

type (
	CreateDelivery struct {
		Product       string
		Status        delivery.Status
		RecipientID   uuid.UUID
		DeliverymanID *uuid.UUID
		Photo         *multipart.FileHeader
	}

	// DeliveryDetails joins a delivery with its recipient and, when
	// assigned, its deliveryman.
	DeliveryDetails struct {
		Delivery    *delivery.Delivery
		Recipient   *recipient.Recipient
		Deliveryman *account.Account
	}
)

type DeliveryService interface {
	CreateDelivery(ctx context.Context, caller policy.Caller, req CreateDelivery) (*delivery.Delivery, error)
	FindDeliveryByID(ctx context.Context, caller policy.Caller, id uuid.UUID) (*DeliveryDetails, error)
	FindDeliveries(ctx context.Context, caller policy.Caller, page int) (delivery.Deliveries, error)
	FindDeliveryItems(ctx context.Context, caller policy.Caller, deliverymanID uuid.UUID) (delivery.Deliveries, error)
	// ApplyUpdate applies a partial change set, gated by the authorization
	// policy, and notifies the recipient when the status value changes.
	ApplyUpdate(ctx context.Context, caller policy.Caller, id uuid.UUID, patch delivery.Update, photo *multipart.FileHeader) (*delivery.Delivery, error)
	DeleteDelivery(ctx context.Context, caller policy.Caller, id uuid.UUID) error
}
