package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/thiagohrcosta/FastFeet-API/internal/application/ports"
	accountDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
	recipientDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/recipient"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/mq"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

type DeliveryService struct {
	deliveryRepository  domain.Repository
	recipientRepository recipientDomain.Repository
	accountRepository   accountDomain.Repository
	s3                  ports.S3Client
	mq                  ports.RabbitMQ
	mCounter            *prometheus.CounterVec
}

func NewDeliveryService(
	deliveryRepository domain.Repository,
	recipientRepository recipientDomain.Repository,
	accountRepository accountDomain.Repository,
	s3 ports.S3Client,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.DeliveryService {
	return &DeliveryService{
		deliveryRepository:  deliveryRepository,
		recipientRepository: recipientRepository,
		accountRepository:   accountRepository,
		s3:                  s3,
		mq:                  mq,
		mCounter:            mCounter,
	}
}

// checkDeliveryman enforces the invariant that deliveryman_id only ever
// references an account holding the DELIVERYMAN role.
func (s *DeliveryService) checkDeliveryman(ctx context.Context, id uuid.UUID) error {
	a, err := s.accountRepository.FetchAccountByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrAccountNotFound
	}
	if a.Role != accountDomain.RoleDeliveryman {
		return ErrNotDeliveryman
	}
	return nil
}

func (s *DeliveryService) CreateDelivery(ctx context.Context, caller policy.Caller, req ports.CreateDelivery) (*domain.Delivery, error) {
	if err := policy.Allow(caller, policy.ActionDeliveryCreate).Err(); err != nil {
		return nil, err
	}

	rc, err := s.recipientRepository.FetchRecipientByID(ctx, req.RecipientID)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, ErrRecipientNotFound
	}

	if req.DeliverymanID != nil {
		if err = s.checkDeliveryman(ctx, *req.DeliverymanID); err != nil {
			return nil, err
		}
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}

	d := domain.Delivery{
		Product:       req.Product,
		Status:        status,
		RecipientID:   req.RecipientID,
		DeliverymanID: req.DeliverymanID,
	}

	// Photo upload is a blocking round trip performed before persisting;
	// a failure aborts the create.
	if req.Photo != nil {
		url, err := s.s3.Upload(ctx, uuid.New().String(), req.Photo)
		if err != nil {
			return nil, err
		}
		d.PhotoURL = &url
	}

	out, err := s.deliveryRepository.CreateDelivery(ctx, d)
	if err != nil {
		return nil, err
	}

	s.mCounter.WithLabelValues("delivery_created_total").Inc()

	return out, nil
}

func (s *DeliveryService) FindDeliveryByID(ctx context.Context, caller policy.Caller, id uuid.UUID) (*ports.DeliveryDetails, error) {
	if err := policy.Allow(caller, policy.ActionDeliveryRead).Err(); err != nil {
		return nil, err
	}

	d, err := s.deliveryRepository.FetchDeliveryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDeliveryNotFound
	}

	rc, err := s.recipientRepository.FetchRecipientByID(ctx, d.RecipientID)
	if err != nil {
		return nil, err
	}

	var dm *accountDomain.Account
	if d.DeliverymanID != nil {
		dm, err = s.accountRepository.FetchAccountByID(ctx, *d.DeliverymanID)
		if err != nil {
			return nil, err
		}
	}

	return &ports.DeliveryDetails{
		Delivery:    d,
		Recipient:   rc,
		Deliveryman: dm,
	}, nil
}

func (s *DeliveryService) FindDeliveries(ctx context.Context, caller policy.Caller, page int) (domain.Deliveries, error) {
	if err := policy.Allow(caller, policy.ActionDeliveryList).Err(); err != nil {
		return nil, err
	}

	return s.deliveryRepository.FetchDeliveries(ctx, page)
}

func (s *DeliveryService) FindDeliveryItems(ctx context.Context, caller policy.Caller, deliverymanID uuid.UUID) (domain.Deliveries, error) {
	if err := policy.Allow(caller, policy.ActionDeliveryListItems).Err(); err != nil {
		return nil, err
	}

	return s.deliveryRepository.FetchDeliveriesByDeliveryman(ctx, deliverymanID)
}

// ApplyUpdate applies a partial change set to a delivery. Fields absent from
// the patch are left untouched. When the change set carries a status value
// different from the stored one, the recipient is notified exactly once,
// after the persisted update succeeds; the notification never rolls the
// update back.
func (s *DeliveryService) ApplyUpdate(
	ctx context.Context,
	caller policy.Caller,
	id uuid.UUID,
	patch domain.Update,
	photo *multipart.FileHeader,
) (*domain.Delivery, error) {
	if err := policy.Allow(caller, policy.ActionDeliveryUpdate).Err(); err != nil {
		return nil, err
	}

	existing, err := s.deliveryRepository.FetchDeliveryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrDeliveryNotFound
	}

	if patch.Status != nil && *patch.Status == domain.StatusDelivered {
		if err = policy.Deliver(caller, existing.DeliverymanID).Err(); err != nil {
			return nil, err
		}
	}

	if patch.DeliverymanID != nil {
		if err = s.checkDeliveryman(ctx, *patch.DeliverymanID); err != nil {
			return nil, err
		}
	}
	if patch.RecipientID != nil {
		rc, err := s.recipientRepository.FetchRecipientByID(ctx, *patch.RecipientID)
		if err != nil {
			return nil, err
		}
		if rc == nil {
			return nil, ErrRecipientNotFound
		}
	}

	if photo != nil {
		url, err := s.s3.Upload(ctx, id.String(), photo)
		if err != nil {
			return nil, err
		}
		patch.PhotoURL = &url
	}

	updated, err := s.deliveryRepository.UpdateDelivery(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrDeliveryNotFound
	}

	if patch.Status != nil && *patch.Status != existing.Status {
		s.notifyStatusChange(ctx, updated)
	}

	s.mCounter.WithLabelValues("delivery_updated_total").Inc()

	return updated, nil
}

func (s *DeliveryService) notifyStatusChange(ctx context.Context, d *domain.Delivery) {
	rc, err := s.recipientRepository.FetchRecipientByID(ctx, d.RecipientID)
	if err != nil || rc == nil {
		// The status change is already committed; a missed notification is
		// only an observability concern.
		s.mCounter.WithLabelValues("delivery_notification_lookup_failures_total").Inc()
		return
	}

	s.mq.GetInputChan() <- mq.Event{
		Id:             uuid.New(),
		TS:             time.Now(),
		DeliveryID:     d.ID.String(),
		RecipientEmail: rc.Email,
		Product:        d.Product,
		Status:         string(d.Status),
	}

	s.mCounter.WithLabelValues("delivery_status_notifications_total").Inc()
}

func (s *DeliveryService) DeleteDelivery(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	if err := policy.Allow(caller, policy.ActionDeliveryDelete).Err(); err != nil {
		return err
	}

	d, err := s.deliveryRepository.DeleteDelivery(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrDeliveryNotFound
	}

	s.mCounter.WithLabelValues("delivery_deleted_total").Inc()

	return nil
}
