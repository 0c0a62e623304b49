package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/thiagohrcosta/FastFeet-API/internal/application/ports"
	deliveryDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/recipient"
	recipientDB "github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres/recipient"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

type RecipientService struct {
	recipientRepository domain.Repository
	deliveryRepository  deliveryDomain.Repository
	mCounter            *prometheus.CounterVec
}

func NewRecipientService(
	recipientRepository domain.Repository,
	deliveryRepository deliveryDomain.Repository,
	mCounter *prometheus.CounterVec,
) ports.RecipientService {
	return &RecipientService{
		recipientRepository: recipientRepository,
		deliveryRepository:  deliveryRepository,
		mCounter:            mCounter,
	}
}

func (s *RecipientService) CreateRecipient(ctx context.Context, caller policy.Caller, req domain.Recipient) (*domain.Recipient, error) {
	if err := policy.Allow(caller, policy.ActionRecipientCreate).Err(); err != nil {
		return nil, err
	}

	// Fast-path conflict checks; the unique constraints remain authoritative.
	existing, err := s.recipientRepository.FetchRecipientByIdentifier(ctx, req.DocumentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, recipientDB.ErrDocumentIDInUse
	}
	existing, err = s.recipientRepository.FetchRecipientByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, recipientDB.ErrEmailInUse
	}

	rc, err := s.recipientRepository.CreateRecipient(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mCounter.WithLabelValues("recipient_created_total").Inc()

	return rc, nil
}

func (s *RecipientService) FindRecipientByIdentifier(ctx context.Context, caller policy.Caller, identifier string) (*domain.Recipient, error) {
	if err := policy.Allow(caller, policy.ActionRecipientRead).Err(); err != nil {
		return nil, err
	}

	rc, err := s.recipientRepository.FetchRecipientByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, ErrRecipientNotFound
	}

	return rc, nil
}

func (s *RecipientService) FindRecipients(ctx context.Context, caller policy.Caller, page int) (domain.Recipients, error) {
	if err := policy.Allow(caller, policy.ActionRecipientList).Err(); err != nil {
		return nil, err
	}

	return s.recipientRepository.FetchRecipients(ctx, page)
}

func (s *RecipientService) UpdateRecipient(ctx context.Context, caller policy.Caller, id uuid.UUID, patch domain.Update) (*domain.Recipient, error) {
	if err := policy.Allow(caller, policy.ActionRecipientUpdate).Err(); err != nil {
		return nil, err
	}

	rc, err := s.recipientRepository.UpdateRecipient(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if rc == nil {
		return nil, ErrRecipientNotFound
	}

	s.mCounter.WithLabelValues("recipient_updated_total").Inc()

	return rc, nil
}

func (s *RecipientService) DeleteRecipient(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	if err := policy.Allow(caller, policy.ActionRecipientDelete).Err(); err != nil {
		return err
	}

	rc, err := s.recipientRepository.DeleteRecipient(ctx, id)
	if err != nil {
		return err
	}
	if rc == nil {
		return ErrRecipientNotFound
	}

	s.mCounter.WithLabelValues("recipient_deleted_total").Inc()

	return nil
}

// FindRecipientItems proves recipient identity without a token: the
// presented email and document id must both match the stored record.
func (s *RecipientService) FindRecipientItems(ctx context.Context, email, documentID string) (*domain.Recipient, deliveryDomain.Deliveries, error) {
	rc, err := s.recipientRepository.FetchRecipientByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if rc == nil {
		return nil, nil, ErrRecipientNotFound
	}
	if rc.DocumentID != documentID {
		return nil, nil, ErrInvalidCredentials
	}

	ds, err := s.deliveryRepository.FetchDeliveriesByRecipient(ctx, rc.ID)
	if err != nil {
		return nil, nil, err
	}

	return rc, ds, nil
}
