package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	deliveryDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/recipient"
	recipientDB "github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres/recipient"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

func TestFindRecipientItems(t *testing.T) {
	rcID := uuid.New()
	stored := &domain.Recipient{
		ID:         rcID,
		Name:       "Ana",
		DocumentID: "98765432100",
		Email:      "ana@example.com",
	}

	rr := &fakeRecipientRepo{
		FetchRecipientByEmailFunc: func(ctx context.Context, email string) (*domain.Recipient, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, nil
		},
	}
	dr := &fakeDeliveryRepo{
		FetchDeliveriesByRecipientFunc: func(ctx context.Context, recipientID uuid.UUID) (deliveryDomain.Deliveries, error) {
			require.Equal(t, rcID, recipientID)
			return deliveryDomain.Deliveries{
				{ID: uuid.New(), Product: "Notebook", Status: deliveryDomain.StatusWithdrawn, RecipientID: rcID},
			}, nil
		},
	}
	svc := NewRecipientService(rr, dr, testCounter())

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.FindRecipientItems(context.Background(), "nobody@example.com", stored.DocumentID)
		require.ErrorIs(t, err, ErrRecipientNotFound)
	})

	t.Run("document id mismatch", func(t *testing.T) {
		_, _, err := svc.FindRecipientItems(context.Background(), stored.Email, "00000000000")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("both match", func(t *testing.T) {
		rc, ds, err := svc.FindRecipientItems(context.Background(), stored.Email, stored.DocumentID)
		require.NoError(t, err)
		assert.Equal(t, stored, rc)
		require.Len(t, ds, 1)
		assert.Equal(t, "Notebook", ds[0].Product)
	})
}

func TestCreateRecipient_Conflicts(t *testing.T) {
	stored := &domain.Recipient{ID: uuid.New(), DocumentID: "123", Email: "taken@example.com"}

	tests := []struct {
		name    string
		byIdent func(ctx context.Context, identifier string) (*domain.Recipient, error)
		byEmail func(ctx context.Context, email string) (*domain.Recipient, error)
		wantErr error
	}{
		{
			name: "document id taken",
			byIdent: func(ctx context.Context, _ string) (*domain.Recipient, error) {
				return stored, nil
			},
			wantErr: recipientDB.ErrDocumentIDInUse,
		},
		{
			name: "email taken",
			byIdent: func(ctx context.Context, _ string) (*domain.Recipient, error) {
				return nil, nil
			},
			byEmail: func(ctx context.Context, _ string) (*domain.Recipient, error) {
				return stored, nil
			},
			wantErr: recipientDB.ErrEmailInUse,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rr := &fakeRecipientRepo{
				FetchRecipientByIdentifierFunc: tt.byIdent,
				FetchRecipientByEmailFunc:      tt.byEmail,
			}
			svc := NewRecipientService(rr, &fakeDeliveryRepo{}, testCounter())

			_, err := svc.CreateRecipient(context.Background(), adminCaller(), domain.Recipient{
				Name:       "Ana",
				DocumentID: "123",
				Email:      "taken@example.com",
				Address:    "Main St 1",
				Phone:      "+5511999999999",
			})
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecipientCRUD_DeliverymanDenied(t *testing.T) {
	svc := NewRecipientService(&fakeRecipientRepo{}, &fakeDeliveryRepo{}, testCounter())
	caller := policy.Caller{AccountID: uuid.New(), Role: accountDomain.RoleDeliveryman}

	_, err := svc.CreateRecipient(context.Background(), caller, domain.Recipient{})
	require.ErrorIs(t, err, policy.ErrUnauthorized)

	_, err = svc.FindRecipients(context.Background(), caller, 1)
	require.ErrorIs(t, err, policy.ErrUnauthorized)

	err = svc.DeleteRecipient(context.Background(), caller, uuid.New())
	require.ErrorIs(t, err, policy.ErrUnauthorized)
}
