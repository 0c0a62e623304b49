package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	accountDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/jwt"
)

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &accountDomain.Account{
		ID:           uuid.New(),
		DocumentID:   "12345678900",
		PasswordHash: string(hash),
		Role:         accountDomain.RoleAdmin,
	}

	tests := []struct {
		name       string
		documentID string
		password   string
		fetch      func(ctx context.Context, documentID string) (*accountDomain.Account, error)
		wantErr    error
	}{
		{
			name:       "unknown document id",
			documentID: "00000000000",
			password:   "secret-pass",
			fetch: func(ctx context.Context, documentID string) (*accountDomain.Account, error) {
				return nil, nil
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:       "wrong password",
			documentID: "12345678900",
			password:   "wrong-pass",
			fetch: func(ctx context.Context, documentID string) (*accountDomain.Account, error) {
				return stored, nil
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:       "success",
			documentID: "12345678900",
			password:   "secret-pass",
			fetch: func(ctx context.Context, documentID string) (*accountDomain.Account, error) {
				return stored, nil
			},
		},
	}

	jwtService := jwt.New("test-secret")
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(&fakeAccountRepo{FetchAccountByDocumentIDFunc: tt.fetch}, jwtService)

			token, err := svc.Authenticate(context.Background(), tt.documentID, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)

			claims, err := jwtService.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, stored.ID.String(), claims.AccountID)
			assert.Equal(t, string(accountDomain.RoleAdmin), claims.Role)
			assert.Equal(t, stored.ID.String(), claims.Subject)
		})
	}
}
