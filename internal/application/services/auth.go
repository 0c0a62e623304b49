package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/thiagohrcosta/FastFeet-API/internal/application/ports"
	"github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/jwt"
)

const tokenTTL = time.Hour

type AuthService struct {
	accountRepository account.Repository
	jwtService        *jwt.Service
}

func NewAuthService(
	accountRepository account.Repository,
	jwtService *jwt.Service,

) ports.Auth {
	return &AuthService{
		accountRepository: accountRepository,
		jwtService:        jwtService,
	}
}

// Authenticate maps both an unknown document id and a wrong password to the
// same ErrInvalidCredentials so callers cannot enumerate accounts.
func (as *AuthService) Authenticate(ctx context.Context, documentID, password string) (string, error) {
	a, err := as.accountRepository.FetchAccountByDocumentID(ctx, documentID)
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(a.ID.String(), string(a.Role), tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
