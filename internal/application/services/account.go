package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"github.com/thiagohrcosta/FastFeet-API/internal/application/ports"
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	accountDB "github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/db/postgres/account"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

type AccountService struct {
	accountRepository domain.Repository
	mCounter          *prometheus.CounterVec
}

func NewAccountService(
	accountRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.AccountService {
	return &AccountService{
		accountRepository: accountRepository,
		mCounter:          mCounter,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, name, documentID, password string, role domain.Role) (*domain.Account, error) {
	if role == "" {
		role = domain.RoleDeliveryman
	}

	// Fast-path conflict check. The store's unique constraint stays the
	// authoritative signal against concurrent creates.
	existing, err := s.accountRepository.FetchAccountByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, accountDB.ErrDocumentIDInUse
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a, err := s.accountRepository.CreateAccount(ctx, domain.Account{
		Name:         name,
		DocumentID:   documentID,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.mCounter.WithLabelValues("account_created_total").Inc()

	return a, nil
}

func (s *AccountService) FindAccountByIdentifier(ctx context.Context, caller policy.Caller, identifier string) (*domain.Account, error) {
	if err := policy.Allow(caller, policy.ActionAccountRead).Err(); err != nil {
		return nil, err
	}

	a, err := s.accountRepository.FetchAccountByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAccountNotFound
	}

	return a, nil
}

func (s *AccountService) FindAccounts(ctx context.Context, caller policy.Caller, page int) (domain.Accounts, error) {
	if err := policy.Allow(caller, policy.ActionAccountList).Err(); err != nil {
		return nil, err
	}

	return s.accountRepository.FetchAccounts(ctx, page)
}

func (s *AccountService) FindDeliverymen(ctx context.Context, caller policy.Caller) (domain.Accounts, error) {
	if err := policy.Allow(caller, policy.ActionDeliverymanList).Err(); err != nil {
		return nil, err
	}

	return s.accountRepository.FetchDeliverymen(ctx)
}

func (s *AccountService) UpdateAccount(ctx context.Context, caller policy.Caller, id uuid.UUID, patch ports.AccountPatch) (*domain.Account, error) {
	if err := policy.Allow(caller, policy.ActionAccountUpdate).Err(); err != nil {
		return nil, err
	}

	upd := domain.Update{
		Name:       patch.Name,
		DocumentID: patch.DocumentID,
		Role:       patch.Role,
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		upd.PasswordHash = &h
	}

	a, err := s.accountRepository.UpdateAccount(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAccountNotFound
	}

	s.mCounter.WithLabelValues("account_updated_total").Inc()

	return a, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	if err := policy.Allow(caller, policy.ActionAccountDelete).Err(); err != nil {
		return err
	}

	a, err := s.accountRepository.DeleteAccount(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrAccountNotFound
	}

	s.mCounter.WithLabelValues("account_deleted_total").Inc()

	return nil
}
