package account

import (
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
)

func fromDBModel(model *Account) *domain.Account {
	var a = &domain.Account{
		ID:           model.ID,
		Name:         model.Name,
		DocumentID:   model.DocumentID,
		PasswordHash: model.PasswordHash,
		Role:         domain.Role(model.Role),

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return a
}

func fromDBModels(models *Accounts) domain.Accounts {
	as := make(domain.Accounts, len(*models))
	for idx, a := range *models {
		as[idx] = fromDBModel(a)
	}

	return as
}
