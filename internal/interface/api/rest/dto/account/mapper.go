package account

import (
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
)

func ToResponseCreated(aDomain domain.Account) Created {
	return Created{
		ID:   aDomain.ID,
		Name: aDomain.Name,
	}
}

func ToResponseAccount(aDomain domain.Account) Account {
	var a = Account{
		ID:         aDomain.ID,
		Name:       aDomain.Name,
		DocumentID: aDomain.DocumentID,
		Role:       string(aDomain.Role),
	}

	return a
}

func ToResponseAccounts(asDomain domain.Accounts) Accounts {
	as := make(Accounts, len(asDomain))
	for idx, a := range asDomain {
		as[idx] = ToResponseAccount(*a)
	}

	return as
}
