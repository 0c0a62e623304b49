package recipient

import (
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/recipient"
)

func fromDBModel(model *Recipient) *domain.Recipient {
	var rc = &domain.Recipient{
		ID:         model.ID,
		Name:       model.Name,
		DocumentID: model.DocumentID,
		Email:      model.Email,
		Address:    model.Address,
		Phone:      model.Phone,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return rc
}

func fromDBModels(models *Recipients) domain.Recipients {
	rcs := make(domain.Recipients, len(*models))
	for idx, rc := range *models {
		rcs[idx] = fromDBModel(rc)
	}

	return rcs
}
