package delivery

import (
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
)

func fromDBModel(model *Delivery) *domain.Delivery {
	var d = &domain.Delivery{
		ID:            model.ID,
		Product:       model.Product,
		Status:        domain.Status(model.Status),
		PhotoURL:      model.PhotoURL,
		RecipientID:   model.RecipientID,
		DeliverymanID: model.DeliverymanID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return d
}

func fromDBModels(models *Deliveries) domain.Deliveries {
	ds := make(domain.Deliveries, len(*models))
	for idx, d := range *models {
		ds[idx] = fromDBModel(d)
	}

	return ds
}
