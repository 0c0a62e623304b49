package delivery

import (
	accountDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
	recipientDomain "github.com/thiagohrcosta/FastFeet-API/internal/domain/recipient"
)

func ToResponseDelivery(dDomain domain.Delivery) Delivery {
	var d = Delivery{
		ID:            dDomain.ID,
		Product:       dDomain.Product,
		Status:        string(dDomain.Status),
		PhotoURL:      dDomain.PhotoURL,
		RecipientID:   dDomain.RecipientID,
		DeliverymanID: dDomain.DeliverymanID,
		CreatedAt:     dDomain.CreatedAt,
	}

	return d
}

func ToResponseDeliveries(dsDomain domain.Deliveries) Deliveries {
	ds := make(Deliveries, len(dsDomain))
	for idx, d := range dsDomain {
		ds[idx] = ToResponseDelivery(*d)
	}

	return ds
}

func ToResponseDetails(
	dDomain domain.Delivery,
	rcDomain *recipientDomain.Recipient,
	dmDomain *accountDomain.Account,
) Details {
	details := Details{
		Delivery: ToResponseDelivery(dDomain),
	}
	if rcDomain != nil {
		details.Recipient = &RecipientRef{
			ID:      rcDomain.ID,
			Name:    rcDomain.Name,
			Email:   rcDomain.Email,
			Address: rcDomain.Address,
			Phone:   rcDomain.Phone,
		}
	}
	if dmDomain != nil {
		details.Deliveryman = &DeliverymanRef{
			ID:   dmDomain.ID,
			Name: dmDomain.Name,
		}
	}

	return details
}

func ToResponseUpdated(dDomain domain.Delivery) Updated {
	return Updated{
		ID:            dDomain.ID,
		Status:        string(dDomain.Status),
		DeliverymanID: dDomain.DeliverymanID,
		PhotoURL:      dDomain.PhotoURL,
	}
}
