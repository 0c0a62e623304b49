package recipient

import (
	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/recipient"
)

func ToResponseRecipient(rcDomain domain.Recipient) Recipient {
	var rc = Recipient{
		ID:         rcDomain.ID,
		Name:       rcDomain.Name,
		DocumentID: rcDomain.DocumentID,
		Email:      rcDomain.Email,
		Address:    rcDomain.Address,
		Phone:      rcDomain.Phone,
	}

	return rc
}

func ToResponseRecipients(rcsDomain domain.Recipients) Recipients {
	rcs := make(Recipients, len(rcsDomain))
	for idx, rc := range rcsDomain {
		rcs[idx] = ToResponseRecipient(*rc)
	}

	return rcs
}

func ToDomain(req Request) domain.Recipient {
	return domain.Recipient{
		Name:       req.Name,
		DocumentID: req.DocumentID,
		Email:      req.Email,
		Address:    req.Address,
		Phone:      req.Phone,
	}
}

func ToDomainUpdate(req UpdateRequest) domain.Update {
	return domain.Update{
		Name:       req.Name,
		DocumentID: req.DocumentID,
		Email:      req.Email,
		Address:    req.Address,
		Phone:      req.Phone,
	}
}
