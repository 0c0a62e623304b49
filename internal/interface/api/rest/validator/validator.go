package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	domain "github.com/thiagohrcosta/FastFeet-API/internal/domain/delivery"
	accountDTO "github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/dto/account"
	"github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/dto/auth"
	deliveryDTO "github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/dto/delivery"
	recipientDTO "github.com/thiagohrcosta/FastFeet-API/internal/interface/api/rest/dto/recipient"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt safe
)

func ValidatePage(page string) (int, error) {
	p := 1
	if page != "" {
		p, err := strconv.Atoi(page)
		if err != nil || p < 1 {
			return p, errors.New("invalid page")
		}
		return p, nil
	}

	return p, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func validPassword(p string) string {
	if strings.TrimSpace(p) == "" {
		return "password is required"
	}
	if l := utf8.RuneCountInString(p); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 6–72 characters"
	}
	return ""
}

func validRole(role string) string {
	switch role {
	case "", "ADMIN", "DELIVERYMAN":
		return ""
	}
	return "role must be ADMIN or DELIVERYMAN"
}

func ValidateCreateAccount(r accountDTO.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(r.DocumentID) == "" {
		errs["documentId"] = "documentId is required"
	}
	if msg := validPassword(r.Password); msg != "" {
		errs["password"] = msg
	}
	if msg := validRole(r.Role); msg != "" {
		errs["role"] = msg
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateUpdateAccount(r accountDTO.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs["name"] = "name must not be empty"
	}
	if r.DocumentID != nil && strings.TrimSpace(*r.DocumentID) == "" {
		errs["documentId"] = "documentId must not be empty"
	}
	if r.Role != nil {
		if msg := validRole(*r.Role); msg != "" {
			errs["role"] = msg
		}
	}
	if r.Password != nil {
		if msg := validPassword(*r.Password); msg != "" {
			errs["password"] = msg
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.DocumentID) == "" {
		errs["documentId"] = "documentId is required"
	}
	if msg := validPassword(r.Password); msg != "" {
		errs["password"] = msg
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateCreateRecipient(r recipientDTO.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(r.DocumentID) == "" {
		errs["documentId"] = "documentId is required"
	}
	if strings.TrimSpace(r.Address) == "" {
		errs["address"] = "address is required"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs["phone"] = "phone is required"
	}
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateUpdateRecipient(r recipientDTO.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Email != nil {
		if _, err := mail.ParseAddress(strings.TrimSpace(*r.Email)); err != nil {
			errs["email"] = "invalid email format"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validStatus(s string) string {
	if !domain.Status(s).Valid() {
		return "status must be one of PENDING, AWAITING, WITHDRAWN, DELIVERED, RETURNED"
	}
	return ""
}

func ValidateCreateDelivery(r deliveryDTO.Request) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Product) == "" {
		errs["product"] = "product is required"
	}
	if r.Status != "" {
		if msg := validStatus(r.Status); msg != "" {
			errs["status"] = msg
		}
	}
	if ok, _ := IsUUID(r.RecipientID); !ok {
		errs["recipientId"] = "recipientId must be a valid UUID"
	}
	if r.DeliverymanID != "" {
		if ok, _ := IsUUID(r.DeliverymanID); !ok {
			errs["deliverymanId"] = "deliverymanId must be a valid UUID"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateUpdateDelivery(r deliveryDTO.UpdateRequest) map[string]string {
	errs := make(map[string]string)

	if r.Status != nil && *r.Status != "" {
		if msg := validStatus(*r.Status); msg != "" {
			errs["status"] = msg
		}
	}
	if r.RecipientID != nil && *r.RecipientID != "" {
		if ok, _ := IsUUID(*r.RecipientID); !ok {
			errs["recipientId"] = "recipientId must be a valid UUID"
		}
	}
	if r.DeliverymanID != nil && *r.DeliverymanID != "" {
		if ok, _ := IsUUID(*r.DeliverymanID); !ok {
			errs["deliverymanId"] = "deliverymanId must be a valid UUID"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ValidateRecipientItems(r recipientDTO.ItemsRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "email is required"
	}
	if strings.TrimSpace(r.DocumentID) == "" {
		errs["documentId"] = "documentId is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
