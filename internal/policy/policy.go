// Package policy holds the role-based authorization rules for every
// resource operation, plus the assigned-deliveryman gate on marking a
// delivery DELIVERED. Decisions are pure: no I/O, no context, no clock.
// Unauthenticated callers never reach this package; token verification
// happens upstream in the HTTP middleware.
package policy

import (
	"errors"

	"github.com/google/uuid"

	"github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
)

type Action string

const (
	ActionAccountRead   Action = "account:read"
	ActionAccountList   Action = "account:list"
	ActionAccountUpdate Action = "account:update"
	ActionAccountDelete Action = "account:delete"

	ActionRecipientCreate Action = "recipient:create"
	ActionRecipientRead   Action = "recipient:read"
	ActionRecipientList   Action = "recipient:list"
	ActionRecipientUpdate Action = "recipient:update"
	ActionRecipientDelete Action = "recipient:delete"

	ActionDeliveryCreate    Action = "delivery:create"
	ActionDeliveryRead      Action = "delivery:read"
	ActionDeliveryList      Action = "delivery:list"
	ActionDeliveryListItems Action = "delivery:list-items"
	ActionDeliveryUpdate    Action = "delivery:update"
	ActionDeliveryDelete    Action = "delivery:delete"

	ActionDeliverymanList Action = "deliveryman:list"
)

// Reason is a stable code carried by every DENY so controllers can map
// it to the right externally visible error.
type Reason string

const (
	ReasonAllowed          Reason = "allowed"
	ReasonUnauthorized     Reason = "unauthorized"
	ReasonWrongDeliveryman Reason = "delivered-by-wrong-deliveryman"
)

var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrWrongDeliveryman = errors.New("only the deliveryman who withdrew the package can mark it as delivered")
)

// Caller is the authenticated identity a policy decision runs against.
type Caller struct {
	AccountID uuid.UUID
	Role      account.Role
}

type Decision struct {
	Allowed bool
	Reason  Reason
}

// Err maps a DENY to its sentinel error; nil on ALLOW.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	if d.Reason == ReasonWrongDeliveryman {
		return ErrWrongDeliveryman
	}
	return ErrUnauthorized
}

var allowedRoles = map[Action][]account.Role{
	ActionAccountRead:   {account.RoleAdmin},
	ActionAccountList:   {account.RoleAdmin},
	ActionAccountUpdate: {account.RoleAdmin},
	ActionAccountDelete: {account.RoleAdmin},

	ActionRecipientCreate: {account.RoleAdmin},
	ActionRecipientRead:   {account.RoleAdmin},
	ActionRecipientList:   {account.RoleAdmin},
	ActionRecipientUpdate: {account.RoleAdmin},
	ActionRecipientDelete: {account.RoleAdmin},

	ActionDeliveryCreate:    {account.RoleAdmin},
	ActionDeliveryRead:      {account.RoleAdmin, account.RoleDeliveryman},
	ActionDeliveryList:      {account.RoleAdmin},
	ActionDeliveryListItems: {account.RoleAdmin, account.RoleDeliveryman},
	ActionDeliveryUpdate:    {account.RoleAdmin, account.RoleDeliveryman},
	ActionDeliveryDelete:    {account.RoleAdmin},

	ActionDeliverymanList: {account.RoleAdmin},
}

// Allow decides whether the caller's role may perform the action.
func Allow(c Caller, a Action) Decision {
	for _, r := range allowedRoles[a] {
		if c.Role == r {
			return Decision{Allowed: true, Reason: ReasonAllowed}
		}
	}
	return Decision{Allowed: false, Reason: ReasonUnauthorized}
}

// Deliver gates setting a delivery's status to DELIVERED. Admins may always
// do it; a deliveryman only when they are the one assigned to the delivery.
// The DENY reason is distinct from the generic unauthorized one.
func Deliver(c Caller, assigned *uuid.UUID) Decision {
	if c.Role == account.RoleAdmin {
		return Decision{Allowed: true, Reason: ReasonAllowed}
	}
	if c.Role == account.RoleDeliveryman {
		if assigned == nil || *assigned != c.AccountID {
			return Decision{Allowed: false, Reason: ReasonWrongDeliveryman}
		}
		return Decision{Allowed: true, Reason: ReasonAllowed}
	}
	return Decision{Allowed: false, Reason: ReasonUnauthorized}
}
