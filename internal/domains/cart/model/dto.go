package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// MaxItemQuantity bounds a single request's quantity at the API edge.
const MaxItemQuantity = 99

type AddItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

func (r AddItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductID, validation.By(validateUUID)),
		validation.Field(&r.Quantity, validation.Required, validation.Min(1), validation.Max(MaxItemQuantity)),
	)
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (r UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Quantity, validation.Required, validation.Min(1), validation.Max(MaxItemQuantity)),
	)
}

type SetShippingAddressRequest struct {
	AddressID uuid.UUID `json:"addressId"`
}

func (r SetShippingAddressRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AddressID, validation.By(validateUUID)),
	)
}

type CheckoutRequest struct {
	AddressID *uuid.UUID `json:"addressId"`
}

func validateUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return validation.NewError("validation_uuid", "must be a valid UUID")
	}
	return nil
}
