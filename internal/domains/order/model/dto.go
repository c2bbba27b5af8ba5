package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required, validation.In(
			string(StatusPending),
			string(StatusProcessing),
			string(StatusShipped),
			string(StatusDelivered),
			string(StatusCancelled),
		)),
	)
}

type ListOrdersQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	Status string `form:"status"`
}
