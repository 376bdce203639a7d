package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateReservationRequest struct {
	Nome    string   `json:"nome"`
	Numeros []string `json:"numeros"`
}

func (req *CreateReservationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Nome, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Numeros, validation.Required),
	)
}
