package dto

import (
	"woodshop/internal/domain/catalogs/client"
)

// ClientRequest is the request body for creating or updating a client.
// Field rules are enforced by the client service, not by binding tags.
type ClientRequest struct {
	PersonType        string           `json:"personType"`
	Name              string           `json:"name"`
	TradeName         *string          `json:"tradeName"`
	CPF               *string          `json:"cpf"`
	CNPJ              *string          `json:"cnpj"`
	StateRegistration *string          `json:"stateRegistration"`
	Email             *string          `json:"email"`
	Notes             *string          `json:"notes"`
	Phones            []PhoneRequest   `json:"phones"`
	Addresses         []AddressRequest `json:"addresses"`
}

// PhoneRequest is a phone inside ClientRequest.
type PhoneRequest struct {
	Type    string `json:"type"`
	Number  string `json:"number"`
	Primary bool   `json:"primary"`
}

// AddressRequest is an address inside ClientRequest.
type AddressRequest struct {
	Type       string  `json:"type"`
	Street     string  `json:"street"`
	Number     *string `json:"number"`
	Complement *string `json:"complement"`
	District   *string `json:"district"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode *string `json:"postalCode"`
	Primary    bool    `json:"primary"`
}

// ToEntity converts DTO to domain entity. id is zero for creation.
func (r ClientRequest) ToEntity(id int) *client.Client {
	c := &client.Client{
		PersonType:        client.PersonType(r.PersonType),
		Name:              r.Name,
		TradeName:         r.TradeName,
		CPF:               r.CPF,
		CNPJ:              r.CNPJ,
		StateRegistration: r.StateRegistration,
		Email:             r.Email,
		Notes:             r.Notes,
		Phones:            make([]client.Phone, 0, len(r.Phones)),
		Addresses:         make([]client.Address, 0, len(r.Addresses)),
	}
	c.ID = id

	for _, p := range r.Phones {
		c.Phones = append(c.Phones, client.Phone{
			ClientID: id,
			Type:     p.Type,
			Number:   p.Number,
			Primary:  p.Primary,
		})
	}
	for _, a := range r.Addresses {
		c.Addresses = append(c.Addresses, client.Address{
			ClientID:   id,
			Type:       a.Type,
			Street:     a.Street,
			Number:     a.Number,
			Complement: a.Complement,
			District:   a.District,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Primary:    a.Primary,
		})
	}
	return c
}
