// Package client provides the Client catalog: the shop's customers,
// individuals (CPF) or organizations (CNPJ), with their phones and addresses.
package client

import (
	"woodshop/internal/core/entity"
)

// PersonType distinguishes individuals from organizations.
type PersonType string

const (
	PersonIndividual   PersonType = "F" // pessoa física, identified by CPF
	PersonOrganization PersonType = "J" // pessoa jurídica, identified by CNPJ
)

// Client is a customer of the shop.
type Client struct {
	entity.BaseEntity

	PersonType PersonType `db:"person_type" json:"personType"`

	// Name is the legal name (razão social for organizations)
	Name string `db:"name" json:"name"`

	TradeName *string `db:"trade_name" json:"tradeName,omitempty"`

	// CPF holds 11 digits for individuals
	CPF *string `db:"cpf" json:"cpf,omitempty"`

	// CNPJ holds 14 digits for organizations
	CNPJ *string `db:"cnpj" json:"cnpj,omitempty"`

	StateRegistration *string `db:"state_registration" json:"stateRegistration,omitempty"`
	Email             *string `db:"email" json:"email,omitempty"`
	Notes             *string `db:"notes" json:"notes,omitempty"`

	// Child collections, loaded eagerly by GetByID and replaced wholesale on update
	Phones    []Phone   `db:"-" json:"phones"`
	Addresses []Address `db:"-" json:"addresses"`
}

// Phone is a contact number of a client.
type Phone struct {
	ID       int    `db:"id" json:"id,omitempty"`
	ClientID int    `db:"client_id" json:"clientId,omitempty"`
	Type     string `db:"type" json:"type"`
	Number   string `db:"number" json:"number"`
	Primary  bool   `db:"is_primary" json:"primary"`
}

// Address is a postal address of a client.
type Address struct {
	ID         int     `db:"id" json:"id,omitempty"`
	ClientID   int     `db:"client_id" json:"clientId,omitempty"`
	Type       string  `db:"type" json:"type"`
	Street     string  `db:"street" json:"street"`
	Number     *string `db:"number" json:"number,omitempty"`
	Complement *string `db:"complement" json:"complement,omitempty"`
	District   *string `db:"district" json:"district,omitempty"`
	City       string  `db:"city" json:"city"`
	State      string  `db:"state" json:"state"`
	PostalCode *string `db:"postal_code" json:"postalCode,omitempty"`
	Primary    bool    `db:"is_primary" json:"primary"`
}
