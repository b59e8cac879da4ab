package client

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"woodshop/internal/core/apperror"
)

var (
	digitsOnlyRE = regexp.MustCompile(`^\d+$`)
	emailRE      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const maxNameLength = 150

// validStates lists the Brazilian federative units.
var validStates = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {}, "ES": {}, "GO": {},
	"MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {}, "PB": {}, "PR": {}, "PE": {}, "PI": {},
	"RJ": {}, "RN": {}, "RS": {}, "RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// IsValidState reports whether uf is a Brazilian state code.
func IsValidState(uf string) bool {
	_, ok := validStates[uf]
	return ok
}

// Validate checks a normalized client. It returns the first violation found.
func Validate(c Client) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if utf8.RuneCountInString(c.Name) > maxNameLength {
		return apperror.NewValidation(fmt.Sprintf("name must not exceed %d characters", maxNameLength)).
			WithDetail("field", "name")
	}

	switch c.PersonType {
	case PersonIndividual:
		if !hasDigits(c.CPF, 11) {
			return apperror.NewValidation("CPF must contain 11 digits").WithDetail("field", "cpf")
		}
	case PersonOrganization:
		if !hasDigits(c.CNPJ, 14) {
			return apperror.NewValidation("CNPJ must contain 14 digits").WithDetail("field", "cnpj")
		}
	default:
		return apperror.NewValidation("person type must be F or J").
			WithDetail("field", "personType").
			WithDetail("value", string(c.PersonType))
	}

	if c.Email != nil && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").WithDetail("field", "email")
	}

	primaries := 0
	for i, p := range c.Phones {
		if n := len(p.Number); n < 10 || n > 11 || !digitsOnlyRE.MatchString(p.Number) {
			return apperror.NewValidation("phone number must contain 10 or 11 digits").
				WithDetail("field", fmt.Sprintf("phones[%d].number", i))
		}
		if p.Primary {
			primaries++
		}
	}
	if primaries > 1 {
		return apperror.NewValidation("only one phone can be primary").WithDetail("field", "phones")
	}

	primaries = 0
	for i, a := range c.Addresses {
		if err := validateAddress(i, a); err != nil {
			return err
		}
		if a.Primary {
			primaries++
		}
	}
	if primaries > 1 {
		return apperror.NewValidation("only one address can be primary").WithDetail("field", "addresses")
	}

	return nil
}

func validateAddress(i int, a Address) error {
	field := func(name string) string { return fmt.Sprintf("addresses[%d].%s", i, name) }

	if a.Street == "" {
		return apperror.NewValidation("address street is required").WithDetail("field", field("street"))
	}
	if a.City == "" {
		return apperror.NewValidation("address city is required").WithDetail("field", field("city"))
	}
	if !IsValidState(a.State) {
		return apperror.NewValidation("invalid state code, use a valid abbreviation such as SP, RJ or MG").
			WithDetail("field", field("state")).
			WithDetail("value", a.State)
	}
	if a.PostalCode != nil && !hasDigits(a.PostalCode, 8) {
		return apperror.NewValidation("postal code must contain 8 digits").WithDetail("field", field("postalCode"))
	}
	return nil
}

func hasDigits(s *string, n int) bool {
	return s != nil && len(*s) == n && digitsOnlyRE.MatchString(*s)
}

var errNilClient = apperror.NewValidation("client is required")
