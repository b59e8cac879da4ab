package client

import (
	"strings"
)

var (
	taxIDStripper  = strings.NewReplacer(".", "", "-", "", "/", "", " ", "")
	phoneStripper  = strings.NewReplacer("(", "", ")", "", "-", "", " ", "", ".", "")
	postalStripper = strings.NewReplacer("-", "", ".", "", " ", "")
)

// Normalize returns a cleaned copy of c. The argument is left untouched,
// child slices included.
func Normalize(c Client) Client {
	out := c

	out.PersonType = PersonType(strings.ToUpper(strings.TrimSpace(string(c.PersonType))))
	out.Name = strings.ToUpper(strings.TrimSpace(c.Name))
	out.TradeName = trimmed(c.TradeName)
	out.CPF = stripped(c.CPF, taxIDStripper)
	out.CNPJ = stripped(c.CNPJ, taxIDStripper)
	out.StateRegistration = trimmed(c.StateRegistration)
	out.Notes = trimmed(c.Notes)
	if email := trimmed(c.Email); email != nil {
		lower := strings.ToLower(*email)
		out.Email = &lower
	} else {
		out.Email = nil
	}

	out.Phones = make([]Phone, 0, len(c.Phones))
	for _, p := range c.Phones {
		p.Type = strings.TrimSpace(p.Type)
		p.Number = phoneStripper.Replace(strings.TrimSpace(p.Number))
		out.Phones = append(out.Phones, p)
	}

	out.Addresses = make([]Address, 0, len(c.Addresses))
	for _, a := range c.Addresses {
		a.Type = strings.TrimSpace(a.Type)
		a.Street = strings.TrimSpace(a.Street)
		a.Number = trimmed(a.Number)
		a.Complement = trimmed(a.Complement)
		a.District = trimmed(a.District)
		a.City = strings.TrimSpace(a.City)
		a.State = strings.ToUpper(strings.TrimSpace(a.State))
		a.PostalCode = stripped(a.PostalCode, postalStripper)
		out.Addresses = append(out.Addresses, a)
	}

	return out
}

// trimmed trims *s and maps blank values to nil.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func stripped(s *string, r *strings.Replacer) *string {
	t := trimmed(s)
	if t == nil {
		return nil
	}
	v := r.Replace(*t)
	if v == "" {
		return nil
	}
	return &v
}
