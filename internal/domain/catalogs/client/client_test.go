package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woodshop/internal/core/apperror"
	"woodshop/internal/domain"
)

func strPtr(s string) *string { return &s }

func validIndividual() Client {
	return Client{
		PersonType: "F",
		Name:       "Maria Souza",
		CPF:        strPtr("12345678909"),
		Phones:     []Phone{{Type: "mobile", Number: "11987654321", Primary: true}},
		Addresses: []Address{{
			Type: "home", Street: "Rua das Flores", City: "Campinas", State: "SP",
			PostalCode: strPtr("13010000"), Primary: true,
		}},
	}
}

func TestNormalize(t *testing.T) {
	in := Client{
		PersonType: " f ",
		Name:       "  Maria Souza ",
		TradeName:  strPtr("   "),
		CPF:        strPtr(" 123.456.789-09 "),
		Email:      strPtr(" Maria@Example.COM "),
		Phones:     []Phone{{Type: " mobile ", Number: "(11) 98765-4321"}},
		Addresses: []Address{{
			Street: " Rua A ", City: " Campinas ", State: " sp ", PostalCode: strPtr("13010-000"),
		}},
	}

	out := Normalize(in)

	assert.Equal(t, PersonIndividual, out.PersonType)
	assert.Equal(t, "MARIA SOUZA", out.Name)
	assert.Nil(t, out.TradeName)
	assert.Equal(t, "12345678909", *out.CPF)
	assert.Equal(t, "maria@example.com", *out.Email)
	assert.Equal(t, "mobile", out.Phones[0].Type)
	assert.Equal(t, "11987654321", out.Phones[0].Number)
	assert.Equal(t, "Rua A", out.Addresses[0].Street)
	assert.Equal(t, "SP", out.Addresses[0].State)
	assert.Equal(t, "13010000", *out.Addresses[0].PostalCode)

	// the input is untouched
	assert.Equal(t, "  Maria Souza ", in.Name)
	assert.Equal(t, "(11) 98765-4321", in.Phones[0].Number)
	assert.Equal(t, " sp ", in.Addresses[0].State)
}

func TestNormalize_NilChildrenBecomeEmpty(t *testing.T) {
	out := Normalize(Client{Name: "x"})
	assert.NotNil(t, out.Phones)
	assert.NotNil(t, out.Addresses)
}

func TestNormalize_Idempotent(t *testing.T) {
	c := validIndividual()
	c.Email = strPtr(" A@B.com ")
	once := Normalize(c)
	assert.Equal(t, once, Normalize(once))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Client)
		wantErr string
	}{
		{"valid individual", func(c *Client) {}, ""},
		{"valid organization", func(c *Client) {
			c.PersonType = PersonOrganization
			c.CPF = nil
			c.CNPJ = strPtr("11222333000181")
		}, ""},
		{"missing name", func(c *Client) { c.Name = "" }, "name is required"},
		{"unknown person type", func(c *Client) { c.PersonType = "X" }, "person type must be F or J"},
		{"individual without CPF", func(c *Client) { c.CPF = nil }, "CPF must contain 11 digits"},
		{"short CPF", func(c *Client) { c.CPF = strPtr("1234") }, "CPF must contain 11 digits"},
		{"organization without CNPJ", func(c *Client) { c.PersonType = PersonOrganization }, "CNPJ must contain 14 digits"},
		{"bad email", func(c *Client) { c.Email = strPtr("not-an-email") }, "invalid email format"},
		{"short phone", func(c *Client) { c.Phones[0].Number = "12345" }, "phone number must contain 10 or 11 digits"},
		{"two primary phones", func(c *Client) {
			c.Phones = append(c.Phones, Phone{Number: "1133334444", Primary: true})
		}, "only one phone can be primary"},
		{"invalid state", func(c *Client) { c.Addresses[0].State = "XX" }, "invalid state code, use a valid abbreviation such as SP, RJ or MG"},
		{"address without city", func(c *Client) { c.Addresses[0].City = "" }, "address city is required"},
		{"bad postal code", func(c *Client) { c.Addresses[0].PostalCode = strPtr("1301") }, "postal code must contain 8 digits"},
		{"two primary addresses", func(c *Client) {
			c.Addresses = append(c.Addresses, Address{Street: "B", City: "C", State: "RJ", Primary: true})
		}, "only one address can be primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validIndividual()
			tt.mutate(&c)

			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
			assert.Equal(t, tt.wantErr, apperror.MessageOf(err))
		})
	}
}

func TestIsValidState(t *testing.T) {
	for _, uf := range []string{"AC", "DF", "SP", "TO"} {
		assert.True(t, IsValidState(uf), uf)
	}
	for _, uf := range []string{"", "sp", "XX", "BR"} {
		assert.False(t, IsValidState(uf), uf)
	}
}

type recordingRepo struct {
	calls int
	got   *Client
}

func (r *recordingRepo) List(_ context.Context, req domain.PageRequest) (domain.PageResult[*Client], error) {
	r.calls++
	return domain.NewPageResult[*Client](nil, 0, req), nil
}

func (r *recordingRepo) GetByID(context.Context, int) (*Client, bool, error) {
	r.calls++
	return nil, false, nil
}

func (r *recordingRepo) Create(_ context.Context, c *Client) domain.CreateResult {
	r.calls++
	r.got = c
	return domain.Created(1, "client created successfully")
}

func (r *recordingRepo) Update(_ context.Context, c *Client) domain.OperationResult {
	r.calls++
	r.got = c
	return domain.Succeeded("client updated successfully")
}

func (r *recordingRepo) Delete(context.Context, int) domain.OperationResult {
	r.calls++
	return domain.Succeeded("client deleted successfully")
}

func TestService_LowercaseIndividualWithoutCPF(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	res := svc.Create(context.Background(), &Client{PersonType: "f", Name: "João"})

	assert.False(t, res.Success)
	assert.Equal(t, domain.CodeValidation, res.ErrorCode)
	assert.Equal(t, "CPF must contain 11 digits", res.Message)
	assert.Zero(t, repo.calls)
}

func TestService_CreateAndUpdateNormalizeIdentically(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)
	raw := validIndividual()
	raw.Name = " maria "
	raw.CPF = strPtr("123.456.789-09")

	require.True(t, svc.Create(context.Background(), &raw).Success)
	created := *repo.got

	raw.ID = 10
	require.True(t, svc.Update(context.Background(), &raw).Success)
	updated := *repo.got

	assert.Equal(t, 10, updated.ID)
	updated.ID = 0
	assert.Equal(t, created, updated)
	assert.Equal(t, "MARIA", created.Name)
	assert.Equal(t, "12345678909", *created.CPF)
}

func TestPrepare_Nil(t *testing.T) {
	_, err := Prepare(nil)
	assert.True(t, apperror.IsValidation(err))
}

func TestService_NilClientOnUpdateAndCreate(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo)

	upd := svc.Update(context.Background(), nil)
	assert.Equal(t, domain.CodeValidation, upd.ErrorCode)
	assert.Equal(t, "client is required", upd.Message)

	res := svc.Create(context.Background(), nil)
	assert.Equal(t, domain.CodeValidation, res.ErrorCode)
	assert.Equal(t, "client is required", res.Message)

	assert.Zero(t, repo.calls)
}
