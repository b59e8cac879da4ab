package material

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"woodshop/internal/core/apperror"
	"woodshop/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func validMaterial() Material {
	return Material{
		Name:          "MDF 15mm",
		Category:      "Chapas",
		UnitPrice:     dec("189.90"),
		UnitOfMeasure: "UN",
		StockQuantity: dec("12"),
		MinimumStock:  decPtr("5"),
		MaximumStock:  decPtr("40"),
	}
}

func TestNormalize(t *testing.T) {
	in := Material{
		Name:          "  Pine board ",
		Description:   strPtr("  "),
		Category:      " Wood ",
		UnitOfMeasure: " m2 ",
		Location:      strPtr(" rack B "),
	}

	out := Normalize(in)

	assert.Equal(t, "Pine board", out.Name)
	assert.Nil(t, out.Description)
	assert.Equal(t, "Wood", out.Category)
	assert.Equal(t, "M2", out.UnitOfMeasure)
	assert.Equal(t, "rack B", *out.Location)
	assert.Equal(t, " m2 ", in.UnitOfMeasure)
}

func TestNormalize_RoundsToStoredScale(t *testing.T) {
	in := validMaterial()
	in.UnitPrice = dec("10.125")
	in.StockQuantity = dec("2.0005")
	in.MinimumStock = decPtr("1.11111")
	in.MaximumStock = nil

	out := Normalize(in)

	assert.True(t, out.UnitPrice.Equal(dec("10.13")))
	assert.True(t, out.StockQuantity.Equal(dec("2.001")))
	assert.True(t, out.MinimumStock.Equal(dec("1.111")))
	assert.Nil(t, out.MaximumStock)
	assert.True(t, in.MinimumStock.Equal(dec("1.11111")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Material)
		wantErr string
	}{
		{"valid", func(m *Material) {}, ""},
		{"no limits", func(m *Material) { m.MinimumStock, m.MaximumStock = nil, nil }, ""},
		{"equal limits", func(m *Material) { m.MinimumStock, m.MaximumStock = decPtr("7"), decPtr("7") }, ""},
		{"missing name", func(m *Material) { m.Name = "" }, "name is required"},
		{"missing category", func(m *Material) { m.Category = "" }, "category is required"},
		{"missing unit", func(m *Material) { m.UnitOfMeasure = "" }, "unit of measure is required"},
		{"negative price", func(m *Material) { m.UnitPrice = dec("-0.01") }, "unit price must not be negative"},
		{"negative stock", func(m *Material) { m.StockQuantity = dec("-1") }, "stock quantity must not be negative"},
		{"negative minimum", func(m *Material) { m.MinimumStock = decPtr("-1") }, "minimum stock must not be negative"},
		{"negative maximum", func(m *Material) { m.MinimumStock, m.MaximumStock = nil, decPtr("-3") }, "maximum stock must not be negative"},
		{"minimum above maximum", func(m *Material) { m.MinimumStock, m.MaximumStock = decPtr("10"), decPtr("5") }, "minimum stock must not exceed maximum stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMaterial()
			tt.mutate(&m)

			err := Validate(m)
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

func TestMaterial_BelowMinimum(t *testing.T) {
	m := validMaterial()
	assert.False(t, m.BelowMinimum())

	m.StockQuantity = dec("4.5")
	assert.True(t, m.BelowMinimum())

	m.MinimumStock = nil
	assert.False(t, m.BelowMinimum())
}

type countingRepo struct {
	domain.CatalogRepository[*Material]
	calls int
}

func (r *countingRepo) Create(context.Context, *Material) domain.CreateResult {
	r.calls++
	return domain.Created(1, "material created successfully")
}

func (r *countingRepo) Update(context.Context, *Material) domain.OperationResult {
	r.calls++
	return domain.Succeeded("material updated successfully")
}

func TestService_MinimumAboveMaximumNeverReachesStore(t *testing.T) {
	repo := &countingRepo{}
	svc := NewService(repo)
	m := validMaterial()
	m.MinimumStock, m.MaximumStock = decPtr("10"), decPtr("5")

	res := svc.Create(context.Background(), &m)
	assert.Equal(t, domain.CodeValidation, res.ErrorCode)
	assert.False(t, res.Success)

	m.ID = 4
	upd := svc.Update(context.Background(), &m)
	assert.Equal(t, domain.CodeValidation, upd.ErrorCode)

	assert.Zero(t, repo.calls)
}

func TestService_CreateValid(t *testing.T) {
	repo := &countingRepo{}
	svc := NewService(repo)
	m := validMaterial()

	res := svc.Create(context.Background(), &m)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.GeneratedID)
	assert.Equal(t, 1, repo.calls)
}
