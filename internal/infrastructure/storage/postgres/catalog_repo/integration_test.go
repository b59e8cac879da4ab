package catalog_repo

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"woodshop/internal/domain"
	"woodshop/internal/domain/catalogs/client"
	"woodshop/internal/domain/catalogs/material"
	"woodshop/internal/infrastructure/storage/postgres"
)

// setupTestPool starts PostgreSQL in a container, applies the schema and
// returns a pool. Skipped unless TEST_INTEGRATION is set.
func setupTestPool(t *testing.T) *postgres.Pool {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION is not set")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		tcpostgres.WithDatabase("woodshop_test"),
		tcpostgres.WithUsername("woodshop"),
		tcpostgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(ctx, dsn))

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dsn))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func strPtr(s string) *string { return &s }

func TestIntegration_ClientLifecycle(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	svc := client.NewService(NewClientRepo(pool))

	created := svc.Create(ctx, &client.Client{
		PersonType: "f",
		Name:       "  maria souza ",
		CPF:        strPtr("123.456.789-09"),
		Email:      strPtr(" Maria@Example.com "),
		Phones: []client.Phone{
			{Type: "home", Number: "(11) 3333-4444"},
			{Type: "mobile", Number: "(11) 98765-4321", Primary: true},
		},
		Addresses: []client.Address{{
			Type: "home", Street: "Rua das Flores", City: "Campinas", State: "sp",
			PostalCode: strPtr("13010-000"), Primary: true,
		}},
	})
	require.True(t, created.Success, created.Message)
	require.Positive(t, created.GeneratedID)

	got, found, err := svc.GetByID(ctx, created.GeneratedID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "MARIA SOUZA", got.Name)
	assert.Equal(t, "12345678909", *got.CPF)
	assert.Equal(t, "maria@example.com", *got.Email)
	require.Len(t, got.Phones, 2)
	assert.Equal(t, "11987654321", got.Phones[0].Number)
	assert.True(t, got.Phones[0].Primary)
	require.Len(t, got.Addresses, 1)
	assert.Equal(t, "SP", got.Addresses[0].State)
	assert.Equal(t, "13010000", *got.Addresses[0].PostalCode)

	dup := svc.Create(ctx, &client.Client{PersonType: "F", Name: "Other", CPF: strPtr("12345678909")})
	assert.Equal(t, domain.CodeValidation, dup.ErrorCode)

	got.Name = "Maria S. Lima"
	got.Phones = []client.Phone{{Type: "mobile", Number: "11912345678", Primary: true}}
	updated := svc.Update(ctx, got)
	require.True(t, updated.Success, updated.Message)

	got, _, err = svc.GetByID(ctx, created.GeneratedID)
	require.NoError(t, err)
	assert.Equal(t, "MARIA S. LIMA", got.Name)
	require.Len(t, got.Phones, 1)
	assert.Equal(t, "11912345678", got.Phones[0].Number)
	assert.NotNil(t, got.UpdatedAt)

	page, err := svc.List(ctx, domain.PageRequest{SearchTerm: "lima"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalItems)

	deleted := svc.Delete(ctx, created.GeneratedID)
	require.True(t, deleted.Success, deleted.Message)

	_, found, err = svc.GetByID(ctx, created.GeneratedID)
	require.NoError(t, err)
	assert.False(t, found)

	page, err = svc.List(ctx, domain.PageRequest{})
	require.NoError(t, err)
	assert.Zero(t, page.TotalItems)

	again := svc.Delete(ctx, created.GeneratedID)
	assert.Equal(t, domain.CodeNotFound, again.ErrorCode)

	missing := svc.Update(ctx, &client.Client{
		BaseEntity: got.BaseEntity, PersonType: "F", Name: "Ghost", CPF: strPtr("98765432100"),
	})
	assert.Equal(t, domain.CodeNotFound, missing.ErrorCode)
}

func TestIntegration_MaterialPaging(t *testing.T) {
	pool := setupTestPool(t)
	ctx := context.Background()
	repo := NewMaterialRepo(pool)
	svc := material.NewService(repo)

	for i := 1; i <= 120; i++ {
		res := svc.Create(ctx, &material.Material{
			Name:          fmt.Sprintf("Board %03d", i),
			Category:      "Wood",
			UnitPrice:     decimal.NewFromInt(int64(i)),
			UnitOfMeasure: "un",
			StockQuantity: decimal.NewFromInt(10),
		})
		require.True(t, res.Success, res.Message)
	}

	page, err := svc.List(ctx, domain.PageRequest{Page: 2, PageSize: 50})
	require.NoError(t, err)
	assert.Len(t, page.Items, 50)
	assert.Equal(t, 120, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages())
	assert.True(t, page.HasPrevious())
	assert.True(t, page.HasNext())
	assert.Equal(t, "Board 051", page.Items[0].Name)
	assert.Equal(t, "UN", page.Items[0].UnitOfMeasure)

	last, err := svc.List(ctx, domain.PageRequest{Page: 3, PageSize: 50})
	require.NoError(t, err)
	assert.Len(t, last.Items, 20)
	assert.False(t, last.HasNext())

	literal, err := svc.List(ctx, domain.PageRequest{SearchTerm: "%"})
	require.NoError(t, err)
	assert.Zero(t, literal.TotalItems)

	minStock, maxStock := decimal.NewFromInt(10), decimal.NewFromInt(5)
	bad := svc.Create(ctx, &material.Material{
		Name: "Glue", Category: "Consumables", UnitOfMeasure: "L",
		MinimumStock: &minStock, MaximumStock: &maxStock,
	})
	assert.Equal(t, domain.CodeValidation, bad.ErrorCode)

	page, err = svc.List(ctx, domain.PageRequest{SearchTerm: "glue"})
	require.NoError(t, err)
	assert.Zero(t, page.TotalItems)
}
