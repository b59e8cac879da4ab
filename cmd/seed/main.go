// Package main provides a CLI tool for seeding the database with demo data.
// Records go through the catalog services, so they are normalized and
// validated exactly like API input. Running it twice is harmless.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"woodshop/internal/config"
	"woodshop/internal/domain"
	"woodshop/internal/domain/catalogs/client"
	"woodshop/internal/domain/catalogs/material"
	"woodshop/internal/infrastructure/storage/postgres"
	"woodshop/internal/infrastructure/storage/postgres/catalog_repo"
	"woodshop/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger.SetDefault(log)

	ctx := context.Background()

	if err := postgres.Migrate(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalw("failed to apply schema", "error", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Pool())
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	materials := material.NewService(catalog_repo.NewMaterialRepo(pool))
	if err := seedMaterials(ctx, materials, log); err != nil {
		log.Fatalw("failed to seed materials", "error", err)
	}

	clients := client.NewService(catalog_repo.NewClientRepo(pool))
	if err := seedClients(ctx, clients, log); err != nil {
		log.Fatalw("failed to seed clients", "error", err)
	}

	log.Info("seeding completed successfully")
}

func seedMaterials(ctx context.Context, svc *material.Service, log *logger.Logger) error {
	for _, m := range demoMaterials() {
		exists, err := hasMatch(ctx, svc, m.Name, func(got *material.Material) bool {
			return strings.EqualFold(got.Name, m.Name)
		})
		if err != nil {
			return err
		}
		if exists {
			log.Infow("material already exists", "name", m.Name)
			continue
		}

		res := svc.Create(ctx, m)
		if err := res.Err(); err != nil {
			return fmt.Errorf("create material %q: %w", m.Name, err)
		}
		log.Infow("material created", "name", m.Name, "id", res.GeneratedID)
	}
	return nil
}

func seedClients(ctx context.Context, svc *client.Service, log *logger.Logger) error {
	for _, c := range demoClients() {
		// stored documents are digits only
		n := client.Normalize(*c)
		doc := document(&n)
		exists, err := hasMatch(ctx, svc, doc, func(got *client.Client) bool {
			return document(got) == doc
		})
		if err != nil {
			return err
		}
		if exists {
			log.Infow("client already exists", "name", c.Name)
			continue
		}

		res := svc.Create(ctx, c)
		if err := res.Err(); err != nil {
			return fmt.Errorf("create client %q: %w", c.Name, err)
		}
		log.Infow("client created", "name", c.Name, "id", res.GeneratedID)
	}
	return nil
}

type lister[T any] interface {
	List(ctx context.Context, req domain.PageRequest) (domain.PageResult[T], error)
}

// hasMatch searches the first page for term and reports whether any item satisfies match.
func hasMatch[T any](ctx context.Context, svc lister[T], term string, match func(T) bool) (bool, error) {
	page, err := svc.List(ctx, domain.PageRequest{Page: 1, PageSize: domain.MaxPageSize, SearchTerm: term})
	if err != nil {
		return false, err
	}
	for _, item := range page.Items {
		if match(item) {
			return true, nil
		}
	}
	return false, nil
}

func document(c *client.Client) string {
	switch {
	case c.CPF != nil:
		return *c.CPF
	case c.CNPJ != nil:
		return *c.CNPJ
	default:
		return c.Name
	}
}

func ptr[T any](v T) *T { return &v }

func demoMaterials() []*material.Material {
	return []*material.Material{
		{
			Name:          "MDF 15mm",
			Description:   ptr("MDF sheet 2750x1850mm"),
			Category:      "Sheet",
			UnitPrice:     decimal.RequireFromString("189.90"),
			UnitOfMeasure: "UN",
			StockQuantity: decimal.NewFromInt(24),
			MinimumStock:  ptr(decimal.NewFromInt(10)),
			MaximumStock:  ptr(decimal.NewFromInt(60)),
			Location:      ptr("Rack A"),
		},
		{
			Name:          "Pine board 2x30cm",
			Category:      "Solid wood",
			UnitPrice:     decimal.RequireFromString("34.50"),
			UnitOfMeasure: "M",
			StockQuantity: decimal.RequireFromString("120.5"),
			MinimumStock:  ptr(decimal.NewFromInt(40)),
		},
		{
			Name:          "Wood screw 4x40",
			Category:      "Hardware",
			UnitPrice:     decimal.RequireFromString("0.12"),
			UnitOfMeasure: "UN",
			StockQuantity: decimal.NewFromInt(3500),
			MinimumStock:  ptr(decimal.NewFromInt(1000)),
			MaximumStock:  ptr(decimal.NewFromInt(10000)),
			Location:      ptr("Drawer 3"),
		},
		{
			Name:          "PVA wood glue",
			Category:      "Consumable",
			UnitPrice:     decimal.RequireFromString("27.00"),
			UnitOfMeasure: "KG",
			StockQuantity: decimal.NewFromInt(8),
		},
	}
}

func demoClients() []*client.Client {
	return []*client.Client{
		{
			PersonType: client.PersonIndividual,
			Name:       "Ana Souza",
			CPF:        ptr("529.982.247-25"),
			Email:      ptr("ana.souza@example.com"),
			Phones: []client.Phone{
				{Type: "mobile", Number: "(11) 98765-4321", Primary: true},
			},
			Addresses: []client.Address{
				{
					Type:       "home",
					Street:     "Rua das Acacias",
					Number:     ptr("120"),
					City:       "Sao Paulo",
					State:      "sp",
					PostalCode: ptr("01310-100"),
					Primary:    true,
				},
			},
		},
		{
			PersonType: client.PersonOrganization,
			Name:       "Moveis Horizonte Ltda",
			TradeName:  ptr("Horizonte"),
			CNPJ:       ptr("11.222.333/0001-81"),
			Email:      ptr("compras@horizonte.example.com"),
			Phones: []client.Phone{
				{Type: "office", Number: "(31) 3222-1100", Primary: true},
				{Type: "mobile", Number: "(31) 99111-2233"},
			},
			Addresses: []client.Address{
				{
					Type:       "billing",
					Street:     "Avenida Amazonas",
					Number:     ptr("5000"),
					District:   ptr("Gameleira"),
					City:       "Belo Horizonte",
					State:      "MG",
					PostalCode: ptr("30510-000"),
					Primary:    true,
				},
			},
		},
	}
}
