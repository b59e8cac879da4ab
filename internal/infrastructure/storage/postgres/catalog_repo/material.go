package catalog_repo

import (
	"woodshop/internal/domain/catalogs/material"
	"woodshop/internal/infrastructure/storage/postgres"
)

const (
	materialTable     = "materials"
	materialProcedure = "st_manage_material"
)

// MaterialRepo implements material.Repository.
type MaterialRepo struct {
	*BaseCatalogRepo[*material.Material]
}

// NewMaterialRepo creates a new material repository.
func NewMaterialRepo(conns postgres.ConnProvider) *MaterialRepo {
	return &MaterialRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(BaseCatalogRepoConfig[*material.Material]{
			Conns:      conns,
			EntityName: "material",
			TableName:  materialTable,
			SelectCols: postgres.ExtractDBColumns[material.Material](),
			SearchCols: []string{"name", "category", "description"},
			Procedure:  materialProcedure,
			NewFn:      func() *material.Material { return &material.Material{} },
			Bind:       bindMaterial,
		}),
	}
}

// Ensure interface compliance
var _ material.Repository = (*MaterialRepo)(nil)

func bindMaterial(p *postgres.ProcParams, m *material.Material) {
	p.Add("p_name", m.Name).
		Add("p_description", m.Description).
		Add("p_category", m.Category).
		Add("p_unit_price", m.UnitPrice).
		Add("p_unit_of_measure", m.UnitOfMeasure).
		Add("p_stock_quantity", m.StockQuantity).
		Add("p_minimum_stock", m.MinimumStock).
		Add("p_maximum_stock", m.MaximumStock).
		Add("p_location", m.Location)
}
