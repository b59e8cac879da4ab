package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"woodshop/internal/core/apperror"
	"woodshop/internal/domain/catalogs/client"
	"woodshop/internal/infrastructure/storage/postgres"
)

const (
	clientTable        = "clients"
	clientPhoneTable   = "client_phones"
	clientAddressTable = "client_addresses"
	clientProcedure    = "st_manage_client"
)

// ClientRepo implements client.Repository.
type ClientRepo struct {
	*BaseCatalogRepo[*client.Client]
	phoneCols   []string
	addressCols []string
}

// NewClientRepo creates a new client repository.
func NewClientRepo(conns postgres.ConnProvider) *ClientRepo {
	return &ClientRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(BaseCatalogRepoConfig[*client.Client]{
			Conns:      conns,
			EntityName: "client",
			TableName:  clientTable,
			SelectCols: postgres.ExtractDBColumns[client.Client](),
			SearchCols: []string{"name", "trade_name", "cpf", "cnpj"},
			Procedure:  clientProcedure,
			NewFn:      func() *client.Client { return &client.Client{} },
			Bind:       bindClient,
		}),
		phoneCols:   postgres.ExtractDBColumns[client.Phone](),
		addressCols: postgres.ExtractDBColumns[client.Address](),
	}
}

// Ensure interface compliance
var _ client.Repository = (*ClientRepo)(nil)

// bindClient maps a client onto st_manage_client arguments.
// Phones and addresses travel as JSONB arrays and replace the stored sets.
func bindClient(p *postgres.ProcParams, c *client.Client) {
	phones := c.Phones
	if phones == nil {
		phones = []client.Phone{}
	}
	addresses := c.Addresses
	if addresses == nil {
		addresses = []client.Address{}
	}

	p.Add("p_person_type", string(c.PersonType)).
		Add("p_name", c.Name).
		Add("p_trade_name", c.TradeName).
		Add("p_cpf", c.CPF).
		Add("p_cnpj", c.CNPJ).
		Add("p_state_registration", c.StateRegistration).
		Add("p_email", c.Email).
		Add("p_notes", c.Notes).
		Add("p_phones", phones).
		Add("p_addresses", addresses)
}

// GetByID retrieves an active client with its phones and addresses.
// All three queries run on the same connection.
func (r *ClientRepo) GetByID(ctx context.Context, id int) (*client.Client, bool, error) {
	conn, err := r.acquire(ctx)
	if err != nil {
		return nil, false, err
	}
	defer conn.Release()

	c, found, err := r.getOne(ctx, conn, id)
	if err != nil || !found {
		return nil, found, err
	}

	c.Phones = make([]client.Phone, 0)
	sql, args, err := r.childQuery(clientPhoneTable, r.phoneCols, id).ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build phones query: %w", err)
	}
	if err := pgxscan.Select(ctx, conn, &c.Phones, sql, args...); err != nil {
		return nil, false, apperror.NewDatabase(fmt.Errorf("load phones of client %d: %w", id, err))
	}

	c.Addresses = make([]client.Address, 0)
	sql, args, err = r.childQuery(clientAddressTable, r.addressCols, id).ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build addresses query: %w", err)
	}
	if err := pgxscan.Select(ctx, conn, &c.Addresses, sql, args...); err != nil {
		return nil, false, apperror.NewDatabase(fmt.Errorf("load addresses of client %d: %w", id, err))
	}

	return c, true, nil
}

// childQuery selects the rows of a child table, primary entry first.
func (r *ClientRepo) childQuery(table string, cols []string, clientID int) squirrel.SelectBuilder {
	return r.Builder().
		Select(cols...).
		From(table).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("is_primary DESC", "id ASC")
}
