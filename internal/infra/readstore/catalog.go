package readstore

import (
	"context"
	"errors"

	"turipack/internal/domain/catalog"
	"turipack/internal/infra"
	"turipack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	listServicesQuery = `
SELECT id, name, category, subcategory, base_price, currency,
       min_persons, max_persons, high_season_factor, low_season_factor
FROM services
WHERE active AND ($1::text IS NULL OR category = $1)
ORDER BY category, name
`

	getServiceByIDQuery = `
SELECT id, name, category, subcategory, base_price, currency,
       min_persons, max_persons, high_season_factor, low_season_factor
FROM services
WHERE id = $1 AND active
`
)

// CatalogReadStore serves catalog browsing straight from Postgres rows into
// view models, bypassing domain construction.
type CatalogReadStore struct {
	db *pgxpool.Pool
}

func NewCatalogReadStore(db *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (s *CatalogReadStore) ListServices(ctx context.Context, category *catalog.Category) ([]*queries.ServiceView, error) {
	var filter *string
	if category != nil {
		c := category.String()
		filter = &c
	}

	rows, err := s.db.Query(ctx, listServicesQuery, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var result []*queries.ServiceView
	for rows.Next() {
		view, err := scanServiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return result, nil
}

func (s *CatalogReadStore) GetServiceByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row := s.db.QueryRow(ctx, getServiceByIDQuery, id)
	view, err := scanServiceView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service by ID", err)
	}
	return view, nil
}

func scanServiceView(row pgx.Row) (*queries.ServiceView, error) {
	var (
		view        queries.ServiceView
		subcategory *string
	)
	err := row.Scan(
		&view.ID, &view.Name, &view.Category, &subcategory,
		&view.BasePrice, &view.Currency,
		&view.MinPersons, &view.MaxPersons,
		&view.HighSeason, &view.LowSeason,
	)
	if err != nil {
		return nil, err
	}
	if subcategory != nil {
		view.Subcategory = *subcategory
	}
	return &view, nil
}
