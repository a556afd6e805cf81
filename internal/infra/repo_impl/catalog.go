package repo_impl

import (
	"context"
	"errors"

	"turipack/internal/domain/catalog"
	"turipack/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const findServiceByIDQuery = `
SELECT id, name, category, subcategory, base_price, currency,
       min_persons, max_persons, high_season_factor, low_season_factor
FROM services
WHERE id = $1 AND active
`

type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	var (
		svcID       uuid.UUID
		name        string
		category    string
		subcategory *string
		basePrice   int64
		currency    string
		minPersons  int
		maxPersons  int
		highFactor  *float64
		lowFactor   *float64
	)

	err := r.db.QueryRow(ctx, findServiceByIDQuery, id).Scan(
		&svcID, &name, &category, &subcategory, &basePrice, &currency,
		&minPersons, &maxPersons, &highFactor, &lowFactor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}

	var seasonal *catalog.SeasonalRates
	if highFactor != nil && lowFactor != nil {
		seasonal = &catalog.SeasonalRates{
			HighSeasonFactor: *highFactor,
			LowSeasonFactor:  *lowFactor,
		}
	}

	sub := ""
	if subcategory != nil {
		sub = *subcategory
	}

	return catalog.ReconstructService(
		svcID,
		name,
		catalog.Category(category),
		sub,
		basePrice,
		currency,
		minPersons,
		maxPersons,
		seasonal,
	), nil
}
