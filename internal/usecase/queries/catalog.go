package queries

import (
	"context"

	"turipack/internal/domain/catalog"
	"turipack/internal/infra"
	"turipack/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound     = errs.New("service not found")
	ErrInvalidCategory     = errs.New("invalid category filter")
	ErrCatalogLookupFailed = errs.New("catalog lookup failed")
)

// CatalogReadStore is implemented against Postgres in infra.
type CatalogReadStore interface {
	ListServices(ctx context.Context, category *catalog.Category) ([]*ServiceView, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type CatalogQueries interface {
	ListServices(ctx context.Context, category string) ([]*ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, category string) ([]*ServiceView, error) {
	var filter *catalog.Category
	if category != "" {
		c := catalog.Category(category)
		if !c.IsValid() {
			return nil, ErrInvalidCategory
		}
		filter = &c
	}

	services, err := q.readStore.ListServices(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogLookupFailed)
	}
	return services, nil
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	service, err := q.readStore.GetServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrCatalogLookupFailed)
	}
	return service, nil
}
