//go:build unit

package builder

import (
	"turipack/internal/domain/catalog"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID          uuid.UUID
	Name        string
	Category    catalog.Category
	Subcategory string
	BasePrice   int64
	MinPersons  int
	MaxPersons  int
	Seasonal    *catalog.SeasonalRates
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:          uuid.New(),
		Name:        "Cabaña Mirador del Desierto",
		Category:    catalog.CategoryLodging,
		Subcategory: "cabin",
		BasePrice:   200000,
		MinPersons:  1,
		MaxPersons:  6,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) WithCategory(category catalog.Category) *ServiceBuilder {
	b.Category = category
	return b
}

func (b *ServiceBuilder) WithBasePrice(price int64) *ServiceBuilder {
	b.BasePrice = price
	return b
}

func (b *ServiceBuilder) WithSeasonal(high, low float64) *ServiceBuilder {
	b.Seasonal = &catalog.SeasonalRates{HighSeasonFactor: high, LowSeasonFactor: low}
	return b
}

func (b *ServiceBuilder) WithPersonRange(minPersons, maxPersons int) *ServiceBuilder {
	b.MinPersons = minPersons
	b.MaxPersons = maxPersons
	return b
}

func (b *ServiceBuilder) BuildDomain() (*catalog.Service, error) {
	return catalog.NewService(b.ID, b.Name, b.Category, b.Subcategory, b.BasePrice, b.MinPersons, b.MaxPersons, b.Seasonal)
}

// MustBuild panics on invalid builder state; for tests that assume a valid service.
func (b *ServiceBuilder) MustBuild() *catalog.Service {
	svc, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return svc
}
