package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("service name cannot be empty")
	ErrInvalidCategory    = errors.New("invalid service category")
	ErrNegativeBasePrice  = errors.New("base price cannot be negative")
	ErrInvalidPersonRange = errors.New("invalid min/max person range")
	ErrInvalidSeasonRates = errors.New("seasonal rate factors must be positive")
)

// DefaultCurrency is the only currency the marketplace trades in. Colombian
// pesos carry no minor unit here, so all amounts are whole-peso integers.
const DefaultCurrency = "COP"

// SeasonalRates adjusts a service's base price by calendar season. A service
// without rates is priced flat year-round.
type SeasonalRates struct {
	HighSeasonFactor float64
	LowSeasonFactor  float64
}

// Service is a bookable catalog entry: a night of lodging, a meal plan, a
// guided tour, an astronomy session or a point-of-interest ticket. It is
// read-only input to package composition; the composer never mutates it.
type Service struct {
	id          uuid.UUID
	name        string
	category    Category
	subcategory string
	basePrice   int64 // whole pesos per person
	currency    string
	minPersons  int
	maxPersons  int
	seasonal    *SeasonalRates
}

func NewService(
	id uuid.UUID,
	name string,
	category Category,
	subcategory string,
	basePrice int64,
	minPersons, maxPersons int,
	seasonal *SeasonalRates,
) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if basePrice < 0 {
		return nil, ErrNegativeBasePrice
	}
	if minPersons < 0 || maxPersons < 0 || (maxPersons > 0 && minPersons > maxPersons) {
		return nil, ErrInvalidPersonRange
	}
	if seasonal != nil && (seasonal.HighSeasonFactor <= 0 || seasonal.LowSeasonFactor <= 0) {
		return nil, ErrInvalidSeasonRates
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Service{
		id:          id,
		name:        name,
		category:    category,
		subcategory: subcategory,
		basePrice:   basePrice,
		currency:    DefaultCurrency,
		minPersons:  minPersons,
		maxPersons:  maxPersons,
		seasonal:    seasonal,
	}, nil
}

// ReconstructService rebuilds a Service from persisted data without running
// creation-time validation.
func ReconstructService(
	id uuid.UUID,
	name string,
	category Category,
	subcategory string,
	basePrice int64,
	currency string,
	minPersons, maxPersons int,
	seasonal *SeasonalRates,
) *Service {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Service{
		id:          id,
		name:        name,
		category:    category,
		subcategory: subcategory,
		basePrice:   basePrice,
		currency:    currency,
		minPersons:  minPersons,
		maxPersons:  maxPersons,
		seasonal:    seasonal,
	}
}

func (s *Service) ID() uuid.UUID       { return s.id }
func (s *Service) Name() string        { return s.name }
func (s *Service) Category() Category  { return s.category }
func (s *Service) Subcategory() string { return s.subcategory }
func (s *Service) BasePrice() int64    { return s.basePrice }
func (s *Service) Currency() string    { return s.currency }
func (s *Service) MinPersons() int     { return s.minPersons }
func (s *Service) MaxPersons() int     { return s.maxPersons }

// SeasonalRates returns a copy so callers cannot alter catalog pricing.
func (s *Service) SeasonalRates() *SeasonalRates {
	if s.seasonal == nil {
		return nil
	}
	rates := *s.seasonal
	return &rates
}

// ClampPersons forces a headcount into the service's bookable range. Values
// below one never pass through even when the catalog sets no explicit minimum.
func (s *Service) ClampPersons(persons int) int {
	if s.minPersons > 0 && persons < s.minPersons {
		return s.minPersons
	}
	if s.maxPersons > 0 && persons > s.maxPersons {
		return s.maxPersons
	}
	if persons < 1 {
		return 1
	}
	return persons
}
