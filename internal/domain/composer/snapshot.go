package composer

import (
	"errors"
	"time"

	"turipack/internal/domain/catalog"
	"turipack/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrSnapshotStatus   = errors.New("snapshot has invalid package status")
	ErrSnapshotCategory = errors.New("snapshot has invalid module category")
)

// Snapshot is the durable form of a session's composition state: the package
// plus the session-level defaults. UI-only state never reaches it. The JSON
// shape is the persistence contract with the snapshot store.
type Snapshot struct {
	Package      *PackageSnapshot   `json:"package,omitempty"`
	TotalPersons int                `json:"total_persons"`
	DateRange    *DateRangeSnapshot `json:"date_range,omitempty"`
}

type PackageSnapshot struct {
	ID           uuid.UUID          `json:"id"`
	Modules      []ModuleSnapshot   `json:"modules"`
	TotalPersons int                `json:"total_persons"`
	DateRange    *DateRangeSnapshot `json:"date_range,omitempty"`
	Subtotal     int64              `json:"subtotal"`
	Taxes        int64              `json:"taxes"`
	Total        int64              `json:"total"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	ExpiresAt    *time.Time         `json:"expires_at,omitempty"`
}

type ModuleSnapshot struct {
	Category string         `json:"category"`
	Items    []ItemSnapshot `json:"items"`
	Subtotal int64          `json:"subtotal"`
}

type ItemSnapshot struct {
	Service   ServiceSnapshot `json:"service"`
	Persons   int             `json:"persons"`
	Date      *time.Time      `json:"date,omitempty"`
	TimeOfDay string          `json:"time,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Subtotal  int64           `json:"subtotal"`
}

type ServiceSnapshot struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Subcategory string            `json:"subcategory,omitempty"`
	BasePrice   int64             `json:"base_price"`
	Currency    string            `json:"currency"`
	MinPersons  int               `json:"min_persons"`
	MaxPersons  int               `json:"max_persons"`
	Seasonal    *SeasonalSnapshot `json:"seasonal,omitempty"`
}

type SeasonalSnapshot struct {
	HighSeasonFactor float64 `json:"high_season_factor"`
	LowSeasonFactor  float64 `json:"low_season_factor"`
}

type DateRangeSnapshot struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Snapshot captures the composer state for persistence. Reapplying any
// operation on the restored composer behaves exactly as on the original.
func (c *Composer) Snapshot() *Snapshot {
	snap := &Snapshot{
		TotalPersons: c.totalPersons,
		DateRange:    dateRangeToSnapshot(c.dateRange),
	}
	if c.pkg == nil {
		return snap
	}

	p := c.pkg
	modules := make([]ModuleSnapshot, 0, len(p.modules))
	for _, m := range p.Modules() {
		items := make([]ItemSnapshot, 0, m.Len())
		for _, item := range m.Items() {
			items = append(items, ItemSnapshot{
				Service:   serviceToSnapshot(item.Service()),
				Persons:   item.Persons(),
				Date:      item.Date(),
				TimeOfDay: item.TimeOfDay(),
				Notes:     item.Notes(),
				Subtotal:  item.Subtotal().Int64(),
			})
		}
		modules = append(modules, ModuleSnapshot{
			Category: m.Category().String(),
			Items:    items,
			Subtotal: m.Subtotal().Int64(),
		})
	}

	snap.Package = &PackageSnapshot{
		ID:           p.id,
		Modules:      modules,
		TotalPersons: p.totalPersons,
		DateRange:    dateRangeToSnapshot(p.dateRange),
		Subtotal:     p.subtotal.Int64(),
		Taxes:        p.taxes.Int64(),
		Total:        p.total.Int64(),
		Status:       p.status.String(),
		CreatedAt:    p.createdAt,
		UpdatedAt:    p.updatedAt,
		ExpiresAt:    p.expiresAt,
	}
	return snap
}

// RestoreComposer rebuilds a composer from a snapshot. A nil snapshot is a
// cold start and yields a fresh composer.
func RestoreComposer(clk clock.Clock, snap *Snapshot) (*Composer, error) {
	c := NewComposer(clk)
	if snap == nil {
		return c, nil
	}

	if snap.TotalPersons >= 1 {
		c.totalPersons = snap.TotalPersons
	}
	c.dateRange = dateRangeFromSnapshot(snap.DateRange)

	if snap.Package == nil {
		return c, nil
	}

	ps := snap.Package
	status := Status(ps.Status)
	if !status.IsValid() {
		return nil, ErrSnapshotStatus
	}

	modules := make(map[catalog.Category]*CategoryModule, len(ps.Modules))
	for _, ms := range ps.Modules {
		category := catalog.Category(ms.Category)
		if !category.IsValid() {
			return nil, ErrSnapshotCategory
		}
		items := make([]SelectedService, 0, len(ms.Items))
		for _, is := range ms.Items {
			items = append(items, reconstructSelectedService(
				serviceFromSnapshot(is.Service),
				is.Persons,
				is.Date,
				is.TimeOfDay,
				is.Notes,
				Money(is.Subtotal),
			))
		}
		modules[category] = reconstructCategoryModule(category, items, Money(ms.Subtotal))
	}

	c.pkg = ReconstructPackage(
		ps.ID,
		modules,
		ps.TotalPersons,
		dateRangeFromSnapshot(ps.DateRange),
		Money(ps.Subtotal), Money(ps.Taxes), Money(ps.Total),
		status,
		ps.CreatedAt, ps.UpdatedAt,
		ps.ExpiresAt,
	)
	return c, nil
}

func serviceToSnapshot(svc *catalog.Service) ServiceSnapshot {
	out := ServiceSnapshot{
		ID:          svc.ID(),
		Name:        svc.Name(),
		Category:    svc.Category().String(),
		Subcategory: svc.Subcategory(),
		BasePrice:   svc.BasePrice(),
		Currency:    svc.Currency(),
		MinPersons:  svc.MinPersons(),
		MaxPersons:  svc.MaxPersons(),
	}
	if rates := svc.SeasonalRates(); rates != nil {
		out.Seasonal = &SeasonalSnapshot{
			HighSeasonFactor: rates.HighSeasonFactor,
			LowSeasonFactor:  rates.LowSeasonFactor,
		}
	}
	return out
}

func serviceFromSnapshot(ss ServiceSnapshot) *catalog.Service {
	var rates *catalog.SeasonalRates
	if ss.Seasonal != nil {
		rates = &catalog.SeasonalRates{
			HighSeasonFactor: ss.Seasonal.HighSeasonFactor,
			LowSeasonFactor:  ss.Seasonal.LowSeasonFactor,
		}
	}
	return catalog.ReconstructService(
		ss.ID,
		ss.Name,
		catalog.Category(ss.Category),
		ss.Subcategory,
		ss.BasePrice,
		ss.Currency,
		ss.MinPersons,
		ss.MaxPersons,
		rates,
	)
}

func dateRangeToSnapshot(dr *DateRange) *DateRangeSnapshot {
	if dr == nil {
		return nil
	}
	return &DateRangeSnapshot{CheckIn: dr.checkIn, CheckOut: dr.checkOut}
}

func dateRangeFromSnapshot(ds *DateRangeSnapshot) *DateRange {
	if ds == nil {
		return nil
	}
	return &DateRange{checkIn: ds.CheckIn, checkOut: ds.CheckOut}
}
