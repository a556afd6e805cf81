package queries

import (
	"time"

	"turipack/internal/domain/catalog"
	"turipack/internal/domain/composer"

	"github.com/google/uuid"
)

// PackageView is the read model handed to the presentation layer. Amounts are
// whole pesos. An empty session still gets a view: zero totals, no modules.
type PackageView struct {
	ID           *uuid.UUID     `json:"id,omitempty"`
	Status       string         `json:"status"`
	Modules      []ModuleView   `json:"modules"`
	ItemCount    int            `json:"item_count"`
	TotalPersons int            `json:"total_persons"`
	DateRange    *DateRangeView `json:"date_range,omitempty"`
	Subtotal     int64          `json:"subtotal"`
	Taxes        int64          `json:"taxes"`
	Total        int64          `json:"total"`
	Currency     string         `json:"currency"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
	ExpiresAt    *time.Time     `json:"expires_at,omitempty"`
}

type ModuleView struct {
	Category string     `json:"category"`
	Items    []ItemView `json:"items"`
	Subtotal int64      `json:"subtotal"`
}

type ItemView struct {
	ServiceID   uuid.UUID  `json:"service_id"`
	ServiceName string     `json:"service_name"`
	Subcategory string     `json:"subcategory,omitempty"`
	Persons     int        `json:"persons"`
	Date        *time.Time `json:"date,omitempty"`
	Time        string     `json:"time,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	Subtotal    int64      `json:"subtotal"`
}

type DateRangeView struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Nights   int       `json:"nights"`
}

// ServiceView is the catalog read model.
type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	BasePrice   int64     `json:"base_price"`
	Currency    string    `json:"currency"`
	MinPersons  int       `json:"min_persons"`
	MaxPersons  int       `json:"max_persons"`
	HighSeason  *float64  `json:"high_season_factor,omitempty"`
	LowSeason   *float64  `json:"low_season_factor,omitempty"`
}

// NewPackageView projects composer state into the read model.
func NewPackageView(c *composer.Composer) *PackageView {
	view := &PackageView{
		Status:       composer.StatusDraft.String(),
		Modules:      []ModuleView{},
		TotalPersons: c.TotalPersons(),
		Currency:     catalog.DefaultCurrency,
	}
	if dr := c.DateRange(); dr != nil {
		view.DateRange = &DateRangeView{
			CheckIn:  dr.CheckIn(),
			CheckOut: dr.CheckOut(),
			Nights:   dr.Nights(),
		}
	}

	p := c.Package()
	if p == nil {
		return view
	}

	id := p.ID()
	view.ID = &id
	view.Status = p.Status().String()
	view.ItemCount = p.ItemCount()
	view.TotalPersons = p.TotalPersons()
	view.Subtotal = p.Subtotal().Int64()
	view.Taxes = p.Taxes().Int64()
	view.Total = p.Total().Int64()

	createdAt := p.CreatedAt()
	updatedAt := p.UpdatedAt()
	view.CreatedAt = &createdAt
	view.UpdatedAt = &updatedAt
	view.ExpiresAt = p.ExpiresAt()

	if dr := p.DateRange(); dr != nil {
		view.DateRange = &DateRangeView{
			CheckIn:  dr.CheckIn(),
			CheckOut: dr.CheckOut(),
			Nights:   dr.Nights(),
		}
	}

	for _, m := range p.Modules() {
		items := make([]ItemView, 0, m.Len())
		for _, item := range m.Items() {
			svc := item.Service()
			items = append(items, ItemView{
				ServiceID:   svc.ID(),
				ServiceName: svc.Name(),
				Subcategory: svc.Subcategory(),
				Persons:     item.Persons(),
				Date:        item.Date(),
				Time:        item.TimeOfDay(),
				Notes:       item.Notes(),
				Subtotal:    item.Subtotal().Int64(),
			})
		}
		view.Modules = append(view.Modules, ModuleView{
			Category: m.Category().String(),
			Items:    items,
			Subtotal: m.Subtotal().Int64(),
		})
	}
	return view
}
