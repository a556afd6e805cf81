package composer

import (
	"time"

	"turipack/internal/domain/catalog"

	"github.com/google/uuid"
)

// SelectedService is one line of a package: a catalog service plus the
// visitor's choices for it. Subtotal is cached and always equals
// LineSubtotal(service, persons, date).
type SelectedService struct {
	service   *catalog.Service
	persons   int
	date      *time.Time
	timeOfDay string
	notes     string
	subtotal  Money
}

func newSelectedService(svc *catalog.Service, persons int, date *time.Time, timeOfDay, notes string) SelectedService {
	return SelectedService{
		service:   svc,
		persons:   persons,
		date:      date,
		timeOfDay: timeOfDay,
		notes:     notes,
		subtotal:  LineSubtotal(svc, persons, date),
	}
}

func reconstructSelectedService(svc *catalog.Service, persons int, date *time.Time, timeOfDay, notes string, subtotal Money) SelectedService {
	return SelectedService{
		service:   svc,
		persons:   persons,
		date:      date,
		timeOfDay: timeOfDay,
		notes:     notes,
		subtotal:  subtotal,
	}
}

func (s SelectedService) Service() *catalog.Service { return s.service }
func (s SelectedService) Persons() int              { return s.persons }
func (s SelectedService) TimeOfDay() string         { return s.timeOfDay }
func (s SelectedService) Notes() string             { return s.notes }
func (s SelectedService) Subtotal() Money           { return s.subtotal }

func (s SelectedService) Date() *time.Time {
	if s.date == nil {
		return nil
	}
	d := *s.date
	return &d
}

// CategoryModule holds the selected services of one category. Items keep
// insertion order and are unique per service ID. A module that ends up empty
// is removed from the package by the caller, never kept around.
type CategoryModule struct {
	category catalog.Category
	items    []SelectedService
	subtotal Money
}

func NewCategoryModule(category catalog.Category) *CategoryModule {
	return &CategoryModule{category: category}
}

func reconstructCategoryModule(category catalog.Category, items []SelectedService, subtotal Money) *CategoryModule {
	return &CategoryModule{category: category, items: items, subtotal: subtotal}
}

func (m *CategoryModule) Category() catalog.Category { return m.category }
func (m *CategoryModule) Subtotal() Money            { return m.subtotal }
func (m *CategoryModule) Len() int                   { return len(m.items) }

// Items returns a copy; the package is mutated only through module operations.
func (m *CategoryModule) Items() []SelectedService {
	out := make([]SelectedService, len(m.items))
	copy(out, m.items)
	return out
}

func (m *CategoryModule) Find(serviceID uuid.UUID) (SelectedService, bool) {
	for _, item := range m.items {
		if item.service.ID() == serviceID {
			return item, true
		}
	}
	return SelectedService{}, false
}

// Upsert inserts a freshly priced line for the service, replacing an existing
// line in place (position preserved) when the service was already selected.
func (m *CategoryModule) Upsert(svc *catalog.Service, persons int, date *time.Time, timeOfDay, notes string) {
	item := newSelectedService(svc, persons, date, timeOfDay, notes)
	for i := range m.items {
		if m.items[i].service.ID() == svc.ID() {
			m.items[i] = item
			m.recompute()
			return
		}
	}
	m.items = append(m.items, item)
	m.recompute()
}

// Remove drops the line for the service if present and reports whether the
// module is now empty and must be deleted from the package.
func (m *CategoryModule) Remove(serviceID uuid.UUID) (removed, empty bool) {
	for i := range m.items {
		if m.items[i].service.ID() == serviceID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			m.recompute()
			return true, len(m.items) == 0
		}
	}
	return false, len(m.items) == 0
}

// UpdatePersons re-prices the line with its existing date. Unknown service
// IDs leave the module unchanged.
func (m *CategoryModule) UpdatePersons(serviceID uuid.UUID, persons int) bool {
	for i := range m.items {
		if m.items[i].service.ID() == serviceID {
			item := &m.items[i]
			item.persons = persons
			item.subtotal = LineSubtotal(item.service, persons, item.date)
			m.recompute()
			return true
		}
	}
	return false
}

// SetDate replaces the line's date without re-pricing it. Seasonal rates are
// applied when the service is first added; a later date change keeps the
// original subtotal.
func (m *CategoryModule) SetDate(serviceID uuid.UUID, date *time.Time) bool {
	for i := range m.items {
		if m.items[i].service.ID() == serviceID {
			m.items[i].date = date
			return true
		}
	}
	return false
}

func (m *CategoryModule) SetTimeOfDay(serviceID uuid.UUID, timeOfDay string) bool {
	for i := range m.items {
		if m.items[i].service.ID() == serviceID {
			m.items[i].timeOfDay = timeOfDay
			return true
		}
	}
	return false
}

func (m *CategoryModule) SetNotes(serviceID uuid.UUID, notes string) bool {
	for i := range m.items {
		if m.items[i].service.ID() == serviceID {
			m.items[i].notes = notes
			return true
		}
	}
	return false
}

func (m *CategoryModule) recompute() {
	var sum Money
	for _, item := range m.items {
		sum += item.subtotal
	}
	m.subtotal = sum
}
