package composer

import (
	"time"

	"turipack/internal/domain/catalog"

	"github.com/google/uuid"
)

// Package is the aggregate root of a composed trip: at most one module per
// category, cached totals, and lifecycle metadata. All mutation goes through
// the Composer; other components only read it.
type Package struct {
	id           uuid.UUID
	modules      map[catalog.Category]*CategoryModule
	totalPersons int
	dateRange    *DateRange
	subtotal     Money
	taxes        Money
	total        Money
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
	expiresAt    *time.Time
}

func NewPackage(now time.Time) *Package {
	return &Package{
		id:           uuid.New(),
		modules:      make(map[catalog.Category]*CategoryModule),
		totalPersons: 1,
		status:       StatusDraft,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructPackage(
	id uuid.UUID,
	modules map[catalog.Category]*CategoryModule,
	totalPersons int,
	dateRange *DateRange,
	subtotal, taxes, total Money,
	status Status,
	createdAt, updatedAt time.Time,
	expiresAt *time.Time,
) *Package {
	if modules == nil {
		modules = make(map[catalog.Category]*CategoryModule)
	}
	return &Package{
		id:           id,
		modules:      modules,
		totalPersons: totalPersons,
		dateRange:    dateRange,
		subtotal:     subtotal,
		taxes:        taxes,
		total:        total,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		expiresAt:    expiresAt,
	}
}

func (p *Package) ID() uuid.UUID        { return p.id }
func (p *Package) TotalPersons() int    { return p.totalPersons }
func (p *Package) Subtotal() Money      { return p.subtotal }
func (p *Package) Taxes() Money         { return p.taxes }
func (p *Package) Total() Money         { return p.total }
func (p *Package) Status() Status       { return p.status }
func (p *Package) CreatedAt() time.Time { return p.createdAt }
func (p *Package) UpdatedAt() time.Time { return p.updatedAt }

func (p *Package) DateRange() *DateRange {
	if p.dateRange == nil {
		return nil
	}
	dr := *p.dateRange
	return &dr
}

func (p *Package) ExpiresAt() *time.Time {
	if p.expiresAt == nil {
		return nil
	}
	t := *p.expiresAt
	return &t
}

func (p *Package) Module(category catalog.Category) (*CategoryModule, bool) {
	m, ok := p.modules[category]
	return m, ok
}

// Modules returns the present modules in canonical category order.
func (p *Package) Modules() []*CategoryModule {
	out := make([]*CategoryModule, 0, len(p.modules))
	for _, category := range catalog.Categories {
		if m, ok := p.modules[category]; ok {
			out = append(out, m)
		}
	}
	return out
}

func (p *Package) IsEmpty() bool {
	return len(p.modules) == 0
}

func (p *Package) ItemCount() int {
	n := 0
	for _, m := range p.modules {
		n += m.Len()
	}
	return n
}

func (p *Package) ensureModule(category catalog.Category) *CategoryModule {
	if m, ok := p.modules[category]; ok {
		return m
	}
	m := NewCategoryModule(category)
	p.modules[category] = m
	return m
}

func (p *Package) removeModule(category catalog.Category) {
	delete(p.modules, category)
}

// recomputeTotals is the single chokepoint keeping the cached totals honest:
// subtotal is the sum of module subtotals, taxes are IVA over it, and
// UpdatedAt is stamped. Called after every structural mutation.
func (p *Package) recomputeTotals(now time.Time) {
	var subtotal Money
	for _, m := range p.modules {
		subtotal += m.Subtotal()
	}
	p.subtotal = subtotal
	p.taxes = Taxes(subtotal)
	p.total = subtotal + p.taxes
	p.updatedAt = now
}

// touch refreshes UpdatedAt for mutations that cannot change totals, such as
// date, time-of-day or notes edits.
func (p *Package) touch(now time.Time) {
	p.updatedAt = now
}

func (p *Package) setStatus(status Status, now time.Time) {
	p.status = status
	p.updatedAt = now
}

func (p *Package) setExpiresAt(expiresAt *time.Time) {
	p.expiresAt = expiresAt
}
