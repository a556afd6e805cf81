package composer

import (
	"time"

	"turipack/internal/domain/catalog"
	"turipack/internal/pkg/clock"

	"github.com/google/uuid"
)

// Composer is the only mutator of a visitor's package. One instance exists
// per session; there is no shared global state, so concurrent sessions never
// see each other's packages.
//
// Operations on absent packages or unknown service IDs are silent no-ops.
// This is client-local state, not a transactional boundary, and partial input
// is normal while a visitor is still browsing.
type Composer struct {
	clk          clock.Clock
	pkg          *Package
	totalPersons int
	dateRange    *DateRange
}

const defaultTotalPersons = 1

func NewComposer(clk clock.Clock) *Composer {
	return &Composer{
		clk:          clk,
		totalPersons: defaultTotalPersons,
	}
}

// Package exposes the current aggregate for reading. Nil until the first
// service is added or InitializePackage is called.
func (c *Composer) Package() *Package {
	return c.pkg
}

func (c *Composer) TotalPersons() int {
	return c.totalPersons
}

func (c *Composer) DateRange() *DateRange {
	if c.dateRange == nil {
		return nil
	}
	dr := *c.dateRange
	return &dr
}

// InitializePackage creates a fresh draft package when none exists. Calling
// it again is a no-op, never an error.
func (c *Composer) InitializePackage() {
	if c.pkg != nil {
		return
	}
	c.pkg = NewPackage(c.clk.Now())
	c.pkg.totalPersons = c.totalPersons
	c.pkg.dateRange = c.dateRange
}

// ClearPackage discards the package and returns the session to its initial
// empty state, defaults included.
func (c *Composer) ClearPackage() {
	c.pkg = nil
	c.totalPersons = defaultTotalPersons
	c.dateRange = nil
}

// AddService puts a service into its category module, pricing the line at
// add time. Adding a service that is already selected replaces its line, the
// second call's values winning. The package is created first when absent;
// ensure-then-mutate, two plain steps.
func (c *Composer) AddService(svc *catalog.Service, persons int, date *time.Time, timeOfDay, notes string) {
	if svc == nil {
		return
	}
	c.InitializePackage()

	persons = svc.ClampPersons(persons)
	module := c.pkg.ensureModule(svc.Category())
	module.Upsert(svc, persons, date, timeOfDay, notes)
	c.pkg.recomputeTotals(c.clk.Now())
}

// RemoveService scans every module for the service ID. IDs are globally
// unique in practice, but scanning all categories keeps the operation safe
// when they are not. Emptied modules are dropped from the package.
func (c *Composer) RemoveService(serviceID uuid.UUID) {
	if c.pkg == nil {
		return
	}

	changed := false
	for _, module := range c.pkg.Modules() {
		removed, empty := module.Remove(serviceID)
		if removed {
			changed = true
		}
		if empty {
			c.pkg.removeModule(module.Category())
		}
	}
	if changed {
		c.pkg.recomputeTotals(c.clk.Now())
	}
}

// UpdateServicePersons changes a line's headcount and re-prices it with its
// existing date. The headcount is clamped to the service's bookable range.
func (c *Composer) UpdateServicePersons(serviceID uuid.UUID, persons int) {
	if c.pkg == nil {
		return
	}

	for _, module := range c.pkg.Modules() {
		item, ok := module.Find(serviceID)
		if !ok {
			continue
		}
		if module.UpdatePersons(serviceID, item.Service().ClampPersons(persons)) {
			c.pkg.recomputeTotals(c.clk.Now())
			return
		}
	}
}

// UpdateServiceDate moves a line to another date without re-pricing it, even
// for seasonally priced services. Totals are untouched; UpdatedAt advances.
func (c *Composer) UpdateServiceDate(serviceID uuid.UUID, date *time.Time) {
	if c.pkg == nil {
		return
	}
	for _, module := range c.pkg.Modules() {
		if module.SetDate(serviceID, date) {
			c.pkg.touch(c.clk.Now())
			return
		}
	}
}

func (c *Composer) UpdateServiceTime(serviceID uuid.UUID, timeOfDay string) {
	if c.pkg == nil {
		return
	}
	for _, module := range c.pkg.Modules() {
		if module.SetTimeOfDay(serviceID, timeOfDay) {
			c.pkg.touch(c.clk.Now())
			return
		}
	}
}

func (c *Composer) UpdateServiceNotes(serviceID uuid.UUID, notes string) {
	if c.pkg == nil {
		return
	}
	for _, module := range c.pkg.Modules() {
		if module.SetNotes(serviceID, notes) {
			c.pkg.touch(c.clk.Now())
			return
		}
	}
}

// SetTotalPersons records the package-level headcount. It is informational
// and deliberately does not touch any line's persons or subtotal; per-line
// headcounts are managed one service at a time.
func (c *Composer) SetTotalPersons(persons int) {
	if persons < 1 {
		persons = 1
	}
	c.totalPersons = persons
	if c.pkg != nil {
		c.pkg.totalPersons = persons
		c.pkg.touch(c.clk.Now())
	}
}

// SetDateRange records the package-level stay window, independent of any
// per-service dates.
func (c *Composer) SetDateRange(dateRange DateRange) {
	c.dateRange = &dateRange
	if c.pkg != nil {
		dr := dateRange
		c.pkg.dateRange = &dr
		c.pkg.touch(c.clk.Now())
	}
}

// CalculatePrices recomputes all totals from the module subtotals. Safe to
// call at any time; idempotent apart from the UpdatedAt stamp.
func (c *Composer) CalculatePrices() {
	if c.pkg == nil {
		return
	}
	c.pkg.recomputeTotals(c.clk.Now())
}

// MarkSaved stamps the package as kept-for-later and sets its expiry. The
// caller persists the snapshot; reports whether there was a package to save.
func (c *Composer) MarkSaved(expiresAt time.Time) bool {
	if c.pkg == nil {
		return false
	}
	c.pkg.setStatus(StatusSaved, c.clk.Now())
	c.pkg.setExpiresAt(&expiresAt)
	return true
}
