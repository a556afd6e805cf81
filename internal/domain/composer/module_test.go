//go:build unit

package composer_test

import (
	"testing"
	"time"

	"turipack/internal/domain/catalog"
	"turipack/internal/domain/composer"
	"turipack/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moduleSubtotalInvariant(t *testing.T, m *composer.CategoryModule) {
	t.Helper()
	var sum composer.Money
	for _, item := range m.Items() {
		sum += item.Subtotal()
	}
	assert.Equal(t, sum, m.Subtotal(), "module subtotal must equal sum of item subtotals")
}

func TestCategoryModuleUpsert(t *testing.T) {
	t.Run("appends new services in order", func(t *testing.T) {
		m := composer.NewCategoryModule(catalog.CategoryTours)
		first := builder.NewServiceBuilder().WithCategory(catalog.CategoryTours).WithBasePrice(50000).MustBuild()
		second := builder.NewServiceBuilder().WithCategory(catalog.CategoryTours).WithBasePrice(80000).MustBuild()

		m.Upsert(first, 2, nil, "", "")
		m.Upsert(second, 1, nil, "", "")

		items := m.Items()
		require.Len(t, items, 2)
		assert.Equal(t, first.ID(), items[0].Service().ID())
		assert.Equal(t, second.ID(), items[1].Service().ID())
		assert.Equal(t, composer.Money(180000), m.Subtotal())
		moduleSubtotalInvariant(t, m)
	})

	t.Run("replaces existing line in place", func(t *testing.T) {
		m := composer.NewCategoryModule(catalog.CategoryTours)
		first := builder.NewServiceBuilder().WithCategory(catalog.CategoryTours).WithBasePrice(50000).MustBuild()
		second := builder.NewServiceBuilder().WithCategory(catalog.CategoryTours).WithBasePrice(80000).MustBuild()

		m.Upsert(first, 2, nil, "", "")
		m.Upsert(second, 1, nil, "", "")
		m.Upsert(first, 4, nil, "", "sunset slot")

		items := m.Items()
		require.Len(t, items, 2)
		assert.Equal(t, first.ID(), items[0].Service().ID(), "position preserved on replace")
		assert.Equal(t, 4, items[0].Persons())
		assert.Equal(t, "sunset slot", items[0].Notes())
		assert.Equal(t, composer.Money(280000), m.Subtotal())
		moduleSubtotalInvariant(t, m)
	})

	t.Run("prices line with seasonal date at insert time", func(t *testing.T) {
		m := composer.NewCategoryModule(catalog.CategoryAstronomy)
		svc := builder.NewServiceBuilder().
			WithCategory(catalog.CategoryAstronomy).
			WithBasePrice(100000).
			WithSeasonal(1.3, 0.9).
			MustBuild()

		m.Upsert(svc, 2, datePtr(2026, time.December, 28), "20:00", "")

		items := m.Items()
		require.Len(t, items, 1)
		assert.Equal(t, composer.Money(260000), items[0].Subtotal())
	})
}

func TestCategoryModuleRemove(t *testing.T) {
	t.Run("removes matching line and recomputes", func(t *testing.T) {
		m := composer.NewCategoryModule(catalog.CategoryFood)
		first := builder.NewServiceBuilder().WithCategory(catalog.CategoryFood).WithBasePrice(30000).MustBuild()
		second := builder.NewServiceBuilder().WithCategory(catalog.CategoryFood).WithBasePrice(45000).MustBuild()
		m.Upsert(first, 1, nil, "", "")
		m.Upsert(second, 1, nil, "", "")

		removed, empty := m.Remove(first.ID())

		assert.True(t, removed)
		assert.False(t, empty)
		assert.Equal(t, composer.Money(45000), m.Subtotal())
		moduleSubtotalInvariant(t, m)
	})

	t.Run("reports empty after last line", func(t *testing.T) {
		m := composer.NewCategoryModule(catalog.CategoryFood)
		svc := builder.NewServiceBuilder().WithCategory(catalog.CategoryFood).MustBuild()
		m.Upsert(svc, 1, nil, "", "")

		removed, empty := m.Remove(svc.ID())

		assert.True(t, removed)
		assert.True(t, empty)
		assert.Equal(t, composer.Money(0), m.Subtotal())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		m := composer.NewCategoryModule(catalog.CategoryFood)
		svc := builder.NewServiceBuilder().WithCategory(catalog.CategoryFood).MustBuild()
		m.Upsert(svc, 2, nil, "", "")

		removed, empty := m.Remove(uuid.New())

		assert.False(t, removed)
		assert.False(t, empty)
		assert.Equal(t, 1, m.Len())
	})
}

func TestCategoryModuleUpdatePersons(t *testing.T) {
	t.Run("reprices with the line's existing date", func(t *testing.T) {
		m := composer.NewCategoryModule(catalog.CategoryAstronomy)
		svc := builder.NewServiceBuilder().
			WithCategory(catalog.CategoryAstronomy).
			WithBasePrice(100000).
			WithSeasonal(1.3, 0.9).
			MustBuild()
		m.Upsert(svc, 1, datePtr(2026, time.December, 28), "", "")

		found := m.UpdatePersons(svc.ID(), 3)

		require.True(t, found)
		items := m.Items()
		assert.Equal(t, 3, items[0].Persons())
		assert.Equal(t, composer.Money(390000), items[0].Subtotal(), "december stays high season on reprice")
		moduleSubtotalInvariant(t, m)
	})

	t.Run("unknown id leaves module unchanged", func(t *testing.T) {
		m := composer.NewCategoryModule(catalog.CategoryTours)
		svc := builder.NewServiceBuilder().WithCategory(catalog.CategoryTours).MustBuild()
		m.Upsert(svc, 2, nil, "", "")
		before := m.Subtotal()

		assert.False(t, m.UpdatePersons(uuid.New(), 5))
		assert.Equal(t, before, m.Subtotal())
	})
}

func TestCategoryModuleFieldUpdates(t *testing.T) {
	t.Run("date change does not reprice the line", func(t *testing.T) {
		// Seasonal rates apply at selection time only. Moving a december line
		// into march keeps the high season subtotal. Documented behavior.
		m := composer.NewCategoryModule(catalog.CategoryAstronomy)
		svc := builder.NewServiceBuilder().
			WithCategory(catalog.CategoryAstronomy).
			WithBasePrice(100000).
			WithSeasonal(1.3, 0.9).
			MustBuild()
		m.Upsert(svc, 2, datePtr(2026, time.December, 28), "", "")
		require.Equal(t, composer.Money(260000), m.Subtotal())

		found := m.SetDate(svc.ID(), datePtr(2027, time.March, 5))

		require.True(t, found)
		items := m.Items()
		assert.Equal(t, time.March, items[0].Date().Month())
		assert.Equal(t, composer.Money(260000), items[0].Subtotal(), "subtotal unchanged by date move")
		assert.Equal(t, composer.Money(260000), m.Subtotal())
	})

	t.Run("time and notes updates", func(t *testing.T) {
		m := composer.NewCategoryModule(catalog.CategoryTours)
		svc := builder.NewServiceBuilder().WithCategory(catalog.CategoryTours).MustBuild()
		m.Upsert(svc, 2, nil, "", "")

		assert.True(t, m.SetTimeOfDay(svc.ID(), "09:30"))
		assert.True(t, m.SetNotes(svc.ID(), "vegetarian lunch"))

		items := m.Items()
		assert.Equal(t, "09:30", items[0].TimeOfDay())
		assert.Equal(t, "vegetarian lunch", items[0].Notes())
	})
}
