//go:build unit

package composer_test

import (
	"encoding/json"
	"testing"
	"time"

	"turipack/internal/domain/catalog"
	"turipack/internal/domain/composer"
	"turipack/internal/pkg/clock"
	"turipack/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC))
	c := composer.NewComposer(clk)

	lodging := builder.NewServiceBuilder().WithBasePrice(200000).MustBuild()
	astro := builder.NewServiceBuilder().
		WithCategory(catalog.CategoryAstronomy).
		WithBasePrice(100000).
		WithSeasonal(1.3, 0.9).
		MustBuild()
	c.AddService(lodging, 2, nil, "", "late arrival")
	c.AddService(astro, 3, datePtr(2026, time.December, 28), "20:30", "")
	c.SetTotalPersons(3)
	dr, err := composer.NewDateRange(
		time.Date(2026, time.December, 27, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.December, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	c.SetDateRange(dr)

	snap := c.Snapshot()

	// Through JSON, as the snapshot store would do it.
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded composer.Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))

	if diff := cmp.Diff(snap, &decoded); diff != "" {
		t.Fatalf("snapshot changed through JSON (-want +got):\n%s", diff)
	}

	restored, err := composer.RestoreComposer(clk, &decoded)
	require.NoError(t, err)
	if diff := cmp.Diff(snap, restored.Snapshot()); diff != "" {
		t.Fatalf("restored composer snapshots differently (-want +got):\n%s", diff)
	}

	// Operations keep working on the restored state.
	restored.UpdateServicePersons(lodging.ID(), 4)
	p := restored.Package()
	require.NotNil(t, p)
	assert.Equal(t, composer.Money(800000+390000), p.Subtotal())
	packageInvariants(t, p)
}

func TestRestoreComposer(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC))

	t.Run("nil snapshot is a cold start", func(t *testing.T) {
		c, err := composer.RestoreComposer(clk, nil)

		require.NoError(t, err)
		assert.Nil(t, c.Package())
		assert.Equal(t, 1, c.TotalPersons())
	})

	t.Run("empty snapshot has no package", func(t *testing.T) {
		c, err := composer.RestoreComposer(clk, &composer.Snapshot{TotalPersons: 2})

		require.NoError(t, err)
		assert.Nil(t, c.Package())
		assert.Equal(t, 2, c.TotalPersons())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		snap := &composer.Snapshot{
			TotalPersons: 1,
			Package:      &composer.PackageSnapshot{Status: "archived"},
		}

		_, err := composer.RestoreComposer(clk, snap)
		require.ErrorIs(t, err, composer.ErrSnapshotStatus)
	})

	t.Run("invalid category is rejected", func(t *testing.T) {
		snap := &composer.Snapshot{
			TotalPersons: 1,
			Package: &composer.PackageSnapshot{
				Status:  "draft",
				Modules: []composer.ModuleSnapshot{{Category: "spa"}},
			},
		}

		_, err := composer.RestoreComposer(clk, snap)
		require.ErrorIs(t, err, composer.ErrSnapshotCategory)
	})
}
