//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"turipack/internal/domain/catalog"
	"turipack/internal/domain/composer"
	"turipack/internal/infra"
	"turipack/internal/pkg/clock"
	"turipack/internal/pkg/errs"
	"turipack/internal/usecase/queries"
	"turipack/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSnapshotReader struct {
	snap *composer.Snapshot
	err  error
}

func (s *stubSnapshotReader) Find(context.Context, uuid.UUID) (*composer.Snapshot, error) {
	return s.snap, s.err
}

func fixedClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC))
}

func TestPackageQueries_GetPackage(t *testing.T) {
	ctx := context.Background()
	sessionID := uuid.New()

	t.Run("cold session yields the empty view", func(t *testing.T) {
		reader := &stubSnapshotReader{err: infra.WrapRepoErr("snapshot not found", nil, infra.KindNotFound)}
		q := queries.NewPackageQueries(reader, fixedClock())

		view, err := q.GetPackage(ctx, sessionID)
		require.NoError(t, err)

		assert.Nil(t, view.ID)
		assert.Equal(t, "draft", view.Status)
		assert.Empty(t, view.Modules)
		assert.Zero(t, view.Total)
		assert.Equal(t, "COP", view.Currency)
	})

	t.Run("stored snapshot is projected with totals", func(t *testing.T) {
		clk := fixedClock()
		svc := builder.NewServiceBuilder().WithBasePrice(200000).MustBuild()
		c := composer.NewComposer(clk)
		c.AddService(svc, 5, nil, "", "")

		reader := &stubSnapshotReader{snap: c.Snapshot()}
		q := queries.NewPackageQueries(reader, clk)

		view, err := q.GetPackage(ctx, sessionID)
		require.NoError(t, err)

		assert.Equal(t, int64(1000000), view.Subtotal)
		assert.Equal(t, int64(190000), view.Taxes)
		assert.Equal(t, int64(1190000), view.Total)
		require.Len(t, view.Modules, 1)
		assert.Equal(t, "lodging", view.Modules[0].Category)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		reader := &stubSnapshotReader{err: infra.WrapRepoErr("cache read failed", nil, infra.KindCacheFailure)}
		q := queries.NewPackageQueries(reader, fixedClock())

		_, err := q.GetPackage(ctx, sessionID)
		assert.True(t, errs.Is(err, queries.ErrPackageLoadFailed))
	})
}

type stubCatalogReadStore struct {
	services []*queries.ServiceView
	err      error
}

func (s *stubCatalogReadStore) ListServices(context.Context, *catalog.Category) ([]*queries.ServiceView, error) {
	return s.services, s.err
}

func (s *stubCatalogReadStore) GetServiceByID(context.Context, uuid.UUID) (*queries.ServiceView, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.services) == 0 {
		return nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return s.services[0], nil
}

func TestCatalogQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown category before querying", func(t *testing.T) {
		q := queries.NewCatalogQueries(&stubCatalogReadStore{})

		_, err := q.ListServices(ctx, "camping")
		assert.ErrorIs(t, err, queries.ErrInvalidCategory)
	})

	t.Run("empty filter lists everything", func(t *testing.T) {
		store := &stubCatalogReadStore{services: []*queries.ServiceView{{Name: "Tour del Desierto"}}}
		q := queries.NewCatalogQueries(store)

		views, err := q.ListServices(ctx, "")
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("missing service maps to not found", func(t *testing.T) {
		q := queries.NewCatalogQueries(&stubCatalogReadStore{})

		_, err := q.GetService(ctx, uuid.New())
		assert.ErrorIs(t, err, queries.ErrServiceNotFound)
	})
}
