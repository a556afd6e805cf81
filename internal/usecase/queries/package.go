package queries

import (
	"context"

	"turipack/internal/domain/composer"
	"turipack/internal/infra"
	"turipack/internal/pkg/clock"
	"turipack/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPackageLoadFailed = errs.New("failed to load package")

// SnapshotReader is the read side of the snapshot store.
type SnapshotReader interface {
	Find(ctx context.Context, sessionID uuid.UUID) (*composer.Snapshot, error)
}

type PackageQueries interface {
	GetPackage(ctx context.Context, sessionID uuid.UUID) (*PackageView, error)
}

type packageQueriesImpl struct {
	snapshots SnapshotReader
	clock     clock.Clock
}

func NewPackageQueries(snapshots SnapshotReader, clock clock.Clock) PackageQueries {
	return &packageQueriesImpl{
		snapshots: snapshots,
		clock:     clock,
	}
}

// GetPackage returns the session's current package. A session with no stored
// snapshot gets the empty view, not an error; browsing starts cold.
func (q *packageQueriesImpl) GetPackage(ctx context.Context, sessionID uuid.UUID) (*PackageView, error) {
	snap, err := q.snapshots.Find(ctx, sessionID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrPackageLoadFailed)
	}

	c, err := composer.RestoreComposer(q.clock, snap)
	if err != nil {
		return nil, errs.Mark(err, ErrPackageLoadFailed)
	}
	return NewPackageView(c), nil
}
