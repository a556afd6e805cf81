package commands

import (
	"context"
	"time"

	"turipack/internal/domain/catalog"
	"turipack/internal/domain/composer"
	"turipack/internal/infra"
	"turipack/internal/pkg/clock"
	"turipack/internal/pkg/config"
	"turipack/internal/pkg/errs"
	"turipack/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound     = errs.New("service not found")
	ErrPackageNotFound     = errs.New("package not found")
	ErrInvalidDateRange    = errs.New("invalid date range")
	ErrSnapshotLoadFailed  = errs.New("failed to load package snapshot")
	ErrSnapshotSaveFailed  = errs.New("failed to save package snapshot")
	ErrCatalogLookupFailed = errs.New("catalog lookup failed")
)

// CatalogRepository resolves catalog services for composition. The composer
// itself never fetches; the service record is handed to it fully formed.
type CatalogRepository interface {
	FindServiceByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}

// SnapshotRepository is the durable key-value boundary for session state.
type SnapshotRepository interface {
	Find(ctx context.Context, sessionID uuid.UUID) (*composer.Snapshot, error)
	Save(ctx context.Context, sessionID uuid.UUID, snap *composer.Snapshot, ttl time.Duration) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

type AddServiceInput struct {
	ServiceID uuid.UUID
	Persons   int
	Date      *time.Time
	Time      string
	Notes     string
}

// UpdateItemInput carries a partial line update; nil fields stay untouched.
type UpdateItemInput struct {
	Persons *int
	Date    *time.Time
	Time    *string
	Notes   *string
}

type PackageCommands interface {
	AddService(ctx context.Context, sessionID uuid.UUID, input AddServiceInput) (*queries.PackageView, error)
	RemoveService(ctx context.Context, sessionID uuid.UUID, serviceID uuid.UUID) (*queries.PackageView, error)
	UpdateItem(ctx context.Context, sessionID uuid.UUID, serviceID uuid.UUID, input UpdateItemInput) (*queries.PackageView, error)
	SetTravelers(ctx context.Context, sessionID uuid.UUID, persons int) (*queries.PackageView, error)
	SetDateRange(ctx context.Context, sessionID uuid.UUID, checkIn, checkOut time.Time) (*queries.PackageView, error)
	Recalculate(ctx context.Context, sessionID uuid.UUID) (*queries.PackageView, error)
	SavePackage(ctx context.Context, sessionID uuid.UUID) (*queries.PackageView, error)
	ClearPackage(ctx context.Context, sessionID uuid.UUID) error
}

type packageCommandsImpl struct {
	catalogRepo  CatalogRepository
	snapshotRepo SnapshotRepository
	clock        clock.Clock
	sessionTTL   time.Duration
}

func NewPackageCommands(
	catalogRepo CatalogRepository,
	snapshotRepo SnapshotRepository,
	clock clock.Clock,
	cfg config.SessionConfig,
) PackageCommands {
	return &packageCommandsImpl{
		catalogRepo:  catalogRepo,
		snapshotRepo: snapshotRepo,
		clock:        clock,
		sessionTTL:   cfg.TTL,
	}
}

func (u *packageCommandsImpl) AddService(
	ctx context.Context,
	sessionID uuid.UUID,
	input AddServiceInput,
) (*queries.PackageView, error) {
	svc, err := u.catalogRepo.FindServiceByID(ctx, input.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrCatalogLookupFailed)
	}

	return u.mutate(ctx, sessionID, func(c *composer.Composer) {
		c.AddService(svc, input.Persons, input.Date, input.Time, input.Notes)
	})
}

func (u *packageCommandsImpl) RemoveService(
	ctx context.Context,
	sessionID uuid.UUID,
	serviceID uuid.UUID,
) (*queries.PackageView, error) {
	return u.mutate(ctx, sessionID, func(c *composer.Composer) {
		c.RemoveService(serviceID)
	})
}

func (u *packageCommandsImpl) UpdateItem(
	ctx context.Context,
	sessionID uuid.UUID,
	serviceID uuid.UUID,
	input UpdateItemInput,
) (*queries.PackageView, error) {
	return u.mutate(ctx, sessionID, func(c *composer.Composer) {
		if input.Persons != nil {
			c.UpdateServicePersons(serviceID, *input.Persons)
		}
		if input.Date != nil {
			c.UpdateServiceDate(serviceID, input.Date)
		}
		if input.Time != nil {
			c.UpdateServiceTime(serviceID, *input.Time)
		}
		if input.Notes != nil {
			c.UpdateServiceNotes(serviceID, *input.Notes)
		}
	})
}

func (u *packageCommandsImpl) SetTravelers(
	ctx context.Context,
	sessionID uuid.UUID,
	persons int,
) (*queries.PackageView, error) {
	return u.mutate(ctx, sessionID, func(c *composer.Composer) {
		c.SetTotalPersons(persons)
	})
}

func (u *packageCommandsImpl) SetDateRange(
	ctx context.Context,
	sessionID uuid.UUID,
	checkIn, checkOut time.Time,
) (*queries.PackageView, error) {
	dateRange, err := composer.NewDateRange(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	return u.mutate(ctx, sessionID, func(c *composer.Composer) {
		c.SetDateRange(dateRange)
	})
}

func (u *packageCommandsImpl) Recalculate(
	ctx context.Context,
	sessionID uuid.UUID,
) (*queries.PackageView, error) {
	return u.mutate(ctx, sessionID, func(c *composer.Composer) {
		c.CalculatePrices()
	})
}

// SavePackage marks the draft as kept-for-later. Unlike the composition
// operations this one refuses to run on an empty session; there is nothing
// to save.
func (u *packageCommandsImpl) SavePackage(
	ctx context.Context,
	sessionID uuid.UUID,
) (*queries.PackageView, error) {
	c, err := u.loadComposer(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	expiresAt := u.clock.Now().Add(u.sessionTTL)
	if !c.MarkSaved(expiresAt) {
		return nil, ErrPackageNotFound
	}

	if err := u.persist(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return queries.NewPackageView(c), nil
}

func (u *packageCommandsImpl) ClearPackage(ctx context.Context, sessionID uuid.UUID) error {
	if err := u.snapshotRepo.Delete(ctx, sessionID); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrSnapshotSaveFailed)
	}
	return nil
}

// mutate is the one load-apply-persist path: every command reads the current
// snapshot, applies its operation to the restored composer, and replaces the
// stored snapshot. Each HTTP request is one atomic step over session state.
func (u *packageCommandsImpl) mutate(
	ctx context.Context,
	sessionID uuid.UUID,
	op func(*composer.Composer),
) (*queries.PackageView, error) {
	c, err := u.loadComposer(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	op(c)

	if err := u.persist(ctx, sessionID, c); err != nil {
		return nil, err
	}
	return queries.NewPackageView(c), nil
}

func (u *packageCommandsImpl) loadComposer(ctx context.Context, sessionID uuid.UUID) (*composer.Composer, error) {
	snap, err := u.snapshotRepo.Find(ctx, sessionID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrSnapshotLoadFailed)
	}

	c, err := composer.RestoreComposer(u.clock, snap)
	if err != nil {
		return nil, errs.Mark(err, ErrSnapshotLoadFailed)
	}
	return c, nil
}

func (u *packageCommandsImpl) persist(ctx context.Context, sessionID uuid.UUID, c *composer.Composer) error {
	if err := u.snapshotRepo.Save(ctx, sessionID, c.Snapshot(), u.sessionTTL); err != nil {
		return errs.Mark(err, ErrSnapshotSaveFailed)
	}
	return nil
}
