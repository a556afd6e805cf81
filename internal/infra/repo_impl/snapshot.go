package repo_impl

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"turipack/internal/domain/composer"
	"turipack/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "turipack:pkg:"

// SnapshotRepository keeps one JSON snapshot per session in Redis. The TTL is
// refreshed on every save, so a package lives as long as the visitor keeps
// touching it.
type SnapshotRepository struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{client: client}
}

func snapshotKey(sessionID uuid.UUID) string {
	return snapshotKeyPrefix + sessionID.String()
}

func (r *SnapshotRepository) Find(ctx context.Context, sessionID uuid.UUID) (*composer.Snapshot, error) {
	data, err := r.client.Get(ctx, snapshotKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("snapshot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read snapshot", err, infra.KindCacheFailure)
	}

	var snap composer.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, infra.WrapRepoErr("failed to decode snapshot", err, infra.KindBadSnapshot)
	}
	return &snap, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, sessionID uuid.UUID, snap *composer.Snapshot, ttl time.Duration) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return infra.WrapRepoErr("failed to encode snapshot", err, infra.KindBadSnapshot)
	}

	if err := r.client.Set(ctx, snapshotKey(sessionID), data, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write snapshot", err, infra.KindCacheFailure)
	}
	return nil
}

func (r *SnapshotRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.client.Del(ctx, snapshotKey(sessionID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete snapshot", err, infra.KindCacheFailure)
	}
	return nil
}
