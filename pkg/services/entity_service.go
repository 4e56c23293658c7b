package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aether-home/aether/ent"
	enthaentity "github.com/aether-home/aether/ent/haentity"
	"github.com/aether-home/aether/pkg/models"
)

// EntityService maintains the latest observed snapshot of controller
// entities. Writes come from the event debouncer and the discovery
// sync; the librarian agent and the dashboard read from it.
type EntityService struct {
	client *ent.Client
}

// NewEntityService creates a new EntityService.
func NewEntityService(client *ent.Client) *EntityService {
	return &EntityService{client: client}
}

// UpsertBatch writes a batch of entity snapshots in a single
// transaction. Last write wins per entity; the debouncer has already
// collapsed intermediate states.
func (s *EntityService) UpsertBatch(ctx context.Context, snapshots []models.EntitySnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	for _, snap := range snapshots {
		if snap.EntityID == "" {
			continue
		}
		create := tx.HAEntity.Create().
			SetID(snap.EntityID).
			SetDomain(snap.Domain()).
			SetState(snap.State).
			SetLastSynced(now)
		if len(snap.Attributes) > 0 {
			create = create.SetAttributes(snap.Attributes)
		}
		if snap.FriendlyName != "" {
			create = create.SetFriendlyName(snap.FriendlyName)
		}
		if snap.LastChanged != "" {
			if t, perr := time.Parse(time.RFC3339, snap.LastChanged); perr == nil {
				create = create.SetLastChanged(t)
			}
		}
		err := create.
			OnConflictColumns(enthaentity.FieldID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert entity %s: %w", snap.EntityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entity batch: %w", err)
	}
	return nil
}

// Get returns one entity snapshot.
func (s *EntityService) Get(httpCtx context.Context, entityID string) (*ent.HAEntity, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	e, err := s.client.HAEntity.Get(ctx, entityID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return e, nil
}

// List returns entity snapshots, optionally filtered by domain.
func (s *EntityService) List(httpCtx context.Context, domain string, limit int) ([]*ent.HAEntity, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	q := s.client.HAEntity.Query()
	if domain != "" {
		q = q.Where(enthaentity.DomainEQ(domain))
	}
	if limit <= 0 || limit > 2000 {
		limit = 500
	}
	items, err := q.
		Order(ent.Asc(enthaentity.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}
	return items, nil
}

// Count returns the number of known entities.
func (s *EntityService) Count(httpCtx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	n, err := s.client.HAEntity.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}
	return n, nil
}

// PurgeStale deletes entities the controller has not reported within
// the cutoff. Discovery sync calls this to drop removed devices.
func (s *EntityService) PurgeStale(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.HAEntity.Delete().
		Where(enthaentity.LastSyncedLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge stale entities: %w", err)
	}
	return n, nil
}
