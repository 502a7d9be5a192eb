package store

import (
	"context"

	"github.com/google/uuid"

	"pmdash/contracts/mq"
	"pmdash/internal/model"
)

// AddDeliverable 산출물을 추가한다. 산출물은 파생 엔진과 무관하다.
func (s *Store) AddDeliverable(ctx context.Context, d model.Deliverable) (model.Deliverable, error) {
	s.mu.Lock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	s.deliverables = append(s.deliverables, d)
	s.persistLocked(ctx, keyDeliverables, len(s.deliverables), s.deliverables)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "deliverable", mq.ActionCreated, d.ID)
	return d, nil
}

func (s *Store) UpdateDeliverable(ctx context.Context, id string, d model.Deliverable) (model.Deliverable, error) {
	s.mu.Lock()
	idx := s.deliverableIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Deliverable{}, ErrNotFound
	}
	d.ID = id
	s.deliverables[idx] = d
	s.persistLocked(ctx, keyDeliverables, len(s.deliverables), s.deliverables)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "deliverable", mq.ActionUpdated, id)
	return d, nil
}

func (s *Store) DeleteDeliverable(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.deliverableIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.deliverables = append(s.deliverables[:idx], s.deliverables[idx+1:]...)
	s.persistLocked(ctx, keyDeliverables, len(s.deliverables), s.deliverables)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "deliverable", mq.ActionDeleted, id)
	return nil
}

func (s *Store) deliverableIndexLocked(id string) int {
	for i := range s.deliverables {
		if s.deliverables[i].ID == id {
			return i
		}
	}
	return -1
}
