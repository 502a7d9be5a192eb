package store

import (
	"context"
	"strconv"

	"pmdash/contracts/mq"
	"pmdash/internal/model"
)

// AddMilestone 마일스톤을 추가한다. ID 는 max+1 로 할당한다.
// 입력의 status 는 받아들이되 다음 파생 패스에서 덮어쓰일 수 있다.
func (s *Store) AddMilestone(ctx context.Context, m model.Milestone) (model.Milestone, error) {
	s.mu.Lock()
	m.ID = s.nextMilestoneIDLocked()
	s.milestones = append(s.milestones, m)
	s.persistLocked(ctx, keyMilestones, len(s.milestones), s.milestones)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "milestone", mq.ActionCreated, strconv.Itoa(m.ID))
	return m, nil
}

// UpdateMilestone ID 를 유지한 채 레코드를 교체한다.
func (s *Store) UpdateMilestone(ctx context.Context, id int, m model.Milestone) (model.Milestone, error) {
	s.mu.Lock()
	idx := s.milestoneIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Milestone{}, ErrNotFound
	}
	m.ID = id
	s.milestones[idx] = m
	s.persistLocked(ctx, keyMilestones, len(s.milestones), s.milestones)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "milestone", mq.ActionUpdated, strconv.Itoa(id))
	return m, nil
}

// DeleteMilestone 마일스톤을 삭제한다. 이 마일스톤을 참조하던 태스크의
// milestoneId 는 그대로 남는다(고아 정책).
func (s *Store) DeleteMilestone(ctx context.Context, id int) error {
	s.mu.Lock()
	idx := s.milestoneIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.milestones = append(s.milestones[:idx], s.milestones[idx+1:]...)
	s.persistLocked(ctx, keyMilestones, len(s.milestones), s.milestones)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "milestone", mq.ActionDeleted, strconv.Itoa(id))
	return nil
}

func (s *Store) milestoneIndexLocked(id int) int {
	for i := range s.milestones {
		if s.milestones[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextMilestoneIDLocked() int {
	max := 0
	for _, m := range s.milestones {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}
