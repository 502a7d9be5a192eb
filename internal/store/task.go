package store

import (
	"context"
	"strconv"

	"pmdash/contracts/mq"
	"pmdash/internal/model"
)

// AddTask 태스크를 추가한다. ID 는 max+1(빈 컬렉션이면 1)로 할당하고,
// 추가 직후 전체 마일스톤 상태를 다시 파생한다.
func (s *Store) AddTask(ctx context.Context, t model.Task) (model.Task, error) {
	s.mu.Lock()
	t.ID = s.nextTaskIDLocked()
	s.tasks = append(s.tasks, t)
	s.afterTaskMutationLocked(ctx)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "task", mq.ActionCreated, strconv.Itoa(t.ID))
	return t, nil
}

// UpdateTask ID 를 유지한 채 레코드를 교체하고 파생을 다시 돌린다.
func (s *Store) UpdateTask(ctx context.Context, id int, t model.Task) (model.Task, error) {
	s.mu.Lock()
	idx := s.taskIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.Task{}, ErrNotFound
	}
	t.ID = id
	s.tasks[idx] = t
	s.afterTaskMutationLocked(ctx)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "task", mq.ActionUpdated, strconv.Itoa(id))
	return t, nil
}

// DeleteTask 태스크를 삭제하고 파생을 다시 돌린다.
func (s *Store) DeleteTask(ctx context.Context, id int) error {
	s.mu.Lock()
	idx := s.taskIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.afterTaskMutationLocked(ctx)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "task", mq.ActionDeleted, strconv.Itoa(id))
	return nil
}

// afterTaskMutationLocked 태스크 변경 공통 후처리: 태스크 저장,
// 전체 파생, 상태가 바뀐 경우 마일스톤 저장.
func (s *Store) afterTaskMutationLocked(ctx context.Context) {
	s.persistLocked(ctx, keyTasks, len(s.tasks), s.tasks)
	if s.deriveAllLocked() {
		s.persistLocked(ctx, keyMilestones, len(s.milestones), s.milestones)
	}
}

func (s *Store) taskIndexLocked(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextTaskIDLocked() int {
	max := 0
	for _, t := range s.tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
