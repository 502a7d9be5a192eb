package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"pmdash/contracts/mq"
	"pmdash/internal/model"
)

// AddTeamMember 팀원을 추가한다. ID 는 "tm<N>" 형식으로, 기존 숫자 접미사의
// 최댓값 +1 을 쓴다(빈 컬렉션이면 tm1).
func (s *Store) AddTeamMember(ctx context.Context, m model.TeamMember) (model.TeamMember, error) {
	s.mu.Lock()
	m.ID = s.nextMemberIDLocked()
	s.members = append(s.members, m)
	s.persistLocked(ctx, keyTeamMembers, len(s.members), s.members)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "teamMember", mq.ActionCreated, m.ID)
	return m, nil
}

// UpdateTeamMember ID 를 유지한 채 레코드를 교체한다. 이름을 바꿔도
// 프로젝트/태스크의 assignee 에는 반영되지 않는다(이름 참조 비정규화,
// Orphans 로 불일치를 조회할 수 있다).
func (s *Store) UpdateTeamMember(ctx context.Context, id string, m model.TeamMember) (model.TeamMember, error) {
	s.mu.Lock()
	idx := s.memberIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return model.TeamMember{}, ErrNotFound
	}
	m.ID = id
	s.members[idx] = m
	s.persistLocked(ctx, keyTeamMembers, len(s.members), s.members)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "teamMember", mq.ActionUpdated, id)
	return m, nil
}

func (s *Store) DeleteTeamMember(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.memberIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.members = append(s.members[:idx], s.members[idx+1:]...)
	s.persistLocked(ctx, keyTeamMembers, len(s.members), s.members)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "teamMember", mq.ActionDeleted, id)
	return nil
}

func (s *Store) memberIndexLocked(id string) int {
	for i := range s.members {
		if s.members[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextMemberIDLocked() string {
	max := 0
	for _, m := range s.members {
		suffix := strings.TrimPrefix(m.ID, "tm")
		if n, err := strconv.Atoi(suffix); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("tm%d", max+1)
}
