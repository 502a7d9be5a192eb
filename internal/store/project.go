package store

import (
	"context"
	"hash/fnv"

	"github.com/google/uuid"

	"pmdash/contracts/mq"
	"pmdash/internal/model"
)

// AddProject 프로젝트를 추가한다. ID 는 생성 시점에 부여되며 이후 변하지
// 않는다. startDate 가 비어 있으면 dueDate 로부터 결정적으로 합성한다.
// 프로젝트명 중복 검사는 호출자(핸들러) 책임이다.
func (s *Store) AddProject(ctx context.Context, p model.Project) (model.Project, error) {
	s.mu.Lock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.StartDate.IsZero() && !p.DueDate.IsZero() {
		p.StartDate = synthesizeStartDate(p.Name, p.DueDate)
	}
	s.projects = append(s.projects, p)
	s.persistLocked(ctx, keyProjects, len(s.projects), s.projects)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "project", mq.ActionCreated, p.ID)
	return p, nil
}

// UpdateProject 프로젝트를 교체한다. 들어온 레코드의 ID 는 무시하고
// 식별자의 ID 를 유지한다.
func (s *Store) UpdateProject(ctx context.Context, id string, p model.Project) (model.Project, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return model.Project{}, ErrNotFound
	}
	p.ID = id
	s.projects[idx] = p
	s.persistLocked(ctx, keyProjects, len(s.projects), s.projects)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "project", mq.ActionUpdated, id)
	return p, nil
}

// DeleteProject 프로젝트를 삭제한다. 이 프로젝트를 참조하는 태스크,
// 마일스톤, 산출물은 그대로 남는다(고아 정책, Orphans 로 조회 가능).
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)
	s.persistLocked(ctx, keyProjects, len(s.projects), s.projects)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap, "project", mq.ActionDeleted, id)
	return nil
}

// ProjectByName 이름으로 프로젝트를 찾는다. 핸들러의 중복 검사용.
func (s *Store) ProjectByName(name string) (model.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.Name == name {
			return p, true
		}
	}
	return model.Project{}, false
}

// synthesizeStartDate 이름 해시로 1~30일 사이 오프셋을 골라 dueDate 보다
// 앞선 시작일을 만든다. 같은 입력이면 항상 같은 결과가 나온다.
func synthesizeStartDate(name string, due model.Date) model.Date {
	days := int(fnv32(name)%30) + 1
	return due.AddDays(-days)
}

// fnv32 FNV-1a 32비트 해시
func fnv32(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
