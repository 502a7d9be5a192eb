// Package store 는 대시보드의 다섯 컬렉션(프로젝트, 마일스톤, 산출물,
// 태스크, 팀원)을 메모리에 소유하고, 변경 시마다 키-값 저장소에 기록하며,
// 태스크 변경 후 마일스톤 상태 파생을 수행하는 서비스다.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"pmdash/contracts/mq"
	"pmdash/internal/kv"
	"pmdash/internal/model"
	"pmdash/pkg/metrics"
)

// 저장소 키. 컬렉션별로 문서 하나.
const (
	keyProjects     = "projects"
	keyMilestones   = "milestones"
	keyDeliverables = "deliverables"
	keyTasks        = "tasks"
	keyTeamMembers  = "teamMembers"
	keyDataVersion  = "dataVersion"
)

// DataVersion 현재 코드가 기대하는 저장 스키마 버전.
// 부트스트랩에서 저장된 값과 정확히 일치하는지만 비교한다.
const DataVersion = "3.0"

// ErrNotFound 주어진 식별자의 레코드가 없다.
var ErrNotFound = errors.New("store: record not found")

// Publisher 변경 이벤트를 외부로 내보내는 발행자. pkg/mq.Publisher 가 구현한다.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

// Snapshot 다섯 컬렉션의 복사본. 호출자가 자유롭게 수정해도
// 스토어 내부 상태에는 영향이 없다.
type Snapshot struct {
	Projects     []model.Project     `json:"projects"`
	Milestones   []model.Milestone   `json:"milestones"`
	Deliverables []model.Deliverable `json:"deliverables"`
	Tasks        []model.Task        `json:"tasks"`
	TeamMembers  []model.TeamMember  `json:"teamMembers"`
}

// Store 다섯 컬렉션의 단일 소유자. 모든 변경은 뮤텍스 아래에서
// 변경 → 저장 → 파생 순으로 끝나므로 관찰자는 중간 상태를 볼 수 없다.
type Store struct {
	mu  sync.Mutex
	kv  kv.Store
	log *zap.Logger
	pub Publisher
	now func() time.Time

	projects     []model.Project
	milestones   []model.Milestone
	deliverables []model.Deliverable
	tasks        []model.Task
	members      []model.TeamMember

	subs []func(Snapshot)
}

// Option Store 생성 옵션
type Option func(*Store)

// WithPublisher 변경 이벤트 발행자를 연결한다.
func WithPublisher(p Publisher) Option {
	return func(s *Store) { s.pub = p }
}

// WithClock 시계를 교체한다. 테스트용.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Snapshot 현재 상태의 복사본을 돌려준다.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Projects:     append([]model.Project(nil), s.projects...),
		Milestones:   append([]model.Milestone(nil), s.milestones...),
		Deliverables: append([]model.Deliverable(nil), s.deliverables...),
		Tasks:        append([]model.Task(nil), s.tasks...),
		TeamMembers:  append([]model.TeamMember(nil), s.members...),
	}
}

// Subscribe 변경 후 스냅샷을 받을 구독자를 등록한다. 구독자는 변경을
// 일으킨 뮤텍스 바깥에서 호출되므로 스토어를 다시 호출해도 안전하다.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// notify 구독자 콜백과 변경 이벤트 발행. 뮤텍스 해제 후 호출할 것.
// 구독자 목록은 Subscribe 와 경합하지 않도록 잠깐 잠그고 복사해서 순회한다.
func (s *Store) notify(snap Snapshot, collection, action, key string) {
	metrics.IncrementStoreMutation(collection, action)

	s.mu.Lock()
	subs := append(([]func(Snapshot))(nil), s.subs...)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}

	if s.pub == nil {
		return
	}
	event := mq.ChangeEvent{
		Collection: collection,
		Action:     action,
		Key:        key,
	}
	if err := s.pub.Publish(collection+"."+action, event); err != nil {
		s.log.Warn("failed to publish change event",
			zap.String("collection", collection),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

// persistLocked 컬렉션 하나를 저장소에 기록한다. 비어 있는 컬렉션은
// 기록하지 않는다(마지막 항목 삭제가 저장소를 비우지 않는다는 기존 동작 유지).
// 저장 실패는 로그만 남긴다. 변경 자체는 이미 메모리에 반영된 뒤다.
func (s *Store) persistLocked(ctx context.Context, key string, length int, collection any) {
	if length == 0 {
		return
	}
	start := time.Now()

	doc, err := json.Marshal(collection)
	if err != nil {
		s.log.Error("failed to marshal collection", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, key, doc); err != nil {
		s.log.Error("failed to persist collection", zap.String("key", key), zap.Error(err))
		return
	}
	metrics.RecordPersistDuration(key, time.Since(start))
}
