package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pmdash/internal/kv"
	"pmdash/internal/model"
)

// collectionKeys 버전 불일치 시 초기화되는 키 목록. 팀원 컬렉션도
// 항상 포함한다(원본 구현은 버전에 따라 오락가락했다).
var collectionKeys = []string{
	keyProjects, keyMilestones, keyDeliverables, keyTasks, keyTeamMembers,
}

// Open 스토어를 부트스트랩한다: 버전 확인/마이그레이션 → 누락 컬렉션 시드
// → 로드 → 정규화 → 첫 파생 패스. 저장된 JSON 이 깨져 있으면 실패한다.
func Open(ctx context.Context, kvs kv.Store, logger *zap.Logger, opts ...Option) (*Store, error) {
	s := &Store{kv: kvs, log: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	if err := s.seedMissing(ctx); err != nil {
		return nil, err
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.normalizeLocked()
	s.deriveAllLocked()
	s.mu.Unlock()

	logger.Info("store bootstrapped",
		zap.Int("projects", len(s.projects)),
		zap.Int("milestones", len(s.milestones)),
		zap.Int("deliverables", len(s.deliverables)),
		zap.Int("tasks", len(s.tasks)),
		zap.Int("team_members", len(s.members)),
	)
	return s, nil
}

// migrate 저장된 dataVersion 을 확인한다. 현재 버전이면 아무것도 하지 않고,
// 마이그레이션 체인 위의 버전이면 문서를 변환하며, 그 외에는 컬렉션을
// 전부 지워 재시드되게 한다. 마지막에 항상 현재 버전을 기록한다.
func (s *Store) migrate(ctx context.Context) error {
	stored := ""
	doc, err := s.kv.Get(ctx, keyDataVersion)
	switch {
	case err == nil:
		stored = string(doc)
	case errors.Is(err, kv.ErrNotFound):
		// 첫 실행
	default:
		return fmt.Errorf("read data version: %w", err)
	}

	if stored == DataVersion {
		return nil
	}

	steps, known := NewMigrator().Path(stored)
	if !known {
		s.log.Info("unknown data version, wiping collections",
			zap.String("stored", stored),
			zap.String("current", DataVersion),
		)
		for _, key := range collectionKeys {
			if err := s.kv.Delete(ctx, key); err != nil {
				return fmt.Errorf("wipe %s: %w", key, err)
			}
		}
		return s.writeVersion(ctx)
	}

	docs := make(map[string][]byte)
	for _, key := range collectionKeys {
		raw, err := s.kv.Get(ctx, key)
		if errors.Is(err, kv.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s for migration: %w", key, err)
		}
		docs[key] = raw
	}

	for _, step := range steps {
		s.log.Info("applying migration step",
			zap.String("from", step.From),
			zap.String("to", step.To),
		)
		docs, err = step.Apply(docs)
		if err != nil {
			return fmt.Errorf("migration %s->%s: %w", step.From, step.To, err)
		}
	}

	for key, raw := range docs {
		if err := s.kv.Set(ctx, key, raw); err != nil {
			return fmt.Errorf("write migrated %s: %w", key, err)
		}
	}
	return s.writeVersion(ctx)
}

func (s *Store) writeVersion(ctx context.Context) error {
	if err := s.kv.Set(ctx, keyDataVersion, []byte(DataVersion)); err != nil {
		return fmt.Errorf("write data version: %w", err)
	}
	return nil
}

// seedMissing 저장소에 없는 컬렉션을 하드코딩된 초기 데이터로 채운다.
func (s *Store) seedMissing(ctx context.Context) error {
	seeds := map[string]any{
		keyProjects:     seedProjects(),
		keyMilestones:   seedMilestones(s.now()),
		keyDeliverables: seedDeliverables(),
		keyTasks:        seedTasks(),
		keyTeamMembers:  seedTeamMembers(),
	}
	for _, key := range collectionKeys {
		_, err := s.kv.Get(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, kv.ErrNotFound) {
			return fmt.Errorf("read %s: %w", key, err)
		}
		doc, err := json.Marshal(seeds[key])
		if err != nil {
			return fmt.Errorf("marshal seed %s: %w", key, err)
		}
		if err := s.kv.Set(ctx, key, doc); err != nil {
			return fmt.Errorf("seed %s: %w", key, err)
		}
		s.log.Info("seeded collection", zap.String("key", key))
	}
	return nil
}

// load 다섯 컬렉션을 메모리로 읽는다. 파싱 실패는 복구하지 않는다.
func (s *Store) load(ctx context.Context) error {
	read := func(key string, dst any) error {
		doc, err := s.kv.Get(ctx, key)
		if errors.Is(err, kv.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		if err := json.Unmarshal(doc, dst); err != nil {
			return fmt.Errorf("parse %s: %w", key, err)
		}
		return nil
	}

	if err := read(keyProjects, &s.projects); err != nil {
		return err
	}
	if err := read(keyMilestones, &s.milestones); err != nil {
		return err
	}
	if err := read(keyDeliverables, &s.deliverables); err != nil {
		return err
	}
	if err := read(keyTasks, &s.tasks); err != nil {
		return err
	}
	return read(keyTeamMembers, &s.members)
}

// normalizeLocked 로드 직후 한 번 도는 값 정규화.
//   - 레거시 상태 표기 치환(버전과 무관하게 항상, 멱등)
//   - startDate 가 없는 프로젝트는 결정적으로 합성
//   - assignee 가 없는 프로젝트는 이름 해시로 팀원 배정
//   - 데모 마일스톤 날짜를 오늘+15일로 재설정
//
// 정규화 결과는 메모리에만 반영되고 다음 변경 때 함께 저장된다.
func (s *Store) normalizeLocked() {
	for i := range s.milestones {
		s.milestones[i].Status = model.NormalizeStatus(s.milestones[i].Status)
	}
	for i := range s.tasks {
		s.tasks[i].Status = model.NormalizeStatus(s.tasks[i].Status)
	}
	for i := range s.deliverables {
		s.deliverables[i].Status = model.NormalizeStatus(s.deliverables[i].Status)
	}
	for i := range s.projects {
		s.projects[i].Status = model.NormalizeStatus(s.projects[i].Status)
	}

	for i := range s.projects {
		p := &s.projects[i]
		if p.StartDate.IsZero() && !p.DueDate.IsZero() {
			p.StartDate = synthesizeStartDate(p.Name, p.DueDate)
		}
		if p.Assignee == "" && len(s.members) > 0 {
			p.Assignee = s.members[fnv32(p.Name)%uint32(len(s.members))].Name
		}
	}

	for i := range s.milestones {
		m := &s.milestones[i]
		if m.Project == demoMilestoneProject && m.Name == demoMilestoneName {
			m.Date = model.DateOf(s.now()).AddDays(15)
		}
	}
}
