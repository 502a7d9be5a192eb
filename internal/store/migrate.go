package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"pmdash/internal/model"
)

// MigrationStep 저장된 컬렉션 문서를 한 버전 앞으로 옮기는 순수 변환.
// docs 는 컬렉션 키 → 원본 JSON 문서이며, 저장소에 없는 컬렉션은 빠져 있다.
type MigrationStep struct {
	From  string
	To    string
	Apply func(docs map[string][]byte) (map[string][]byte, error)
}

// Migrator 버전 체인. 저장된 버전이 체인 위에 있으면 단계별로 전진시키고,
// 체인 밖이면(기록 없음 포함) 전체 초기화로 돌아간다. 알려진 버전에
// 한해서만 데이터를 살린다.
type Migrator struct {
	steps []MigrationStep
}

// NewMigrator 기본 마이그레이션 체인.
func NewMigrator() *Migrator {
	return &Migrator{steps: []MigrationStep{
		{From: "2.6", To: "3.0", Apply: migrate26to30},
	}}
}

// Path from 버전에서 현재 버전까지의 단계 목록. 체인에 없으면 ok=false.
func (m *Migrator) Path(from string) ([]MigrationStep, bool) {
	if from == DataVersion {
		return nil, true
	}
	var path []MigrationStep
	cur := from
	for cur != DataVersion {
		found := false
		for _, step := range m.steps {
			if step.From == cur {
				path = append(path, step)
				cur = step.To
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return path, true
}

// migrate26to30 2.6 에는 프로젝트/산출물에 안정 식별자가 없었다.
// 저장된 레코드에 id 를 부여하고 레거시 상태 표기를 현재 어휘로 바꾼다.
func migrate26to30(docs map[string][]byte) (map[string][]byte, error) {
	out := make(map[string][]byte, len(docs))
	for k, v := range docs {
		out[k] = v
	}

	for _, key := range []string{keyProjects, keyDeliverables} {
		doc, ok := out[key]
		if !ok {
			continue
		}
		var records []map[string]any
		if err := json.Unmarshal(doc, &records); err != nil {
			return nil, fmt.Errorf("migrate 2.6: unmarshal %s: %w", key, err)
		}
		for _, r := range records {
			if id, _ := r["id"].(string); id == "" {
				r["id"] = uuid.NewString()
			}
			remapRawStatus(r)
		}
		migrated, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("migrate 2.6: marshal %s: %w", key, err)
		}
		out[key] = migrated
	}

	for _, key := range []string{keyMilestones, keyTasks} {
		doc, ok := out[key]
		if !ok {
			continue
		}
		var records []map[string]any
		if err := json.Unmarshal(doc, &records); err != nil {
			return nil, fmt.Errorf("migrate 2.6: unmarshal %s: %w", key, err)
		}
		for _, r := range records {
			remapRawStatus(r)
		}
		migrated, err := json.Marshal(records)
		if err != nil {
			return nil, fmt.Errorf("migrate 2.6: marshal %s: %w", key, err)
		}
		out[key] = migrated
	}

	return out, nil
}

func remapRawStatus(r map[string]any) {
	if status, ok := r["status"].(string); ok {
		r["status"] = string(model.NormalizeStatus(model.Status(status)))
	}
}
