package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pmdash/internal/kv"
	"pmdash/internal/model"
)

// testNow 테스트 전용 고정 시각.
var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// openSeeded 시드 데이터로 부트스트랩한 스토어.
func openSeeded(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory()
	s, err := Open(context.Background(), mem, zap.NewNop(), WithClock(fixedClock))
	require.NoError(t, err)
	return s, mem
}

// openWith 미리 채워 둔 문서 위에서 부트스트랩한 스토어.
// 모든 컬렉션 키가 존재해야 시드가 끼어들지 않는다.
func openWith(t *testing.T, docs map[string]any) (*Store, *kv.Memory) {
	t.Helper()
	mem := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Set(ctx, keyDataVersion, []byte(DataVersion)))

	defaults := map[string]any{
		keyProjects:     []model.Project{},
		keyMilestones:   []model.Milestone{},
		keyDeliverables: []model.Deliverable{},
		keyTasks:        []model.Task{},
		keyTeamMembers:  []model.TeamMember{},
	}
	for key, val := range docs {
		defaults[key] = val
	}
	for key, val := range defaults {
		doc, err := json.Marshal(val)
		require.NoError(t, err)
		require.NoError(t, mem.Set(ctx, key, doc))
	}

	s, err := Open(ctx, mem, zap.NewNop(), WithClock(fixedClock))
	require.NoError(t, err)
	return s, mem
}

func readDoc[T any](t *testing.T, mem *kv.Memory, key string) T {
	t.Helper()
	doc, err := mem.Get(context.Background(), key)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(doc, &out))
	return out
}
