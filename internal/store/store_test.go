package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pmdash/internal/kv"
	"pmdash/internal/model"
)

func TestAddTask_AllocatesMaxPlusOne(t *testing.T) {
	s, _ := openWith(t, map[string]any{
		keyTasks: []model.Task{
			{ID: 3, Name: "a", Status: model.StatusDone},
			{ID: 15, Name: "b", Status: model.StatusPlanned},
			{ID: 7, Name: "c", Status: model.StatusPending},
		},
	})

	created, err := s.AddTask(context.Background(), model.Task{Name: "새 점검", Status: model.StatusPlanned})
	require.NoError(t, err)
	assert.Equal(t, 16, created.ID)
}

func TestAddTask_EmptyCollectionStartsAtOne(t *testing.T) {
	s, _ := openWith(t, nil)

	created, err := s.AddTask(context.Background(), model.Task{Name: "첫 점검", Status: model.StatusPlanned})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestAddTeamMember_AllocatesNextSuffix(t *testing.T) {
	s, _ := openSeeded(t) // tm1..tm9

	created, err := s.AddTeamMember(context.Background(), model.TeamMember{Name: "박신입", Department: "1카미노감리", Role: model.RoleRegular})
	require.NoError(t, err)
	assert.Equal(t, "tm10", created.ID)
}

func TestAddTeamMember_EmptyCollection(t *testing.T) {
	s, _ := openWith(t, nil)

	created, err := s.AddTeamMember(context.Background(), model.TeamMember{Name: "박신입", Role: model.RoleRegular})
	require.NoError(t, err)
	assert.Equal(t, "tm1", created.ID)
}

func TestAddTask_RederivesMilestoneImmediately(t *testing.T) {
	s, _ := openWith(t, map[string]any{
		keyMilestones: []model.Milestone{
			{ID: 5, Project: "프로젝트 A", Name: "베타 버전 개발", Status: model.StatusInProgress},
		},
	})

	// 관련 태스크가 없으므로 로드 직후에는 예정
	snap := s.Snapshot()
	require.Equal(t, model.StatusPending, snap.Milestones[0].Status)

	_, err := s.AddTask(context.Background(), model.Task{Name: "점검", Status: model.StatusDone, MilestoneID: 5})
	require.NoError(t, err)

	snap = s.Snapshot()
	assert.Equal(t, model.StatusDone, snap.Milestones[0].Status)
}

func TestUpdateTask_PreservesIDAndRederives(t *testing.T) {
	s, _ := openWith(t, map[string]any{
		keyMilestones: []model.Milestone{{ID: 1, Name: "m"}},
		keyTasks: []model.Task{
			{ID: 1, Name: "a", Status: model.StatusDone, MilestoneID: 1},
			{ID: 2, Name: "b", Status: model.StatusDone, MilestoneID: 1},
		},
	})
	require.Equal(t, model.StatusDone, s.Snapshot().Milestones[0].Status)

	updated, err := s.UpdateTask(context.Background(), 2, model.Task{ID: 999, Name: "b", Status: model.StatusInProgress, MilestoneID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ID, "incoming id is overwritten by the key")
	assert.Equal(t, model.StatusInProgress, s.Snapshot().Milestones[0].Status)
}

func TestDeleteTask_Rederives(t *testing.T) {
	s, _ := openWith(t, map[string]any{
		keyMilestones: []model.Milestone{{ID: 1, Name: "m"}},
		keyTasks: []model.Task{
			{ID: 1, Name: "a", Status: model.StatusDone, MilestoneID: 1},
			{ID: 2, Name: "b", Status: model.StatusInProgress, MilestoneID: 1},
		},
	})
	require.Equal(t, model.StatusInProgress, s.Snapshot().Milestones[0].Status)

	require.NoError(t, s.DeleteTask(context.Background(), 2))
	assert.Equal(t, model.StatusDone, s.Snapshot().Milestones[0].Status)
}

func TestDeleteProject_NoCascade(t *testing.T) {
	s, _ := openSeeded(t)

	p, ok := s.ProjectByName("프로젝트 A")
	require.True(t, ok)
	require.NoError(t, s.DeleteProject(context.Background(), p.ID))

	snap := s.Snapshot()
	var taskCount, milestoneCount int
	for _, task := range snap.Tasks {
		if task.Project == "프로젝트 A" {
			taskCount++
		}
	}
	for _, m := range snap.Milestones {
		if m.Project == "프로젝트 A" {
			milestoneCount++
		}
	}
	assert.Equal(t, 8, taskCount, "tasks referencing the deleted project stay")
	assert.Equal(t, 5, milestoneCount, "milestones referencing the deleted project stay")

	report := s.Orphans()
	assert.Len(t, report.Tasks, 8)
	assert.Len(t, report.Milestones, 5)
}

func TestOrphans_UnknownAssignee(t *testing.T) {
	s, _ := openWith(t, map[string]any{
		keyTeamMembers: []model.TeamMember{{ID: "tm1", Name: "고재환"}},
		keyTasks: []model.Task{
			{ID: 1, Name: "a", Status: model.StatusDone, Assignee: "퇴사자"},
		},
	})

	report := s.Orphans()
	assert.Equal(t, []string{"퇴사자"}, report.UnknownAssignees)
}

func TestMutation_WritesThrough(t *testing.T) {
	s, mem := openWith(t, nil)

	_, err := s.AddTask(context.Background(), model.Task{Name: "점검", Status: model.StatusPlanned})
	require.NoError(t, err)

	stored := readDoc[[]model.Task](t, mem, keyTasks)
	require.Len(t, stored, 1)
	assert.Equal(t, 1, stored[0].ID)
	assert.Equal(t, "점검", stored[0].Name)
}

func TestDeleteLastTask_DoesNotClearStorage(t *testing.T) {
	s, mem := openWith(t, map[string]any{
		keyTasks: []model.Task{{ID: 1, Name: "유일한 점검", Status: model.StatusDone}},
	})

	require.NoError(t, s.DeleteTask(context.Background(), 1))
	assert.Empty(t, s.Snapshot().Tasks)

	// 빈 컬렉션은 저장하지 않으므로 저장소에는 옛 문서가 남는다
	stored := readDoc[[]model.Task](t, mem, keyTasks)
	assert.Len(t, stored, 1)
}

func TestSnapshot_IsACopy(t *testing.T) {
	s, _ := openSeeded(t)

	snap := s.Snapshot()
	snap.Projects[0].Name = "변조"
	snap.Tasks = snap.Tasks[:0]

	fresh := s.Snapshot()
	assert.Equal(t, "프로젝트 A", fresh.Projects[0].Name)
	assert.Len(t, fresh.Tasks, 15)
}

func TestUpdate_NotFound(t *testing.T) {
	s, _ := openWith(t, nil)
	ctx := context.Background()

	_, err := s.UpdateTask(ctx, 42, model.Task{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UpdateProject(ctx, "missing", model.Project{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UpdateMilestone(ctx, 42, model.Milestone{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UpdateDeliverable(ctx, "missing", model.Deliverable{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UpdateTeamMember(ctx, "tm42", model.TeamMember{})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteTask(ctx, 42), ErrNotFound)
	assert.ErrorIs(t, s.DeleteProject(ctx, "missing"), ErrNotFound)
}

func TestSubscribe_NotifiedAfterMutation(t *testing.T) {
	s, _ := openWith(t, nil)

	var got []Snapshot
	s.Subscribe(func(snap Snapshot) { got = append(got, snap) })

	_, err := s.AddTask(context.Background(), model.Task{Name: "점검", Status: model.StatusPlanned})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Len(t, got[0].Tasks, 1)
}

func TestSubscribe_ConcurrentWithMutations(t *testing.T) {
	s, _ := openWith(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			s.Subscribe(func(Snapshot) {})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, err := s.AddTask(ctx, model.Task{Name: "동시성 점검", Status: model.StatusPlanned})
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	assert.Len(t, s.Snapshot().Tasks, 50)
}

type recordingPublisher struct {
	keys []string
}

func (p *recordingPublisher) Publish(routingKey string, _ any) error {
	p.keys = append(p.keys, routingKey)
	return nil
}

func TestPublisher_ReceivesChangeEvents(t *testing.T) {
	mem := kv.NewMemory()
	pub := &recordingPublisher{}
	s, err := Open(context.Background(), mem, zap.NewNop(), WithClock(fixedClock), WithPublisher(pub))
	require.NoError(t, err)

	ctx := context.Background()
	created, err := s.AddTask(ctx, model.Task{Name: "점검", Status: model.StatusPlanned})
	require.NoError(t, err)
	_, err = s.UpdateTask(ctx, created.ID, created)
	require.NoError(t, err)
	require.NoError(t, s.DeleteTask(ctx, created.ID))

	assert.Equal(t, []string{"task.created", "task.updated", "task.deleted"}, pub.keys)
}
