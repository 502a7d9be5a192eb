package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmdash/internal/model"
)

func d(s string) model.Date {
	parsed, err := model.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestWeeksInYear(t *testing.T) {
	// 2026년은 ISO 기준 53주(1월 1일이 목요일), 2027년은 52주
	weeks := WeeksInYear(2026)
	require.Len(t, weeks, 53)
	assert.Equal(t, 1, weeks[0])
	assert.Equal(t, 53, weeks[52])

	assert.Len(t, WeeksInYear(2027), 52)
}

func TestProjectActiveInWeek(t *testing.T) {
	// 2026-03-02(월) 은 2026년 10주차, 2026-05-31 은 22주차
	p := model.Project{Name: "A", StartDate: d("2026-03-02"), DueDate: d("2026-05-31")}

	_, startWeek := p.StartDate.ISOWeek()
	_, endWeek := p.DueDate.ISOWeek()

	assert.False(t, ProjectActiveInWeek(p, startWeek-1, 2026))
	assert.True(t, ProjectActiveInWeek(p, startWeek, 2026))
	assert.True(t, ProjectActiveInWeek(p, endWeek, 2026))
	assert.False(t, ProjectActiveInWeek(p, endWeek+1, 2026))
}

func TestProjectActiveInWeek_SpansYears(t *testing.T) {
	p := model.Project{Name: "B", StartDate: d("2025-11-01"), DueDate: d("2027-02-01")}

	// 중간 연도에는 모든 주에 걸쳐 있다
	assert.True(t, ProjectActiveInWeek(p, 1, 2026))
	assert.True(t, ProjectActiveInWeek(p, 52, 2026))

	// 시작 연도에는 시작 주 이후만
	_, startWeek := p.StartDate.ISOWeek()
	assert.True(t, ProjectActiveInWeek(p, startWeek+1, 2025))
	assert.False(t, ProjectActiveInWeek(p, startWeek-5, 2025))
}

func TestProjectActiveInWeek_MissingDates(t *testing.T) {
	assert.False(t, ProjectActiveInWeek(model.Project{Name: "C"}, 10, 2026))
}

func TestGrid_GroupsByAssignee(t *testing.T) {
	members := []model.TeamMember{
		{ID: "tm1", Name: "고재환"},
		{ID: "tm2", Name: "김기홍"},
	}
	projects := []model.Project{
		{Name: "프로젝트 A", Assignee: "고재환", StartDate: d("2026-01-05"), DueDate: d("2026-02-28")},
		{Name: "프로젝트 B", Assignee: "고재환", StartDate: d("2026-02-02"), DueDate: d("2026-03-31")},
		{Name: "프로젝트 C", Assignee: "남의것", StartDate: d("2026-01-05"), DueDate: d("2026-12-31")},
	}

	rows := Grid(projects, members, 2026)
	require.Len(t, rows, 2)

	// 2026-02-09 는 7주차: A 와 B 가 겹친다
	assert.ElementsMatch(t, []string{"프로젝트 A", "프로젝트 B"}, rows[0].Weeks[7])
	assert.Empty(t, rows[0].Weeks[50])
	assert.Empty(t, rows[1].Weeks[7], "다른 팀원의 프로젝트는 섞이지 않는다")
}

func TestGrid_IncludesWeek53(t *testing.T) {
	members := []model.TeamMember{{ID: "tm1", Name: "고재환"}}
	projects := []model.Project{
		// 2026-12-29~31 은 2026년 53주차
		{Name: "연말 프로젝트", Assignee: "고재환", StartDate: d("2026-12-29"), DueDate: d("2026-12-31")},
	}

	rows := Grid(projects, members, 2026)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"연말 프로젝트"}, rows[0].Weeks[53])
	assert.Empty(t, rows[0].Weeks[52])
}

func TestUpcomingMilestones(t *testing.T) {
	today := model.DateOf(time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC))
	milestones := []model.Milestone{
		{ID: 1, Name: "지난 것", Date: d("2026-03-01"), Status: model.StatusPlanned},
		{ID: 2, Name: "완료된 것", Date: d("2026-03-20"), Status: model.StatusDone},
		{ID: 3, Name: "30일 밖", Date: d("2026-05-01"), Status: model.StatusPlanned},
		{ID: 4, Name: "곧", Date: d("2026-03-15"), Status: model.StatusInProgress},
		{ID: 5, Name: "더 곧", Date: d("2026-03-12"), Status: model.StatusPending},
		{ID: 6, Name: "오늘", Date: d("2026-03-10"), Status: model.StatusPlanned},
	}

	got := UpcomingMilestones(milestones, today, 5)
	require.Len(t, got, 3)
	assert.Equal(t, []int{6, 5, 4}, []int{got[0].ID, got[1].ID, got[2].ID}, "날짜 오름차순")
}

func TestUpcomingMilestones_Limit(t *testing.T) {
	today := model.DateOf(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))
	var milestones []model.Milestone
	for i := 1; i <= 8; i++ {
		milestones = append(milestones, model.Milestone{ID: i, Date: today.AddDays(i), Status: model.StatusPlanned})
	}

	got := UpcomingMilestones(milestones, today, 5)
	assert.Len(t, got, 5)
}

func TestCountStatuses(t *testing.T) {
	counts := CountStatuses([]model.Status{
		model.StatusDone, model.StatusDone,
		model.StatusInProgress,
		model.StatusPlanned,
		model.StatusPending,
	})
	assert.Equal(t, StatusCounts{Total: 5, Planned: 1, InProgress: 1, Done: 2, Pending: 1}, counts)
}
