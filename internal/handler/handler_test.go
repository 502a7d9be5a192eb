package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pmdash/internal/kv"
	"pmdash/internal/model"
	"pmdash/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := kv.NewMemory()
	clock := func() time.Time {
		return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	}
	st, err := store.Open(context.Background(), mem, zap.NewNop(), store.WithClock(clock))
	require.NoError(t, err)

	log := zap.NewNop()
	r := gin.New()
	api := r.Group("/api")

	project := NewProjectHandler(st, log)
	api.GET("/projects", project.List)
	api.POST("/projects", project.Create)
	api.PUT("/projects/:id", project.Update)
	api.DELETE("/projects/:id", project.Delete)

	task := NewTaskHandler(st, log)
	api.GET("/tasks", task.List)
	api.POST("/tasks", task.Create)
	api.PUT("/tasks/:id", task.Update)
	api.DELETE("/tasks/:id", task.Delete)

	milestone := NewMilestoneHandler(st, log)
	api.GET("/milestones", milestone.List)
	api.POST("/milestones", milestone.Create)

	dashboard := NewDashboardHandler(st, log)
	api.GET("/snapshot", dashboard.Snapshot)
	api.GET("/orphans", dashboard.Orphans)
	api.GET("/dashboard", dashboard.Summary)
	api.GET("/schedule", dashboard.Schedule)

	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTask_DerivesMilestone(t *testing.T) {
	r, st := newTestRouter(t)

	created, err := st.AddMilestone(context.Background(), model.Milestone{Project: "프로젝트 G", Name: "신규 마일스톤"})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/tasks", map[string]any{
		"name":        "온보딩 점검",
		"project":     "프로젝트 G",
		"dueDate":     "2026-05-01",
		"status":      "완료",
		"milestoneId": created.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/milestones", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Milestones []model.Milestone `json:"milestones"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var found bool
	for _, m := range resp.Milestones {
		if m.ID == created.ID {
			found = true
			assert.Equal(t, model.StatusDone, m.Status)
		}
	}
	assert.True(t, found)
}

func TestCreateProject_DuplicateNameConflict(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{
		"name":    "프로젝트 A", // 시드에 이미 있다
		"dueDate": "2026-12-31",
		"status":  "계획",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateProject_SynthesizesStartDate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{
		"name":      "프로젝트 Z",
		"dueDate":   "2026-12-31",
		"status":    "계획",
		"auditType": "요구정의",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Project model.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Project.ID)
	require.False(t, resp.Project.StartDate.IsZero())
	assert.True(t, resp.Project.StartDate.Before(resp.Project.DueDate.Time))
}

func TestUpdateTask_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/tasks/9999", map[string]any{
		"name":   "없는 태스크",
		"status": "계획",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTask_BadID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/tasks/abc", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProject_ReportsOrphans(t *testing.T) {
	r, st := newTestRouter(t)

	p, ok := st.ProjectByName("프로젝트 E")
	require.True(t, ok)

	w := doJSON(t, r, http.MethodDelete, "/api/projects/"+p.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orphans", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var report store.OrphanReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Len(t, report.Tasks, 2, "프로젝트 E 의 태스크 14, 15")
	assert.Len(t, report.Milestones, 2, "프로젝트 E 의 마일스톤 9, 10")
}

func TestDashboardSummary(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects struct {
			Total int `json:"total"`
		} `json:"projects"`
		Milestones struct {
			Total int `json:"total"`
		} `json:"milestones"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Projects.Total)
	assert.Equal(t, 17, resp.Milestones.Total)
}

func TestSchedule_BadYear(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/schedule?year=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSnapshot_ContainsAllCollections(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/snapshot", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var snap store.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Len(t, snap.Projects, 8)
	assert.Len(t, snap.Milestones, 17)
	assert.Len(t, snap.Deliverables, 3)
	assert.Len(t, snap.Tasks, 15)
	assert.Len(t, snap.TeamMembers, 9)
}
