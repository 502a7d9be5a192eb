package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pmdash/internal/model"
	"pmdash/internal/schedule"
	"pmdash/internal/store"
)

// DashboardHandler 요약/조회성 엔드포인트 모음: 전체 스냅샷, 고아 레코드,
// 대시보드 개요, 스케줄 그리드.
type DashboardHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewDashboardHandler(s *store.Store, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{store: s, logger: logger}
}

func (h *DashboardHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

func (h *DashboardHandler) Orphans(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Orphans())
}

// Summary 상태별 집계와 30일 내 다가오는 마일스톤 5개.
func (h *DashboardHandler) Summary(c *gin.Context) {
	snap := h.store.Snapshot()

	projectStatuses := make([]model.Status, len(snap.Projects))
	for i, p := range snap.Projects {
		projectStatuses[i] = p.Status
	}
	milestoneStatuses := make([]model.Status, len(snap.Milestones))
	for i, m := range snap.Milestones {
		milestoneStatuses[i] = m.Status
	}
	deliverableStatuses := make([]model.Status, len(snap.Deliverables))
	for i, d := range snap.Deliverables {
		deliverableStatuses[i] = d.Status
	}

	today := model.DateOf(time.Now())
	c.JSON(http.StatusOK, gin.H{
		"projects":           schedule.CountStatuses(projectStatuses),
		"milestones":         schedule.CountStatuses(milestoneStatuses),
		"deliverables":       schedule.CountStatuses(deliverableStatuses),
		"upcomingMilestones": schedule.UpcomingMilestones(snap.Milestones, today, 5),
	})
}

// Schedule 연간 주 단위 배치 그리드. year 쿼리가 없으면 올해.
func (h *DashboardHandler) Schedule(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}

	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"weeks": schedule.WeeksInYear(year),
		"rows":  schedule.Grid(snap.Projects, snap.TeamMembers, year),
	})
}
