package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pmdash/internal/model"
	"pmdash/internal/store"
)

type MilestoneHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewMilestoneHandler(s *store.Store, logger *zap.Logger) *MilestoneHandler {
	return &MilestoneHandler{store: s, logger: logger}
}

func (h *MilestoneHandler) List(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"milestones": snap.Milestones})
}

// Create 마일스톤 생성. 입력 status 는 받아들이지만 태스크가 변경되면
// 파생 엔진이 덮어쓴다.
func (h *MilestoneHandler) Create(c *gin.Context) {
	var m model.Milestone
	if err := c.ShouldBindJSON(&m); err != nil {
		h.logger.Warn("Create milestone: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid milestone"})
		return
	}

	created, err := h.store.AddMilestone(c.Request.Context(), m)
	if err != nil {
		h.logger.Error("Create milestone: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create milestone"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"milestone": created})
}

func (h *MilestoneHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid milestone id"})
		return
	}
	var m model.Milestone
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid milestone"})
		return
	}

	updated, err := h.store.UpdateMilestone(c.Request.Context(), id, m)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "milestone not found"})
		return
	}
	if err != nil {
		h.logger.Error("Update milestone: failed", zap.Int("milestone_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update milestone"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestone": updated})
}

func (h *MilestoneHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid milestone id"})
		return
	}

	err = h.store.DeleteMilestone(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "milestone not found"})
		return
	}
	if err != nil {
		h.logger.Error("Delete milestone: failed", zap.Int("milestone_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete milestone"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
