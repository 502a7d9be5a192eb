package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pmdash/internal/model"
	"pmdash/internal/store"
)

type MemberHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewMemberHandler(s *store.Store, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{store: s, logger: logger}
}

func (h *MemberHandler) List(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"teamMembers": snap.TeamMembers})
}

func (h *MemberHandler) Create(c *gin.Context) {
	var m model.TeamMember
	if err := c.ShouldBindJSON(&m); err != nil {
		h.logger.Warn("Create member: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team member"})
		return
	}

	created, err := h.store.AddTeamMember(c.Request.Context(), m)
	if err != nil {
		h.logger.Error("Create member: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create team member"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"teamMember": created})
}

// Update 팀원 수정. 이름을 바꿔도 기존 assignee 참조에는 반영되지 않는다.
func (h *MemberHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var m model.TeamMember
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team member"})
		return
	}

	updated, err := h.store.UpdateTeamMember(c.Request.Context(), id, m)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
		return
	}
	if err != nil {
		h.logger.Error("Update member: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update team member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teamMember": updated})
}

func (h *MemberHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	err := h.store.DeleteTeamMember(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "team member not found"})
		return
	}
	if err != nil {
		h.logger.Error("Delete member: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete team member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
