package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pmdash/internal/model"
	"pmdash/internal/store"
)

type ProjectHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewProjectHandler(s *store.Store, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{store: s, logger: logger}
}

func (h *ProjectHandler) List(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"projects": snap.Projects})
}

// Create 프로젝트 생성. 이름 중복 검사는 스토어가 아니라 이 계층의 책임이다.
func (h *ProjectHandler) Create(c *gin.Context) {
	var p model.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		h.logger.Warn("Create project: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project"})
		return
	}
	if p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}
	if _, exists := h.store.ProjectByName(p.Name); exists {
		h.logger.Warn("Create project: duplicate name", zap.String("name", p.Name))
		c.JSON(http.StatusConflict, gin.H{"error": "project name already exists"})
		return
	}

	created, err := h.store.AddProject(c.Request.Context(), p)
	if err != nil {
		h.logger.Error("Create project: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"project": created})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var p model.Project
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project"})
		return
	}

	updated, err := h.store.UpdateProject(c.Request.Context(), id, p)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		h.logger.Error("Update project: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": updated})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	err := h.store.DeleteProject(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		h.logger.Error("Delete project: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
