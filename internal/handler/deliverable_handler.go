package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pmdash/internal/model"
	"pmdash/internal/store"
)

type DeliverableHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewDeliverableHandler(s *store.Store, logger *zap.Logger) *DeliverableHandler {
	return &DeliverableHandler{store: s, logger: logger}
}

func (h *DeliverableHandler) List(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"deliverables": snap.Deliverables})
}

func (h *DeliverableHandler) Create(c *gin.Context) {
	var d model.Deliverable
	if err := c.ShouldBindJSON(&d); err != nil {
		h.logger.Warn("Create deliverable: invalid body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deliverable"})
		return
	}

	created, err := h.store.AddDeliverable(c.Request.Context(), d)
	if err != nil {
		h.logger.Error("Create deliverable: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create deliverable"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"deliverable": created})
}

func (h *DeliverableHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var d model.Deliverable
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deliverable"})
		return
	}

	updated, err := h.store.UpdateDeliverable(c.Request.Context(), id, d)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "deliverable not found"})
		return
	}
	if err != nil {
		h.logger.Error("Update deliverable: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update deliverable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deliverable": updated})
}

func (h *DeliverableHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	err := h.store.DeleteDeliverable(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "deliverable not found"})
		return
	}
	if err != nil {
		h.logger.Error("Delete deliverable: failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete deliverable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
