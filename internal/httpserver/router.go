package httpserver

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pmdash/internal/handler"
	"pmdash/internal/kv"
	"pmdash/pkg/metrics"
)

// Handlers 라우터에 연결되는 핸들러 묶음.
type Handlers struct {
	Project     *handler.ProjectHandler
	Milestone   *handler.MilestoneHandler
	Deliverable *handler.DeliverableHandler
	Task        *handler.TaskHandler
	Member      *handler.MemberHandler
	Dashboard   *handler.DashboardHandler
}

func NewRouter(h Handlers, logger *zap.Logger, kvs kv.Store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// 요청 로그 + 지연 메트릭
	r.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		logger.Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
			latency,
		)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := kvs.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "kv_not_ready", "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/projects", h.Project.List)
		api.POST("/projects", h.Project.Create)
		api.PUT("/projects/:id", h.Project.Update)
		api.DELETE("/projects/:id", h.Project.Delete)

		api.GET("/milestones", h.Milestone.List)
		api.POST("/milestones", h.Milestone.Create)
		api.PUT("/milestones/:id", h.Milestone.Update)
		api.DELETE("/milestones/:id", h.Milestone.Delete)

		api.GET("/deliverables", h.Deliverable.List)
		api.POST("/deliverables", h.Deliverable.Create)
		api.PUT("/deliverables/:id", h.Deliverable.Update)
		api.DELETE("/deliverables/:id", h.Deliverable.Delete)

		api.GET("/tasks", h.Task.List)
		api.POST("/tasks", h.Task.Create)
		api.PUT("/tasks/:id", h.Task.Update)
		api.DELETE("/tasks/:id", h.Task.Delete)

		api.GET("/team-members", h.Member.List)
		api.POST("/team-members", h.Member.Create)
		api.PUT("/team-members/:id", h.Member.Update)
		api.DELETE("/team-members/:id", h.Member.Delete)

		api.GET("/snapshot", h.Dashboard.Snapshot)
		api.GET("/orphans", h.Dashboard.Orphans)
		api.GET("/dashboard", h.Dashboard.Summary)
		api.GET("/schedule", h.Dashboard.Schedule)
	}

	return r
}
