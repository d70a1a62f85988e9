package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vAhyThe/words/internal/metrics"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())

	health := NewHealthController(cfg.HealthChecks, cfg.Version)
	words := NewWordsController(cfg.Words, cfg.TaskQueue, cfg.DefaultBatchSize, cfg.DefaultLanguage, cfg.MaxCount)
	setup := NewSetupController(cfg.Seeder, cfg.DefaultTargetCount, cfg.DefaultLanguage)
	languages := NewLanguagesController(cfg.Preferences, cfg.DefaultLanguage)

	// Service endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	// First-run setup
	api.GET("/setup/status", setup.SetupStatus)
	api.POST("/setup", setup.Setup)

	// Word list
	api.GET("/words", words.ListWords)
	api.POST("/words", words.AddWord)
	api.DELETE("/words", words.ClearWords)
	api.POST("/words/more", words.AppendWords)
	api.GET("/words/:id", words.GetWord)
	api.PATCH("/words/:id", words.UpdateWord)
	api.DELETE("/words/:id", words.DeleteWord)
	api.POST("/words/:id/reorder", words.ReorderWord)

	// Languages and translations
	api.GET("/languages", languages.ListLanguages)
	api.GET("/i18n/:lang", languages.Translate)
	api.GET("/preferences/language", languages.GetLanguage)
	api.PUT("/preferences/language", languages.SetLanguage)

	// Background tasks, only when the task queue is enabled
	if cfg.TaskQueue != nil {
		tasksController := NewTasksController(cfg.TaskQueue)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
	}

	return router
}
