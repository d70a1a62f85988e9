package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type SetupController struct {
	seeder             WordSeeder
	defaultTargetCount int
	defaultLanguage    string
}

func NewSetupController(seeder WordSeeder, defaultTargetCount int, defaultLanguage string) *SetupController {
	return &SetupController{
		seeder:             seeder,
		defaultTargetCount: defaultTargetCount,
		defaultLanguage:    defaultLanguage,
	}
}

// SetupRequest is the request body for first-run seeding.
type SetupRequest struct {
	TargetCount int    `json:"target_count"`
	Language    string `json:"language"`
}

// SetupStatus reports whether a word list already exists.
// GET /api/setup/status
func (sc *SetupController) SetupStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"has_existing_data": sc.seeder.HasExistingData(),
		"count":             sc.seeder.Count(),
	})
}

// Setup seeds the word list. An existing list is never replaced.
// POST /api/setup
func (sc *SetupController) Setup(c *gin.Context) {
	var req SetupRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
	}
	if req.TargetCount == 0 {
		req.TargetCount = sc.defaultTargetCount
	}
	if strings.TrimSpace(req.Language) == "" {
		req.Language = sc.defaultLanguage
	}

	words, generated, err := sc.seeder.Seed(req.TargetCount, req.Language)
	if err != nil {
		respondWordError(c, err, "setup")
		return
	}
	if !generated {
		respondError(c, http.StatusConflict, "word list already exists")
		return
	}

	respondCreated(c, gin.H{
		"count": len(words),
		"words": words,
	})
}
