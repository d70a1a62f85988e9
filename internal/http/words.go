package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vAhyThe/words/internal/tasks"
	"github.com/vAhyThe/words/internal/wordlist"
)

type WordsController struct {
	store            WordStore
	queue            TaskQueue
	defaultBatchSize int
	defaultLanguage  string
	maxCount         int
}

func NewWordsController(store WordStore, queue TaskQueue, defaultBatchSize int, defaultLanguage string, maxCount int) *WordsController {
	return &WordsController{
		store:            store,
		queue:            queue,
		defaultBatchSize: defaultBatchSize,
		defaultLanguage:  defaultLanguage,
		maxCount:         maxCount,
	}
}

// WordTextRequest is the request body for adding or editing a word.
type WordTextRequest struct {
	Text string `json:"text"`
}

// ReorderRequest is the request body for moving a word.
type ReorderRequest struct {
	Position *int `json:"position" binding:"required"`
}

// AppendRequest is the request body for loading more words.
type AppendRequest struct {
	BatchSize int    `json:"batch_size"`
	Language  string `json:"language"`
	Async     bool   `json:"async"`
}

// ListWords returns the word list in display order. With q it returns the
// matching words, otherwise a window selected by offset and limit
// (limit 0 returns everything after offset).
// GET /api/words
func (wc *WordsController) ListWords(c *gin.Context) {
	offset, ok := parseQueryInt(c, "offset", 0)
	if !ok {
		return
	}
	limit, ok := parseQueryInt(c, "limit", 0)
	if !ok {
		return
	}

	if query := c.Query("q"); query != "" {
		matches := wc.store.Search(query)
		c.JSON(http.StatusOK, PaginatedResponse{
			Data:  matches,
			Total: len(matches),
		})
		return
	}

	words, total := wc.store.Page(offset, limit)
	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    words,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(words) < total,
	})
}

// GetWord returns a single word.
// GET /api/words/:id
func (wc *WordsController) GetWord(c *gin.Context) {
	word, ok := wc.store.Get(c.Param("id"))
	if !ok {
		respondNotFound(c, "word")
		return
	}
	c.JSON(http.StatusOK, word)
}

// AddWord appends a manually entered word.
// POST /api/words
func (wc *WordsController) AddWord(c *gin.Context) {
	var req WordTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	word, err := wc.store.AddWord(req.Text)
	if err != nil {
		respondWordError(c, err, "add word")
		return
	}
	respondCreated(c, word)
}

// UpdateWord replaces the text of a word.
// PATCH /api/words/:id
func (wc *WordsController) UpdateWord(c *gin.Context) {
	var req WordTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	word, err := wc.store.UpdateWord(c.Param("id"), req.Text)
	if err != nil {
		respondWordError(c, err, "update word")
		return
	}
	c.JSON(http.StatusOK, word)
}

// DeleteWord removes a word. Deleting an unknown id succeeds.
// DELETE /api/words/:id
func (wc *WordsController) DeleteWord(c *gin.Context) {
	deleted := wc.store.DeleteWord(c.Param("id"))
	respondSuccess(c, "word deleted", gin.H{"deleted": deleted})
}

// ReorderWord moves a word to a new position and returns the full list.
// POST /api/words/:id/reorder
func (wc *WordsController) ReorderWord(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "position is required")
		return
	}

	words, err := wc.store.Reorder(c.Param("id"), *req.Position)
	if err != nil {
		respondWordError(c, err, "reorder word")
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": words})
}

// AppendWords generates another batch of words. With async set and a task
// queue available the batch is generated in the background.
// POST /api/words/more
func (wc *WordsController) AppendWords(c *gin.Context) {
	var req AppendRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}
	}
	if req.BatchSize == 0 {
		req.BatchSize = wc.defaultBatchSize
	}
	if strings.TrimSpace(req.Language) == "" {
		req.Language = wc.defaultLanguage
	}

	if req.Async && wc.queue != nil {
		// Queued batches are validated here; the worker has no caller to report to.
		if req.BatchSize <= 0 || (wc.maxCount > 0 && req.BatchSize > wc.maxCount) {
			respondWordError(c, wordlist.ErrInvalidCount, "append words")
			return
		}
		taskID, err := wc.queue.Enqueue(c.Request.Context(), tasks.AppendWordsTask{
			BatchSize: req.BatchSize,
			Language:  req.Language,
		})
		if err != nil {
			respondInternalError(c, err, "enqueue append words")
			return
		}
		respondAccepted(c, "task enqueued", gin.H{"task_id": taskID})
		return
	}

	added, err := wc.store.AppendMore(req.BatchSize, req.Language)
	if err != nil {
		respondWordError(c, err, "append words")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"added": added,
		"total": wc.store.Count(),
	})
}

// ClearWords removes the whole word list.
// DELETE /api/words
func (wc *WordsController) ClearWords(c *gin.Context) {
	wc.store.ClearAll()
	respondSuccess(c, "all words removed", nil)
}
