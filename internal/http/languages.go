package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vAhyThe/words/internal/i18n"
	"github.com/vAhyThe/words/internal/wordsource"
)

type LanguagesController struct {
	preferences     PreferenceStore
	defaultLanguage string
}

func NewLanguagesController(preferences PreferenceStore, defaultLanguage string) *LanguagesController {
	return &LanguagesController{
		preferences:     preferences,
		defaultLanguage: defaultLanguage,
	}
}

// LanguageRequest is the request body for changing the interface language.
type LanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

// WordLanguage describes one word list language.
type WordLanguage struct {
	wordsource.Language
	WordCount int `json:"word_count"`
}

// ListLanguages returns the word list languages and the interface languages.
// GET /api/languages
func (lc *LanguagesController) ListLanguages(c *gin.Context) {
	var wordLanguages []WordLanguage
	for _, l := range wordsource.Languages() {
		wordLanguages = append(wordLanguages, WordLanguage{
			Language:  l,
			WordCount: len(wordsource.Words(l.Code)),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"word_languages":        wordLanguages,
		"interface_languages":   i18n.Languages(),
		"default_word_language": lc.defaultLanguage,
	})
}

// Translate resolves a translation key. Query parameters other than key are
// interpolated into the text.
// GET /api/i18n/:lang
func (lc *LanguagesController) Translate(c *gin.Context) {
	lang := c.Param("lang")
	key := c.Query("key")
	if key == "" {
		respondBadRequest(c, "key is required")
		return
	}

	params := make(map[string]string)
	for name, values := range c.Request.URL.Query() {
		if name == "key" || len(values) == 0 {
			continue
		}
		params[name] = values[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"lang": lang,
		"key":  key,
		"text": i18n.T(lang, key, params),
	})
}

// GetLanguage returns the stored interface language.
// GET /api/preferences/language
func (lc *LanguagesController) GetLanguage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"language": lc.preferences.LoadLanguage()})
}

// SetLanguage stores the interface language. Unsupported languages are
// rejected and the stored value is kept.
// PUT /api/preferences/language
func (lc *LanguagesController) SetLanguage(c *gin.Context) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "language is required")
		return
	}
	if !i18n.IsSupported(req.Language) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported language: " + req.Language, Code: "unsupported_language"})
		return
	}

	lc.preferences.SaveLanguage(req.Language)
	c.JSON(http.StatusOK, gin.H{"language": req.Language})
}
