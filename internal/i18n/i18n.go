// Package i18n resolves interface strings by dot-separated key path.
package i18n

import (
	"regexp"
	"strings"
)

// FallbackLanguage is consulted when a key is missing in the requested language.
const FallbackLanguage = "en"

// Catalog is a tree of translations. Leaves are strings, inner nodes are
// nested Catalogs.
type Catalog map[string]any

// Language is an interface language offered to users.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var catalogs = map[string]Catalog{
	"en": english,
	"de": german,
	"cs": czech,
}

var languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "de", Name: "Deutsch"},
	{Code: "cs", Name: "Čeština"},
}

var placeholder = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Languages lists the interface languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// IsSupported reports whether a catalog exists for code.
func IsSupported(code string) bool {
	_, ok := catalogs[code]
	return ok
}

// T translates key into lang. A key missing in lang is looked up in the
// fallback language; a key missing there too is returned unchanged.
// {{name}} placeholders are replaced from params; placeholders without a
// non-empty param are kept.
func T(lang, key string, params map[string]string) string {
	text, ok := lookup(catalogs[lang], key)
	if !ok {
		text, ok = lookup(catalogs[FallbackLanguage], key)
		if !ok {
			return key
		}
	}
	return interpolate(text, params)
}

// lookup walks key through catalog. Only string leaves resolve.
func lookup(catalog Catalog, key string) (string, bool) {
	if catalog == nil || key == "" {
		return "", false
	}

	var node any = catalog
	for _, part := range strings.Split(key, ".") {
		branch, ok := node.(Catalog)
		if !ok {
			return "", false
		}
		node, ok = branch[part]
		if !ok {
			return "", false
		}
	}

	text, ok := node.(string)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

func interpolate(text string, params map[string]string) string {
	if len(params) == 0 {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-2]
		if value := params[name]; value != "" {
			return value
		}
		return match
	})
}
