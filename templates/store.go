// Package templates holds the static message catalog: one entry per
// (event key, language) with the skeletons for both delivery channels.
// The catalog is assembled once at init and never mutated afterwards.
package templates

import (
	"sort"

	"github.com/Genocadio/nitifier/normalize"
)

// Template is one localized message skeleton. Placeholders use the {token}
// form and are substituted by the renderer. HTML is optional; when empty the
// renderer derives markup from Text.
type Template struct {
	EventKey string `json:"eventKey"`
	Language string `json:"language"`
	Subject  string `json:"subject"`
	Text     string `json:"text"`
	HTML     string `json:"html,omitempty"`
	SMS      string `json:"sms"`
}

// Store resolves templates with base-language fallback. It is immutable and
// safe for concurrent use.
type Store struct {
	byLanguage map[string]map[string]Template
	eventKeys  []string
	languages  []string
}

// NewStore builds the store from the static catalog. Every event key present
// in any language must have a complete base-language entry; the catalog data
// maintains that invariant by construction.
func NewStore() *Store {
	byLanguage := map[string]map[string]Template{
		normalize.LangEnglish: englishTemplates,
		normalize.LangFrench:  frenchTemplates,
		normalize.LangArabic:  arabicTemplates,
	}

	keySet := map[string]struct{}{}
	for _, entries := range byLanguage {
		for key := range entries {
			keySet[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	languages := make([]string, 0, len(byLanguage))
	for lang := range byLanguage {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	return &Store{byLanguage: byLanguage, eventKeys: keys, languages: languages}
}

// Resolve returns the template for (eventKey, language), falling back to the
// base language when the requested language has no entry. The second return
// is false only when the event key is unknown in every language.
func (s *Store) Resolve(eventKey, language string) (Template, bool) {
	if entries, ok := s.byLanguage[language]; ok {
		if tpl, ok := entries[eventKey]; ok {
			return tpl, true
		}
	}
	tpl, ok := s.byLanguage[normalize.LangEnglish][eventKey]
	return tpl, ok
}

// HasExact reports whether a language-specific entry exists, without
// fallback. The coordinator uses it to log fallback as an informational
// condition.
func (s *Store) HasExact(eventKey, language string) bool {
	entries, ok := s.byLanguage[language]
	if !ok {
		return false
	}
	_, ok = entries[eventKey]
	return ok
}

// HasEvent reports whether the event key exists in any language.
func (s *Store) HasEvent(eventKey string) bool {
	for _, entries := range s.byLanguage {
		if _, ok := entries[eventKey]; ok {
			return true
		}
	}
	return false
}

// EventKeys lists every known event key, sorted.
func (s *Store) EventKeys() []string {
	out := make([]string, len(s.eventKeys))
	copy(out, s.eventKeys)
	return out
}

// Languages lists every supported language code, sorted.
func (s *Store) Languages() []string {
	out := make([]string, len(s.languages))
	copy(out, s.languages)
	return out
}
