package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseLanguageIsComplete(t *testing.T) {
	store := NewStore()
	for _, key := range store.EventKeys() {
		tpl, ok := store.Resolve(key, "en")
		require.True(t, ok, "missing base-language entry for %q", key)
		assert.NotEmpty(t, tpl.Subject, "%s: empty subject", key)
		assert.NotEmpty(t, tpl.Text, "%s: empty text body", key)
		assert.NotEmpty(t, tpl.SMS, "%s: empty sms skeleton", key)
	}
}

func TestResolveFallsBackToBaseLanguage(t *testing.T) {
	store := NewStore()

	// Every existing key resolves for every supported language.
	for _, key := range store.EventKeys() {
		for _, lang := range store.Languages() {
			_, ok := store.Resolve(key, lang)
			assert.True(t, ok, "resolve(%s, %s)", key, lang)
		}
	}

	// Arabic has no "closed" entry; the fallback serves the English one.
	require.False(t, store.HasExact("closed", "ar"))
	tpl, ok := store.Resolve("closed", "ar")
	require.True(t, ok)
	assert.Equal(t, "en", tpl.Language)

	// An unsupported language code resolves to the base-language template.
	tpl, ok = store.Resolve("received", "de")
	require.True(t, ok)
	assert.Equal(t, "en", tpl.Language)
}

func TestResolveUnknownEvent(t *testing.T) {
	store := NewStore()
	_, ok := store.Resolve("vanished", "en")
	assert.False(t, ok)
	assert.False(t, store.HasEvent("vanished"))
	assert.True(t, store.HasEvent("received"))
}

func TestLanguageSpecificEntriesWin(t *testing.T) {
	store := NewStore()
	tpl, ok := store.Resolve("received", "fr")
	require.True(t, ok)
	assert.Equal(t, "fr", tpl.Language)
	assert.Contains(t, tpl.SMS, "{name}")
	assert.Contains(t, tpl.SMS, "{ticketId}")
}

func TestCatalogMetadataMatchesKeys(t *testing.T) {
	store := NewStore()
	assert.Equal(t, []string{"ar", "en", "fr"}, store.Languages())
	assert.Contains(t, store.EventKeys(), "trip_remaining_time")
	assert.Contains(t, store.EventKeys(), "escalated")

	// Data files carry consistent key/language metadata.
	for lang, entries := range map[string]map[string]Template{
		"en": englishTemplates, "fr": frenchTemplates, "ar": arabicTemplates,
	} {
		for key, tpl := range entries {
			assert.Equal(t, key, tpl.EventKey)
			assert.Equal(t, lang, tpl.Language)
			assert.False(t, strings.Contains(tpl.SMS, "\n"), "%s/%s: sms skeleton spans lines", lang, key)
		}
	}
}
