// Package normalize canonicalizes the free-form language hints and
// event-type strings that arrive on dispatch requests.
package normalize

import "strings"

const (
	LangEnglish = "en"
	LangFrench  = "fr"
	LangArabic  = "ar"
)

var languageAliases = map[string]string{
	"en":      LangEnglish,
	"eng":     LangEnglish,
	"english": LangEnglish,
	"fr":      LangFrench,
	"fra":     LangFrench,
	"fre":     LangFrench,
	"french":  LangFrench,
	"francais": LangFrench,
	"français": LangFrench,
	"ar":      LangArabic,
	"ara":     LangArabic,
	"arabic":  LangArabic,
	"arabe":   LangArabic,
	"العربية": LangArabic,
}

// Language maps a free-form hint to a supported language code. It is total:
// unrecognized or empty hints resolve to the base language (English).
func Language(hint string) string {
	if code, ok := languageAliases[strings.ToLower(strings.TrimSpace(hint))]; ok {
		return code
	}
	return LangEnglish
}

// EventKey canonicalizes a status or trip-notification-type string:
// lower-cased, with every run of hyphens, underscores and whitespace
// collapsed to a single underscore. "In-Progress", "in progress" and
// "IN__PROGRESS" all map to "in_progress".
func EventKey(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	parts := strings.FieldsFunc(lower, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '\t'
	})
	return strings.Join(parts, "_")
}
