// Package i18n resolves display languages and renders UI strings. It
// never touches session data.
package i18n

import (
	"fmt"
	"maps"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/playperu/aula/internal/aula"
)

const (
	Castilian aula.Language = "CAST"
	Catalan   aula.Language = "CAT"
	English   aula.Language = "ENG"

	// Default is used when nothing else matches.
	Default = Castilian
)

// Supported lists languages in selector order.
var Supported = []aula.Language{Castilian, Catalan, English}

var tags = map[aula.Language]language.Tag{
	Castilian: language.Spanish,
	Catalan:   language.Catalan,
	English:   language.English,
}

var (
	matcher = language.NewMatcher([]language.Tag{language.Spanish, language.Catalan, language.English})
	builder = mustBuildCatalog()
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(tags[Default]))
	for lang, table := range messages {
		for key, msg := range table {
			if err := b.SetString(tags[lang], key, msg); err != nil {
				panic(fmt.Sprintf("i18n: registering %s/%s: %v", lang, key, err))
			}
		}
	}
	return b
}

// Tag returns the BCP 47 tag for lang, or the default language's tag.
func Tag(lang aula.Language) language.Tag {
	if t, ok := tags[lang]; ok {
		return t
	}
	return tags[Default]
}

// Parse accepts a selector code (CAST, cat, ENG) or a BCP 47 tag
// (es-ES, ca, en-GB).
func Parse(value string) (aula.Language, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	for _, lang := range Supported {
		if strings.EqualFold(value, string(lang)) {
			return lang, true
		}
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return Supported[idx], true
}

// Negotiate picks the best supported language for an Accept-Language
// header value.
func Negotiate(acceptLanguage string) aula.Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Printer returns a message printer for lang backed by the UI catalog.
func Printer(lang aula.Language) *message.Printer {
	return message.NewPrinter(Tag(lang), message.Catalog(builder))
}

// ImageCounter renders the 1-based "Image N of M" label.
func ImageCounter(lang aula.Language, current, total int) string {
	return Printer(lang).Sprintf(message.Key("imageCounter", "Image %d of %d"), current, total)
}

// PhaseName renders the display name of the n-th phase (1-based).
func PhaseName(lang aula.Language, n int) string {
	return Printer(lang).Sprintf(message.Key("phaseName", "Phase %d"), n)
}

// Strings returns a copy of the raw message table for lang.
func Strings(lang aula.Language) map[string]string {
	table, ok := messages[lang]
	if !ok {
		table = messages[Default]
	}
	return maps.Clone(table)
}
