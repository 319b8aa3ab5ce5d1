// Package i18n resolves the user's locale and builds message printers over
// the embedded catalogs.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/guessgame/internal/platform/i18n/catalog"
)

var supportedTags = []language.Tag{
	language.MustParse(catalog.BaseLocale),
	language.MustParse("zh-CN"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return supportedTags[0]
}

// ResolveTag maps a user supplied locale (for example "zh", "zh-Hans-CN" or
// "en_GB") onto the closest supported tag. Blank or unparsable values
// resolve to Default.
func ResolveTag(value string) language.Tag {
	value = strings.ReplaceAll(strings.TrimSpace(value), "_", "-")
	if value == "" {
		return Default()
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	_, index, conf := tagMatcher.Match(parsed)
	if conf == language.No {
		return Default()
	}
	return supportedTags[index]
}

// Locale returns the catalog locale identifier for tag.
func Locale(tag language.Tag) string {
	return tag.String()
}

// Printer returns a message printer for the supplied tag. Touching
// catalog.Default guarantees the embedded messages are registered.
func Printer(tag language.Tag) *message.Printer {
	_ = catalog.Default()
	return message.NewPrinter(tag)
}
