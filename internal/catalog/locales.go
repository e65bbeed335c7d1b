package catalog

import (
	"golang.org/x/text/language"

	"structon/generator/internal/domain"
)

// DefaultLocale is the x-default target for hreflang alternates.
const DefaultLocale = "be-nl"

// locales is the closed set of supported locales, in emission order.
var locales = []domain.Locale{
	{Code: "be-nl", Tag: language.MustParse("nl-BE")},
	{Code: "nl-nl", Tag: language.MustParse("nl-NL")},
	{Code: "be-fr", Tag: language.MustParse("fr-BE")},
	{Code: "de-de", Tag: language.MustParse("de-DE")},
}
