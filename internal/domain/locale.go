package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one supported language/region combination. Each locale owns a URL
// subtree ({code}/...) and a label bundle kept in the catalog store.
type Locale struct {
	Code string       // URL segment, e.g. "be-nl"
	Tag  language.Tag // BCP 47 tag used for hreflang, e.g. nl-BE
}

// Hreflang returns the value emitted in hreflang attributes.
func (l Locale) Hreflang() string {
	return l.Tag.String()
}

// HTMLLang returns the value for the <html lang> attribute. The generated
// pages historically use underscores here.
func (l Locale) HTMLLang() string {
	return strings.ReplaceAll(l.Code, "-", "_")
}
