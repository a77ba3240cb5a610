package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale selects which compiled catalog is loaded.
type Locale int

const (
	English Locale = iota
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = English

// Locales returns every locale with a compiled catalog.
func Locales() []Locale {
	return []Locale{English}
}

// ID returns the BCP 47 identifier of the locale, e.g. "en-US".
func (l Locale) ID() string {
	switch l {
	case English:
		return "en-US"
	default:
		return ""
	}
}

// Tag returns the language tag of the locale.
func (l Locale) Tag() language.Tag {
	return language.Make(l.ID())
}

// Format returns the number formatting conventions of the locale.
func (l Locale) Format() *LocaleFormat {
	switch l {
	case English:
		return FormatEnUS()
	default:
		return NewLocaleFormat()
	}
}

func (l Locale) String() string {
	return l.ID()
}

// ParseLocale maps a language identifier onto a supported locale.
// An exact tag match wins; otherwise a locale sharing the base language is used
// (e.g. "en" and "en-GB" resolve to English).
func ParseLocale(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyLanguage
	}

	tag, err := language.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %s", ErrUnsupportedLocale, s, err)
	}

	for _, l := range Locales() {
		if l.Tag().String() == tag.String() {
			return l, nil
		}
	}

	base, _ := tag.Base()
	for _, l := range Locales() {
		if lb, _ := l.Tag().Base(); lb == base {
			return l, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedLocale, s)
}
