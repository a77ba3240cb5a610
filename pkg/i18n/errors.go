package i18n

import "errors"

var (
	ErrEmptyLanguage      = errors.New("i18n: language cannot be empty")
	ErrUnsupportedLocale  = errors.New("i18n: unsupported locale")
	ErrInvalidFile        = errors.New("i18n: invalid catalog file")
	ErrEmptyCatalog       = errors.New("i18n: catalog has no messages")
	ErrInvalidMessage     = errors.New("i18n: invalid message")
	ErrInvalidPattern     = errors.New("i18n: invalid pattern")
	ErrUnresolvedArgument = errors.New("i18n: unresolved argument")
	ErrInvalidPluralCount = errors.New("i18n: argument cannot select a plural form")
	ErrLockPoisoned       = errors.New("i18n: catalog lock poisoned")
	ErrCatalogUnavailable = errors.New("i18n: catalog unavailable")
)
