package lang

import (
	"io/fs"
	"log/slog"

	"github.com/savevault/lang/pkg/i18n"
)

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used for catalog loading and degraded lookups.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithLocale selects the catalog to load.
// Defaults to i18n.DefaultLocale.
func WithLocale(l i18n.Locale) Option {
	return func(t *Translator) {
		t.locale = l
	}
}

// WithCatalogFS loads the catalog from fsys instead of the embedded one.
// The file is looked up at the root of fsys, e.g. "en-US.toml".
func WithCatalogFS(fsys fs.FS) Option {
	return func(t *Translator) {
		if fsys != nil {
			t.catalogFS = fsys
		}
	}
}
