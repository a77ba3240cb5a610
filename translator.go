package lang

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/savevault/lang/pkg/domain"
	"github.com/savevault/lang/pkg/i18n"
	"github.com/savevault/lang/pkg/logger"
)

// Argument names shared by several messages.
const (
	argPath           = "path"
	argPathAction     = "pathAction"
	argProcessedGames = "processedGames"
	argProcessedSize  = "processedSize"
	argTotalGames     = "totalGames"
	argTotalSize      = "totalSize"
)

var ErrCatalogLoad = errors.New("lang: failed to load message catalog")

// Translator renders user-facing text from the message catalog.
// A Translator is safe for concurrent use.
type Translator struct {
	logger    *slog.Logger
	catalogFS fs.FS
	locale    i18n.Locale

	registry *i18n.Registry
	resolver *i18n.Resolver
	format   *i18n.LocaleFormat
}

var _ domain.ErrorVisitor = (*Translator)(nil)

// New creates a Translator and loads its catalog.
// A catalog that cannot be loaded is the only error New returns; the
// Translator cannot produce any text without it.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{
		logger:    logger.NewNope(),
		catalogFS: Locales(),
		locale:    i18n.DefaultLocale,
	}
	for _, opt := range opts {
		opt(t)
	}

	fsys, locale := t.catalogFS, t.locale
	t.registry = i18n.NewRegistry(func() (*i18n.Catalog, error) {
		return i18n.LoadCatalogFS(fsys, locale)
	}, t.logger)

	if _, err := t.registry.Catalog(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogLoad, err)
	}

	t.format = t.locale.Format()
	t.resolver = i18n.NewResolver(t.registry,
		i18n.WithFormatter(i18n.NewFormatter(t.format)),
		i18n.WithLogger(t.logger),
	)

	return t, nil
}

var (
	defaultOnce       sync.Once
	defaultTranslator *Translator
)

// Default returns the process-wide Translator for the embedded catalog,
// creating it on first use. It panics if the embedded catalog is invalid.
func Default() *Translator {
	defaultOnce.Do(func() {
		t, err := New()
		if err != nil {
			panic(err)
		}
		defaultTranslator = t
	})
	return defaultTranslator
}

// Locale returns the locale of the loaded catalog.
func (t *Translator) Locale() i18n.Locale {
	return t.locale
}

// Keys returns every resolvable message and attribute key of the catalog.
func (t *Translator) Keys() []string {
	c, err := t.registry.Catalog()
	if err != nil {
		return nil
	}
	return c.Keys()
}

// Lookup resolves a raw catalog key and reports whether it degraded.
func (t *Translator) Lookup(id string, args i18n.Args) i18n.Result {
	return t.resolver.Lookup(id, args)
}

func (t *Translator) translate(id string) string {
	return t.resolver.Resolve(id, nil)
}

func (t *Translator) translateArgs(id string, args i18n.Args) string {
	return t.resolver.Resolve(id, args)
}

func pathArgs(p domain.StrictPath) i18n.Args {
	return i18n.Args{argPath: i18n.Str(p.Render())}
}
