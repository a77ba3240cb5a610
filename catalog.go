package lang

import (
	"embed"
	"io/fs"

	"github.com/savevault/lang/pkg/i18n"
)

//go:embed locales/*.toml
var localesFS embed.FS

// Locales returns the embedded catalog files, one per locale at the root.
func Locales() fs.FS {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		panic(err) // unreachable: the directory is embedded
	}
	return sub
}

// LoadCatalog parses the embedded catalog of locale.
func LoadCatalog(locale i18n.Locale) (*i18n.Catalog, error) {
	return i18n.LoadCatalogFS(Locales(), locale)
}
