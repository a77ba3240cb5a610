package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// decoders maps a catalog file extension to its decoder.
var decoders = map[string]func([]byte, any) error{
	".toml": toml.Unmarshal,
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".json": json.Unmarshal,
}

// catalogExtensions is the lookup order used by LoadCatalogFS.
var catalogExtensions = []string{".toml", ".yaml", ".yml", ".json"}

// LoadCatalogFS loads the catalog of locale from the root of fsys.
// The file is named after the locale id, e.g. "en-US.toml"; TOML, YAML and
// JSON files are tried in that order.
//
// Example structure:
//
//	locales/en-US.toml
//
//	sub, _ := fs.Sub(localesFS, "locales")
//	catalog, err := i18n.LoadCatalogFS(sub, i18n.English)
func LoadCatalogFS(fsys fs.FS, locale Locale) (*Catalog, error) {
	if locale.ID() == "" {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLocale, int(locale))
	}

	for _, ext := range catalogExtensions {
		filePath := locale.ID() + ext
		data, err := fs.ReadFile(fsys, filePath)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", filePath, err)
		}
		return ParseCatalog(locale, filePath, data)
	}

	return nil, fmt.Errorf("%w: no catalog for %s", ErrInvalidFile, locale.ID())
}

// ParseCatalog decodes catalog data and builds a Catalog. The decoder is
// chosen from the extension of name (.toml, .yaml, .yml or .json).
func ParseCatalog(locale Locale, name string, data []byte) (*Catalog, error) {
	ext := strings.ToLower(path.Ext(name))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidFile, ext)
	}

	var raw map[string]any
	if err := decode(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
	}

	catalog, err := NewCatalog(locale, raw)
	if err != nil {
		return nil, fmt.Errorf("building catalog from %q: %w", name, err)
	}
	return catalog, nil
}
