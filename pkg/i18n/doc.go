// Package i18n resolves localized messages from a compiled catalog and renders
// them as clean, human-readable text.
//
// A catalog maps message ids to definitions. Each definition has an optional
// default pattern and any number of named attributes. Patterns are Go
// text/template bodies evaluated against named arguments; plural patterns pick
// a form by the locale's CLDR plural rules (github.com/nicksnyder/go-i18n).
//
// # Catalog Files
//
// Catalogs are TOML, YAML or JSON documents named after the locale:
//
//	app-name = "SaveVault"
//
//	cli-confirm-restoration = "Do you want to restore from {{.path}}?"
//
//	[cli-unable-to-request-confirmation]
//	value = "Unable to request confirmation."
//	winpty-workaround = "If you are using a Bash emulator (like Git Bash), try running winpty."
//
//	[processed-games]
//	value = { count = "totalGames", one = "{{.totalGames}} game", other = "{{.totalGames}} games" }
//
// Load one with LoadCatalogFS or ParseCatalog. Invalid catalogs are rejected
// at load time.
//
// # Resolving Messages
//
// A Resolver reads the catalog through a Registry, which builds it once and
// serializes formatting behind a single lock:
//
//	registry := i18n.NewRegistry(func() (*i18n.Catalog, error) {
//		return i18n.LoadCatalogFS(localesFS, i18n.English)
//	}, logger)
//	resolver := i18n.NewResolver(registry)
//
//	resolver.Resolve("cli-confirm-restoration", i18n.Args{"path": i18n.Str("/backups")})
//	// Output: "Do you want to restore from /backups?"
//
//	resolver.Resolve("cli-unable-to-request-confirmation.winpty-workaround", nil)
//	// Output: "If you are using a Bash emulator (like Git Bash), try running winpty."
//
// Resolution never fails. A missing message, attribute or default value
// yields a diagnostic string such as "i18n-no-message=<id>". Lookup returns
// the same outcome as a Result for callers that need to detect degradation.
//
// # Normalization
//
// Every resolved message passes through Normalize, so catalog text may be
// wrapped by hand: single line breaks between words become spaces, runs of
// spaces collapse, and blank-line paragraph breaks are kept as exactly one
// blank line.
//
// # Sizes and Numbers
//
// LocaleFormat renders numeric arguments with the locale's grouping
// ("1,234") and byte counts in binary units:
//
//	i18n.AdjustedSize(1536)  // "1.50 KiB"
package i18n
