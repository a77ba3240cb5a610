package lang

import "github.com/savevault/lang/pkg/domain"

func (t *Translator) BackupTargetLabel() string   { return t.translate("field-backup-target") }
func (t *Translator) BackupMergeLabel() string    { return t.translate("toggle-backup-merge") }
func (t *Translator) RestoreSourceLabel() string  { return t.translate("field-restore-source") }
func (t *Translator) CustomFilesLabel() string    { return t.translate("field-custom-files") }
func (t *Translator) CustomRegistryLabel() string { return t.translate("field-custom-registry") }
func (t *Translator) SearchLabel() string         { return t.translate("field-search") }
func (t *Translator) SortLabel() string           { return t.translate("field-sort") }
func (t *Translator) IgnoredItemsLabel() string   { return t.translate("field-backup-excluded-items") }
func (t *Translator) FullRetention() string       { return t.translate("field-retention-full") }
func (t *Translator) DifferentialRetention() string {
	return t.translate("field-retention-differential")
}

func (t *Translator) RedirectSourcePlaceholder() string {
	return t.translate("field-redirect-source.placeholder")
}

func (t *Translator) RedirectTargetPlaceholder() string {
	return t.translate("field-redirect-target.placeholder")
}

func (t *Translator) CustomGameNamePlaceholder() string {
	return t.translate("field-custom-game-name.placeholder")
}

func (t *Translator) SearchGameNamePlaceholder() string {
	return t.translate("field-search-game-name.placeholder")
}

func (t *Translator) ExplanationForExcludeOtherOSData() string {
	return t.translate("explanation-for-exclude-other-os-data")
}

func (t *Translator) ExplanationForExcludeStoreScreenshots() string {
	return t.translate("explanation-for-exclude-store-screenshots")
}

// Store returns the display name of a store.
func (t *Translator) Store(store domain.Store) string {
	switch store {
	case domain.StoreEpic:
		return t.translate("store-epic")
	case domain.StoreGog:
		return t.translate("store-gog")
	case domain.StoreGogGalaxy:
		return t.translate("store-gog-galaxy")
	case domain.StoreMicrosoft:
		return t.translate("store-microsoft")
	case domain.StoreOrigin:
		return t.translate("store-origin")
	case domain.StorePrime:
		return t.translate("store-prime")
	case domain.StoreSteam:
		return t.translate("store-steam")
	case domain.StoreUplay:
		return t.translate("store-uplay")
	case domain.StoreOtherHome:
		return t.translate("store-other-home")
	case domain.StoreOtherWine:
		return t.translate("store-other-wine")
	default:
		return t.translate("store-other")
	}
}

// SortKey returns the display name of a sort key.
func (t *Translator) SortKey(key domain.SortKey) string {
	if key == domain.SortSize {
		return t.translate("sort-size")
	}
	return t.translate("sort-name")
}

func (t *Translator) SortReversed() string {
	return t.translate("sort-reversed")
}
