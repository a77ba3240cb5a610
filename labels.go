package lang

import "github.com/savevault/lang/pkg/domain"

func label(text string) string {
	return "[" + text + "]"
}

func (t *Translator) LabelFailed() string     { return label(t.BadgeFailed()) }
func (t *Translator) LabelDuplicates() string { return label(t.BadgeDuplicates()) }
func (t *Translator) LabelDuplicated() string { return label(t.BadgeDuplicated()) }
func (t *Translator) LabelIgnored() string    { return label(t.BadgeIgnored()) }

func (t *Translator) BadgeFailed() string     { return t.translate("badge-failed") }
func (t *Translator) BadgeDuplicates() string { return t.translate("badge-duplicates") }
func (t *Translator) BadgeDuplicated() string { return t.translate("badge-duplicated") }
func (t *Translator) BadgeIgnored() string    { return t.translate("badge-ignored") }

func (t *Translator) BadgeRedirectedFrom(original domain.StrictPath) string {
	return t.translateArgs("badge-redirected-from", pathArgs(original))
}

func (t *Translator) BackupButton() string         { return t.translate("button-backup") }
func (t *Translator) PreviewButton() string        { return t.translate("button-preview") }
func (t *Translator) RestoreButton() string        { return t.translate("button-restore") }
func (t *Translator) NavBackupButton() string      { return t.translate("button-nav-backup") }
func (t *Translator) NavRestoreButton() string     { return t.translate("button-nav-restore") }
func (t *Translator) NavCustomGamesButton() string { return t.translate("button-nav-custom-games") }
func (t *Translator) NavOtherButton() string       { return t.translate("button-nav-other") }
func (t *Translator) AddRootButton() string        { return t.translate("button-add-root") }
func (t *Translator) FindRootsButton() string      { return t.translate("button-find-roots") }
func (t *Translator) AddRedirectButton() string    { return t.translate("button-add-redirect") }
func (t *Translator) AddGameButton() string        { return t.translate("button-add-game") }
func (t *Translator) ContinueButton() string       { return t.translate("button-continue") }
func (t *Translator) CancelButton() string         { return t.translate("button-cancel") }
func (t *Translator) CancellingButton() string     { return t.translate("button-cancelling") }
func (t *Translator) OkayButton() string           { return t.translate("button-okay") }
func (t *Translator) SelectAllButton() string      { return t.translate("button-select-all") }
func (t *Translator) DeselectAllButton() string    { return t.translate("button-deselect-all") }
func (t *Translator) EnableAllButton() string      { return t.translate("button-enable-all") }
func (t *Translator) DisableAllButton() string     { return t.translate("button-disable-all") }
