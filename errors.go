package lang

import (
	"strings"

	"github.com/savevault/lang/pkg/domain"
)

// HandleError returns the message shown to the user for err.
func (t *Translator) HandleError(err domain.Error) string {
	return err.Accept(t)
}

func (t *Translator) ConfigIsInvalid(why string) string {
	return t.translate("config-is-invalid") + "\n" + why
}

func (t *Translator) ManifestIsInvalid(why string) string {
	return t.translate("manifest-is-invalid") + "\n" + why
}

func (t *Translator) ManifestCannotBeUpdated() string {
	return t.translate("manifest-cannot-be-updated")
}

func (t *Translator) CliBackupTargetExists(path domain.StrictPath) string {
	return t.translateArgs("cli-backup-target-already-exists", pathArgs(path))
}

// CliUnrecognizedGames lists games as an indented bullet list below a header.
func (t *Translator) CliUnrecognizedGames(games []string) string {
	lines := make([]string, len(games))
	for i, game := range games {
		lines[i] = "  - " + game
	}
	return t.translate("cli-unrecognized-games") + "\n" + strings.Join(lines, "\n")
}

// CliUnableToRequestConfirmation appends a platform-specific hint, if any.
func (t *Translator) CliUnableToRequestConfirmation() string {
	return t.translate("cli-unable-to-request-confirmation") + " " + t.confirmationNote()
}

func (t *Translator) SomeEntriesFailed() string {
	return t.translate("some-entries-failed")
}

func (t *Translator) CannotPrepareBackupTarget(path domain.StrictPath) string {
	return t.translateArgs("cannot-prepare-backup-target", pathArgs(path))
}

func (t *Translator) RestorationSourceIsInvalid(path domain.StrictPath) string {
	return t.translateArgs("restoration-source-is-invalid", pathArgs(path))
}

func (t *Translator) RegistryIssue() string {
	return t.translate("registry-issue")
}

func (t *Translator) UnableToBrowseFileSystem() string {
	return t.translate("unable-to-browse-file-system")
}

func (t *Translator) UnableToOpenDir(path domain.StrictPath) string {
	return t.translate("unable-to-open-directory") + "\n\n" + path.Render()
}

func (t *Translator) UnableToOpenURL(url string) string {
	return t.translate("unable-to-open-url") + "\n\n" + url
}
