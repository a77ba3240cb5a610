package lang

import (
	"strings"

	"github.com/savevault/lang/pkg/domain"
)

func (t *Translator) NoRootsAreConfigured() string {
	return t.translate("no-roots-are-configured")
}

func (t *Translator) NoMissingRoots() string {
	return t.translate("no-missing-roots")
}

// ConfirmAddMissingRoots asks to add roots, listing one "[<store>] <path>"
// line per root after a blank line.
func (t *Translator) ConfirmAddMissingRoots(roots []domain.RootsConfig) string {
	var b strings.Builder
	b.WriteString(t.translate("confirm-add-missing-roots"))
	b.WriteString("\n")
	for _, root := range roots {
		b.WriteString("\n[")
		b.WriteString(t.Store(root.Store))
		b.WriteString("] ")
		b.WriteString(root.Path.Render())
	}
	return b.String()
}
