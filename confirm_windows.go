//go:build windows

package lang

// Console prompts fail under mintty without winpty.
func (t *Translator) confirmationNote() string {
	return t.translate("cli-unable-to-request-confirmation.winpty-workaround")
}
