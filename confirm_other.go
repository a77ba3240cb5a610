//go:build !windows

package lang

func (t *Translator) confirmationNote() string {
	return ""
}
