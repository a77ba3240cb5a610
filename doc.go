// Package lang renders the user-facing text of SaveVault.
//
// Every string the backup tool shows (button labels, error messages, operation
// summaries, confirmation prompts) comes from one embedded message catalog
// and is produced by a method on [Translator]. Callers never build message ids
// or argument sets themselves.
//
// # Quick Start
//
//	t, err := lang.New(lang.WithLogger(log))
//	if err != nil {
//	    return err // the catalog could not be loaded
//	}
//
//	fmt.Println(t.WindowTitle())
//	fmt.Println(t.ModalConfirmBackup(domain.NewStrictPath("/backups"), true, false))
//
// [Default] returns a process-wide Translator built on first use and panics if
// the embedded catalog is broken.
//
// # Degraded Output
//
// Translation never fails. A missing message, attribute or argument renders
// as visible diagnostic text such as "i18n-no-message=button-backup" and is
// logged at WARN. Use [Translator.Lookup] to detect degradation
// programmatically.
//
// # Errors
//
// [Translator.HandleError] phrases every [domain.Error]. Translator implements
// [domain.ErrorVisitor], so adding an error kind without its phrasing does not
// compile.
//
// # Window Title
//
// The version shown in the window title is set at link time:
//
//	go build -ldflags "-X github.com/savevault/lang.Version=1.2.0 -X github.com/savevault/lang.Variant=portable"
package lang
