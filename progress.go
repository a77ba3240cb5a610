package lang

import (
	"github.com/savevault/lang/pkg/domain"
	"github.com/savevault/lang/pkg/i18n"
)

// AdjustedSize renders bytes in the largest fitting binary unit, e.g. "1.23 GiB".
func (t *Translator) AdjustedSize(bytes uint64) string {
	return t.format.AdjustedSize(bytes)
}

// ProcessedGames renders the game count, or "<processed> of <total>" while
// some games are pending.
func (t *Translator) ProcessedGames(status domain.OperationStatus) string {
	args := i18n.Args{
		argTotalGames:     i18n.Int(int64(status.TotalGames)),
		argProcessedGames: i18n.Int(int64(status.ProcessedGames)),
	}

	if status.ProcessedAllGames() {
		return t.translateArgs("processed-games", args)
	}
	return t.translateArgs("processed-games-subset", args)
}

// ProcessedBytes renders the total size, or "<processed> of <total>" while
// some bytes are pending.
func (t *Translator) ProcessedBytes(status domain.OperationStatus) string {
	if status.ProcessedAllBytes() {
		return t.AdjustedSize(status.TotalBytes)
	}

	return t.translateArgs("processed-size-subset", i18n.Args{
		argTotalSize:     i18n.Str(t.AdjustedSize(status.TotalBytes)),
		argProcessedSize: i18n.Str(t.AdjustedSize(status.ProcessedBytes)),
	})
}

// ProcessedSubset renders "<processed> of <total>" for plain counts.
func (t *Translator) ProcessedSubset(total, processed uint64) string {
	return t.translateArgs("processed-size-subset", i18n.Args{
		argTotalSize:     i18n.Uint(total),
		argProcessedSize: i18n.Uint(processed),
	})
}

// ModalConfirmBackup asks before backing up into target. The phrasing depends
// on whether target exists and whether new data is merged into it.
func (t *Translator) ModalConfirmBackup(target domain.StrictPath, targetExists, merge bool) string {
	action := "create"
	switch {
	case targetExists && merge:
		action = "merge"
	case targetExists:
		action = "recreate"
	}

	args := pathArgs(target)
	args[argPathAction] = i18n.Str(action)
	return t.translateArgs("confirm-backup", args)
}

func (t *Translator) ModalConfirmRestore(source domain.StrictPath) string {
	return t.translateArgs("confirm-restore", pathArgs(source))
}
