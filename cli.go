package lang

import (
	"fmt"
	"strings"

	"github.com/savevault/lang/pkg/domain"
	"github.com/savevault/lang/pkg/i18n"
)

func (t *Translator) CliConfirmRestoration(path domain.StrictPath) string {
	return t.translateArgs("cli-confirm-restoration", pathArgs(path))
}

// CliGameHeader renders "<name> [<size>]:" with ignored and duplicate labels
// before the colon when they apply.
func (t *Translator) CliGameHeader(name string, bytes uint64, decision domain.OperationStepDecision, duplicated bool) string {
	var labels []string
	if decision == domain.Ignored {
		labels = append(labels, t.LabelIgnored())
	}
	if duplicated {
		labels = append(labels, t.LabelDuplicates())
	}

	if len(labels) == 0 {
		return fmt.Sprintf("%s [%s]:", name, t.AdjustedSize(bytes))
	}
	return fmt.Sprintf("%s [%s] %s:", name, t.AdjustedSize(bytes), strings.Join(labels, " "))
}

// CliGameLineItem renders one backed up or restored entry as a bullet.
func (t *Translator) CliGameLineItem(item string, successful, ignored, duplicated bool) string {
	var parts []string
	if !successful {
		parts = append(parts, t.LabelFailed())
	}
	if ignored {
		parts = append(parts, t.LabelIgnored())
	}
	if duplicated {
		parts = append(parts, t.LabelDuplicated())
	}
	parts = append(parts, item)

	return "  - " + strings.Join(parts, " ")
}

func (t *Translator) CliGameLineItemRedirected(item string) string {
	return t.translateArgs("cli-game-line-redirected-from", i18n.Args{argPath: i18n.Str(item)})
}

// CliSummary renders the closing summary of a run stored at location.
func (t *Translator) CliSummary(status domain.OperationStatus, location domain.StrictPath) string {
	args := i18n.Args{
		argPath:           i18n.Str(location.Render()),
		argTotalGames:     i18n.Int(int64(status.TotalGames)),
		argProcessedGames: i18n.Int(int64(status.ProcessedGames)),
		argTotalSize:      i18n.Str(t.AdjustedSize(status.TotalBytes)),
		argProcessedSize:  i18n.Str(t.AdjustedSize(status.ProcessedBytes)),
	}

	if status.ProcessedAll() {
		return t.translateArgs("cli-summary.succeeded", args)
	}
	return t.translateArgs("cli-summary.failed", args)
}
