package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savevault/lang/pkg/domain"
)

func TestStrictPath(t *testing.T) {
	t.Parallel()

	p := domain.NewStrictPath("/backup//games/./saves/")
	assert.Equal(t, "/backup//games/./saves/", p.Raw())
	assert.Equal(t, filepath.FromSlash("/backup/games/saves"), p.Render())
	assert.Equal(t, p.Render(), p.String())
	assert.Empty(t, domain.NewStrictPath("").Render())
}

func TestOperationStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    domain.OperationStatus
		allGames  bool
		allBytes  bool
		processed bool
	}{
		{name: "empty", status: domain.OperationStatus{}, allGames: true, allBytes: true, processed: true},
		{
			name:     "complete",
			status:   domain.OperationStatus{TotalGames: 3, ProcessedGames: 3, TotalBytes: 100, ProcessedBytes: 100},
			allGames: true, allBytes: true, processed: true,
		},
		{
			name:     "games pending",
			status:   domain.OperationStatus{TotalGames: 3, ProcessedGames: 2, TotalBytes: 100, ProcessedBytes: 100},
			allBytes: true,
		},
		{
			name:     "bytes pending",
			status:   domain.OperationStatus{TotalGames: 3, ProcessedGames: 3, TotalBytes: 100, ProcessedBytes: 10},
			allGames: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.allGames, tt.status.ProcessedAllGames())
			assert.Equal(t, tt.allBytes, tt.status.ProcessedAllBytes())
			assert.Equal(t, tt.processed, tt.status.ProcessedAll())
		})
	}
}

func TestOperationStepDecision(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "processed", domain.Processed.String())
	assert.Equal(t, "cancelled", domain.Cancelled.String())
	assert.Equal(t, "ignored", domain.Ignored.String())
	assert.Equal(t, "unknown", domain.OperationStepDecision(9).String())
}

func TestStores(t *testing.T) {
	t.Parallel()

	stores := domain.Stores()
	require.Len(t, stores, 11)
	assert.Equal(t, domain.StoreEpic, stores[0])
	assert.Equal(t, domain.StoreOther, stores[len(stores)-1])
}

// recorder names the visitor method each error dispatches to.
type recorder struct{}

func (recorder) ConfigIsInvalid(why string) string {
	return "config:" + why
}
func (recorder) ManifestIsInvalid(why string) string {
	return "manifest:" + why
}
func (recorder) ManifestCannotBeUpdated() string {
	return "manifest-update"
}
func (recorder) CliBackupTargetExists(p domain.StrictPath) string {
	return "target-exists:" + p.Raw()
}
func (recorder) CliUnrecognizedGames(games []string) string {
	return "unrecognized:" + games[0]
}
func (recorder) CliUnableToRequestConfirmation() string {
	return "confirmation"
}
func (recorder) SomeEntriesFailed() string {
	return "entries"
}
func (recorder) CannotPrepareBackupTarget(p domain.StrictPath) string {
	return "prepare:" + p.Raw()
}
func (recorder) RestorationSourceIsInvalid(p domain.StrictPath) string {
	return "source:" + p.Raw()
}
func (recorder) RegistryIssue() string {
	return "registry"
}
func (recorder) UnableToBrowseFileSystem() string {
	return "browse"
}
func (recorder) UnableToOpenDir(p domain.StrictPath) string {
	return "dir:" + p.Raw()
}
func (recorder) UnableToOpenURL(url string) string {
	return "url:" + url
}

func TestErrorAccept(t *testing.T) {
	t.Parallel()

	p := domain.NewStrictPath("/x")
	tests := []struct {
		err      domain.Error
		expected string
	}{
		{domain.ConfigInvalidError{Why: "bad"}, "config:bad"},
		{domain.ManifestInvalidError{Why: "bad"}, "manifest:bad"},
		{domain.ManifestCannotBeUpdatedError{}, "manifest-update"},
		{domain.CliBackupTargetExistsError{Path: p}, "target-exists:/x"},
		{domain.CliUnrecognizedGamesError{Games: []string{"foo"}}, "unrecognized:foo"},
		{domain.CliUnableToRequestConfirmationError{}, "confirmation"},
		{domain.SomeEntriesFailedError{}, "entries"},
		{domain.CannotPrepareBackupTargetError{Path: p}, "prepare:/x"},
		{domain.RestorationSourceInvalidError{Path: p}, "source:/x"},
		{domain.RegistryIssueError{}, "registry"},
		{domain.UnableToBrowseFileSystemError{}, "browse"},
		{domain.UnableToOpenDirError{Path: p}, "dir:/x"},
		{domain.UnableToOpenURLError{URL: "https://example.com"}, "url:https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Accept(recorder{}))
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrorAs(t *testing.T) {
	t.Parallel()

	var err error = domain.UnableToOpenDirError{Path: domain.NewStrictPath("/saves")}
	var target domain.Error
	require.ErrorAs(t, err, &target)
	assert.Contains(t, target.Error(), "saves")
	assert.False(t, errors.Is(err, domain.RegistryIssueError{}))
}
