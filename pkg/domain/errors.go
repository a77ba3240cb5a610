package domain

import (
	"fmt"
	"strings"
)

// Error is the closed set of failures shown to the user.
// Only types in this package implement it.
type Error interface {
	error
	// Accept dispatches to the visitor method for the concrete kind.
	Accept(v ErrorVisitor) string
	sealed()
}

// ErrorVisitor phrases each error kind. Implementations must handle every kind.
type ErrorVisitor interface {
	ConfigIsInvalid(why string) string
	ManifestIsInvalid(why string) string
	ManifestCannotBeUpdated() string
	CliBackupTargetExists(path StrictPath) string
	CliUnrecognizedGames(games []string) string
	CliUnableToRequestConfirmation() string
	SomeEntriesFailed() string
	CannotPrepareBackupTarget(path StrictPath) string
	RestorationSourceIsInvalid(path StrictPath) string
	RegistryIssue() string
	UnableToBrowseFileSystem() string
	UnableToOpenDir(path StrictPath) string
	UnableToOpenURL(url string) string
}

type ConfigInvalidError struct{ Why string }

func (e ConfigInvalidError) Error() string {
	return "config is invalid: " + e.Why
}
func (e ConfigInvalidError) Accept(v ErrorVisitor) string {
	return v.ConfigIsInvalid(e.Why)
}
func (ConfigInvalidError) sealed() {}

type ManifestInvalidError struct{ Why string }

func (e ManifestInvalidError) Error() string {
	return "manifest is invalid: " + e.Why
}
func (e ManifestInvalidError) Accept(v ErrorVisitor) string {
	return v.ManifestIsInvalid(e.Why)
}
func (ManifestInvalidError) sealed() {}

type ManifestCannotBeUpdatedError struct{}

func (ManifestCannotBeUpdatedError) Error() string {
	return "manifest cannot be updated"
}
func (ManifestCannotBeUpdatedError) Accept(v ErrorVisitor) string {
	return v.ManifestCannotBeUpdated()
}
func (ManifestCannotBeUpdatedError) sealed() {}

type CliBackupTargetExistsError struct{ Path StrictPath }

func (e CliBackupTargetExistsError) Error() string {
	return fmt.Sprintf("backup target already exists: %s", e.Path.Render())
}
func (e CliBackupTargetExistsError) Accept(v ErrorVisitor) string {
	return v.CliBackupTargetExists(e.Path)
}
func (CliBackupTargetExistsError) sealed() {}

type CliUnrecognizedGamesError struct{ Games []string }

func (e CliUnrecognizedGamesError) Error() string {
	return "unrecognized games: " + strings.Join(e.Games, ", ")
}
func (e CliUnrecognizedGamesError) Accept(v ErrorVisitor) string {
	return v.CliUnrecognizedGames(e.Games)
}
func (CliUnrecognizedGamesError) sealed() {}

type CliUnableToRequestConfirmationError struct{}

func (CliUnableToRequestConfirmationError) Error() string {
	return "unable to request confirmation"
}
func (CliUnableToRequestConfirmationError) Accept(v ErrorVisitor) string {
	return v.CliUnableToRequestConfirmation()
}
func (CliUnableToRequestConfirmationError) sealed() {}

type SomeEntriesFailedError struct{}

func (SomeEntriesFailedError) Error() string {
	return "some entries failed"
}
func (SomeEntriesFailedError) Accept(v ErrorVisitor) string {
	return v.SomeEntriesFailed()
}
func (SomeEntriesFailedError) sealed() {}

type CannotPrepareBackupTargetError struct{ Path StrictPath }

func (e CannotPrepareBackupTargetError) Error() string {
	return fmt.Sprintf("cannot prepare backup target: %s", e.Path.Render())
}
func (e CannotPrepareBackupTargetError) Accept(v ErrorVisitor) string {
	return v.CannotPrepareBackupTarget(e.Path)
}
func (CannotPrepareBackupTargetError) sealed() {}

type RestorationSourceInvalidError struct{ Path StrictPath }

func (e RestorationSourceInvalidError) Error() string {
	return fmt.Sprintf("restoration source is invalid: %s", e.Path.Render())
}
func (e RestorationSourceInvalidError) Accept(v ErrorVisitor) string {
	return v.RestorationSourceIsInvalid(e.Path)
}
func (RestorationSourceInvalidError) sealed() {}

type RegistryIssueError struct{}

func (RegistryIssueError) Error() string {
	return "registry issue"
}
func (RegistryIssueError) Accept(v ErrorVisitor) string {
	return v.RegistryIssue()
}
func (RegistryIssueError) sealed() {}

type UnableToBrowseFileSystemError struct{}

func (UnableToBrowseFileSystemError) Error() string {
	return "unable to browse file system"
}
func (UnableToBrowseFileSystemError) Accept(v ErrorVisitor) string {
	return v.UnableToBrowseFileSystem()
}
func (UnableToBrowseFileSystemError) sealed() {}

type UnableToOpenDirError struct{ Path StrictPath }

func (e UnableToOpenDirError) Error() string {
	return fmt.Sprintf("unable to open directory: %s", e.Path.Render())
}
func (e UnableToOpenDirError) Accept(v ErrorVisitor) string {
	return v.UnableToOpenDir(e.Path)
}
func (UnableToOpenDirError) sealed() {}

type UnableToOpenURLError struct{ URL string }

func (e UnableToOpenURLError) Error() string {
	return "unable to open URL: " + e.URL
}
func (e UnableToOpenURLError) Accept(v ErrorVisitor) string {
	return v.UnableToOpenURL(e.URL)
}
func (UnableToOpenURLError) sealed() {}
