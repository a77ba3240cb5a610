package domain

import "path/filepath"

// StrictPath is a user-supplied filesystem path kept as entered.
type StrictPath struct {
	raw string
}

// NewStrictPath wraps raw without validating it.
func NewStrictPath(raw string) StrictPath {
	return StrictPath{raw: raw}
}

// Raw returns the path exactly as entered.
func (p StrictPath) Raw() string {
	return p.raw
}

// Render returns the canonical textual form: cleaned, with OS separators.
// An empty path renders as an empty string.
func (p StrictPath) Render() string {
	if p.raw == "" {
		return ""
	}
	return filepath.Clean(filepath.FromSlash(p.raw))
}

func (p StrictPath) String() string {
	return p.Render()
}
