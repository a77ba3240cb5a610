package lang

import "fmt"

// PackageVersion is the release version of this module.
const PackageVersion = "0.9.0"

// Build-time identification, set with -ldflags "-X".
// An empty Version falls back to PackageVersion.
var (
	Version string
	Variant string
)

// WindowTitle returns "<app name> v<version>", followed by " (<variant>)"
// when a build variant is set.
func (t *Translator) WindowTitle() string {
	return windowTitle(t.translate("app-name"), Version, Variant)
}

func windowTitle(name, version, variant string) string {
	if version == "" {
		version = PackageVersion
	}
	if variant != "" {
		return fmt.Sprintf("%s v%s (%s)", name, version, variant)
	}
	return fmt.Sprintf("%s v%s", name, version)
}
