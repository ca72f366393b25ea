// Package version reports the engine's build version.
//
// buildVersion is set via -ldflags "-X .../version.buildVersion=..." by
// release builds; the zero value falls back to "dev" so local builds still
// print something sensible in "id name" and -version output.
package version

var buildVersion = ""

// Version returns the engine's version string.
func Version() string {
	if buildVersion == "" {
		return "dev"
	}
	return buildVersion
}
