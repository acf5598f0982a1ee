// Package version holds build version information.
package version

import "fmt"

// Version is the application version, overridden at build time via
// -ldflags "-X github.com/tanagerbot/tanager/internal/version.Version=...".
var Version = "dev"

// UserAgent returns the identifying User-Agent string sent to external
// services. Both Wikipedia and Discogs ask automated clients to identify
// themselves with a contact URL.
func UserAgent() string {
	return fmt.Sprintf("Tanager/%s (+https://github.com/tanagerbot/tanager)", Version)
}
