// Package version holds the application version string.
package version

// Version is the application version, bumped on release.
const Version = "1.1.0"
