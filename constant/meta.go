// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Couch is the canonical application identifier used for filesystem paths and CLI branding.
	Couch = "couch"

	// Version is the current application semantic version string.
	Version = "0.2.1"
)

// Build metadata, injected via -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
