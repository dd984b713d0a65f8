// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merges the
// sources, applies explicit defaults, and validates the result.
//
// The server entry point consumes [GetStructuredConfig]; the terminal client
// consumes the narrower view returned by [GetClientConfig].
package config
