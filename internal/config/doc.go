// Package config loads and merges cardsync configuration from
// environment variables, command-line flags, and an optional JSON file.
// The server consumes [StructuredConfig] directly; the client uses the
// narrowed [ClientConfig] view.
package config
