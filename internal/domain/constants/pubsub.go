// Package constants holds shared domain-level constant values.
package constants

// Supported Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
