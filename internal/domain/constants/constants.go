// Package constants defines shared domain-level constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)
