// Package constants collects configuration values that select behaviour.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for the asynchronous dismiss fan-out.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push providers.
const (
	PushProviderFCM      = "fcm"
	PushProviderFirebase = "firebase"
	PushProviderLog      = "log"
)

// Database drivers.
const (
	DatabaseDriverPostgres = "postgres"
	DatabaseDriverSQLite   = "sqlite"
)
