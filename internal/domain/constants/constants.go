package constants

// Store drivers accepted by store.driver.
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Pub/Sub providers accepted by pubsub.provider. An empty provider disables publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Account event types.
const (
	EventUserRegistered = "user.registered"
)

// Database status values reported by GET /api/status.
const (
	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// EnvLocal is the env.env value for a developer machine.
const EnvLocal = "local"
