// Package constants holds shared domain-level constant values.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Order event types published to the message queue.
const (
	EventOrderCreated         = "order.created"
	EventPaymentStatusChanged = "payment.status_changed"
)

// Role names carried in access-token claims.
const (
	RoleAdmin = "admin"
)
