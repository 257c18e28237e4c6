// Package constants contains values shared between binaries and configuration.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers accepted in pubsub.provider
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Firestore collections
const (
	CollectionUsers       = "users"
	CollectionMeditations = "meditacoes"
	CollectionManna       = "mana_diario"
)
