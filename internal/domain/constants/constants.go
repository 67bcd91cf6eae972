// Package constants holds the enumerated configuration values shared by infra and delivery.
package constants

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Email providers and delivery modes
const (
	EmailProviderPostmark = "postmark"
	EmailProviderLog      = "log"

	EmailDeliveryDirect = "direct"
	EmailDeliveryQueue  = "queue"
)

// Translation providers
const (
	TranslateProviderDeepL  = "deepl"
	TranslateProviderOpenAI = "openai"
)
