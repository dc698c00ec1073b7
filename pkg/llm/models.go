// Model identifiers and inference parameters
package llm

// CrossRegionPrefix is prepended to a model identifier to request that
// Bedrock route the request across regions for capacity
const CrossRegionPrefix = "us."

// ModelID identifies a Bedrock foundation model
type ModelID string

// Commonly used Anthropic Claude models
const (
	Claude3Haiku   ModelID = "anthropic.claude-3-haiku-20240307-v1:0"
	Claude35Sonnet ModelID = "anthropic.claude-3-5-sonnet-20241022-v2:0"
	Claude35Haiku  ModelID = "anthropic.claude-3-5-haiku-20241022-v1:0"
	Claude37Sonnet ModelID = "anthropic.claude-3-7-sonnet-20250219-v1:0"
	Claude4Sonnet  ModelID = "anthropic.claude-sonnet-4-20250514-v1:0"
	Claude4Opus    ModelID = "anthropic.claude-opus-4-20250514-v1:0"
)

// Commonly used Amazon models
const (
	NovaPro   ModelID = "amazon.nova-pro-v1:0"
	NovaLite  ModelID = "amazon.nova-lite-v1:0"
	NovaMicro ModelID = "amazon.nova-micro-v1:0"
)

// Routed returns the identifier to send on the wire, prepending the
// cross-region routing prefix when requested
func (m ModelID) Routed(crossRegion bool) string {
	if crossRegion {
		return CrossRegionPrefix + string(m)
	}
	return string(m)
}

// InferenceConfig carries the explicit inference parameters for a chat
// model. The struct as a whole is optional; when omitted the service
// defaults govern temperature and max tokens.
type InferenceConfig struct {
	Temperature float32
	MaxTokens   int32
}

// ThinkingConfig is forwarded verbatim under the "thinking" key of the
// request's additional model request fields
type ThinkingConfig struct {
	Type         string `json:"type"`
	BudgetTokens int    `json:"budget_tokens"`
}
