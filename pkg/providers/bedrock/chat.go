package bedrock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"go.uber.org/zap"

	"github.com/inercia/go-bedrock/pkg/llm"
)

// clientOptionsWarning is logged when both an explicit client and client
// construction options are supplied; one of the two is presumably redundant
const clientOptionsWarning = "both an explicit client and client options were supplied; the explicit client wins and the options are ignored"

// ConverseAPI is the subset of the Bedrock runtime client a chat model
// needs. Both *bedrockruntime.Client and *Client satisfy it.
type ConverseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// ChatModelParams configures NewChatModel
type ChatModelParams struct {
	// ModelID is the target foundation model. Required.
	ModelID llm.ModelID

	// InferenceConfig, when set, passes temperature and max tokens
	// explicitly; when nil the service defaults govern both
	InferenceConfig *llm.InferenceConfig

	// Client, when set, is used as-is instead of constructing a new one
	Client ConverseAPI

	// ClientOptions configures the client built when Client is nil
	ClientOptions *ClientOptions

	// CrossRegion prepends the cross-region routing prefix to the model id
	CrossRegion bool

	// ThinkingConfig, when set, is forwarded under the "thinking" key of
	// the additional model request fields
	ThinkingConfig *llm.ThinkingConfig
}

// ChatModel is an invocable chat interface bound to a single model. It
// holds the routed model id, the client, and the request parameters fixed
// at construction time; every Converse call forwards them unchanged.
type ChatModel struct {
	modelID          string
	client           ConverseAPI
	inferenceConfig  *types.InferenceConfiguration
	additionalFields document.Interface
}

// NewChatModel creates a chat model from the given parameters. No network
// call occurs during construction. Retries are the client's resilience
// configuration; nothing is reattempted at this layer.
func NewChatModel(ctx context.Context, cfg *llm.Config, logger *zap.Logger, params ChatModelParams) (*ChatModel, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if params.ModelID == "" {
		return nil, &llm.Error{
			Code:    "missing_model",
			Message: "model id is required",
			Type:    "validation_error",
		}
	}

	if params.Client != nil && params.ClientOptions != nil {
		logger.Warn(clientOptionsWarning)
	}

	client := params.Client
	if client == nil {
		opts := ClientOptions{}
		if params.ClientOptions != nil {
			opts = *params.ClientOptions
		}
		c, err := NewClient(ctx, cfg, logger, opts)
		if err != nil {
			return nil, err
		}
		client = c
	}

	m := &ChatModel{
		modelID: params.ModelID.Routed(params.CrossRegion),
		client:  client,
	}

	if params.ThinkingConfig != nil {
		m.additionalFields = document.NewLazyDocument(map[string]interface{}{
			"thinking": params.ThinkingConfig,
		})
	}

	if params.InferenceConfig != nil {
		m.inferenceConfig = &types.InferenceConfiguration{
			Temperature: aws.Float32(params.InferenceConfig.Temperature),
			MaxTokens:   aws.Int32(params.InferenceConfig.MaxTokens),
		}
	}

	return m, nil
}

// ModelID returns the routed model identifier sent on the wire
func (m *ChatModel) ModelID() string {
	return m.modelID
}

// Converse sends the given conversation to the model and returns the raw
// service response. Network errors, throttling, and authentication
// rejections surface as the SDK's own error types.
func (m *ChatModel) Converse(ctx context.Context, system []types.SystemContentBlock, messages []types.Message, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	input := &bedrockruntime.ConverseInput{
		ModelId:  aws.String(m.modelID),
		Messages: messages,
	}
	if len(system) > 0 {
		input.System = system
	}
	if m.inferenceConfig != nil {
		input.InferenceConfig = m.inferenceConfig
	}
	if m.additionalFields != nil {
		input.AdditionalModelRequestFields = m.additionalFields
	}

	return m.client.Converse(ctx, input, optFns...)
}
