package factory

import (
	"context"

	"go.uber.org/zap"

	"github.com/inercia/go-bedrock/pkg/llm"
	"github.com/inercia/go-bedrock/pkg/providers/bedrock"
)

// Factory creates Bedrock clients and chat models from a configuration
// frozen at construction time
type Factory struct {
	cfg    *llm.Config
	logger *zap.Logger
}

// New creates a factory around an already validated configuration. A nil
// logger disables logging.
func New(cfg *llm.Config, logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{cfg: cfg, logger: logger}
}

// NewFromEnv builds the configuration from the process environment and
// wraps it in a factory. Fails fast with a configuration error when the
// login strategy is unrecognized or its required fields are missing.
func NewFromEnv(logger *zap.Logger) (*Factory, error) {
	cfg, err := llm.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg, logger), nil
}

// Config returns the frozen configuration
func (f *Factory) Config() *llm.Config {
	return f.cfg
}

// CreateClient creates a Bedrock client using the active login strategy.
// An empty opts.Region falls back to the configured default region.
func (f *Factory) CreateClient(ctx context.Context, opts bedrock.ClientOptions) (*bedrock.Client, error) {
	return bedrock.NewClient(ctx, f.cfg, f.logger, opts)
}

// CreateChatModel creates a chat model, constructing a client on the fly
// unless params carries an explicit one
func (f *Factory) CreateChatModel(ctx context.Context, params bedrock.ChatModelParams) (*bedrock.ChatModel, error) {
	return bedrock.NewChatModel(ctx, f.cfg, f.logger, params)
}
