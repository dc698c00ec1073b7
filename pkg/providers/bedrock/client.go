package bedrock

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go/logging"
	"go.uber.org/zap"

	"github.com/inercia/go-bedrock/pkg/llm"
)

// Fixed resilience configuration attached to every constructed client,
// regardless of credential strategy.
const (
	maxRetryAttempts = 10
	requestTimeout   = 60 * time.Second
)

// ClientOptions tunes client construction beyond the frozen credential
// configuration
type ClientOptions struct {
	// Region overrides the configured default region
	Region string
	// RuntimeEndpoint overrides the Bedrock runtime service endpoint
	RuntimeEndpoint string
	// ControlEndpoint overrides the Bedrock control-plane endpoint
	ControlEndpoint string
}

// Client wraps the Bedrock runtime and control-plane clients for a single
// region. Construction is cheap and performs no network calls; callers may
// create one per use.
type Client struct {
	runtime *bedrockruntime.Client
	control *bedrock.Client
	region  string

	// Health check caching; mu guards the two fields below since clients
	// may be shared across goroutines
	mu               sync.Mutex
	lastHealthCheck  *time.Time
	lastHealthStatus *bool
}

// NewClient creates a new Bedrock client scoped to a region, using the
// credentials of the active login strategy. A fresh session and client are
// built on every call; nothing is cached.
func NewClient(ctx context.Context, cfg *llm.Config, logger *zap.Logger, opts ClientOptions) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil || cfg.Credentials == nil {
		return nil, &llm.Error{
			Code:    "missing_config",
			Message: "a validated configuration is required to construct a client",
			Type:    llm.TypeConfigurationError,
		}
	}

	region := opts.Region
	if region == "" {
		region = cfg.Region
	}

	awsCfg, err := loadAWSConfig(ctx, cfg, logger, region)
	if err != nil {
		return nil, err
	}

	runtime := bedrockruntime.NewFromConfig(awsCfg, func(o *bedrockruntime.Options) {
		if opts.RuntimeEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.RuntimeEndpoint)
		}
	})

	control := bedrock.NewFromConfig(awsCfg, func(o *bedrock.Options) {
		if opts.ControlEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.ControlEndpoint)
		}
	})

	return &Client{
		runtime: runtime,
		control: control,
		region:  region,
	}, nil
}

// loadAWSConfig builds the session for a region from the credentials of the
// active login strategy, with the fixed resilience configuration applied
func loadAWSConfig(ctx context.Context, cfg *llm.Config, logger *zap.Logger, region string) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
		awsconfig.WithLogger(logging.Nop{}),
		awsconfig.WithRetryer(func() aws.Retryer {
			return retry.NewAdaptiveMode(func(o *retry.AdaptiveModeOptions) {
				o.StandardOptions = append(o.StandardOptions, func(so *retry.StandardOptions) {
					so.MaxAttempts = maxRetryAttempts
				})
			})
		}),
		awsconfig.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
	}

	switch creds := cfg.Credentials.(type) {
	case llm.SSOCredentials:
		logger.Info("using SSO profile-based authentication with AWS Bedrock",
			zap.String("profile", creds.Profile))
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(creds.Profile))

	case llm.StaticCredentials:
		logger.Info("using AWS keys for authentication with AWS Bedrock")
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken)))

	case llm.IAMRoleCredentials:
		// Ambient resolution through the SDK's default credential chain
		logger.Info("using IAM role for authentication with AWS Bedrock")

	default:
		return aws.Config{}, &llm.Error{
			Code:    "unknown_login_strategy",
			Message: fmt.Sprintf("no client construction path for credentials of type %T", cfg.Credentials),
			Type:    llm.TypeConfigurationError,
		}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, &llm.Error{
			Code:    "aws_config_error",
			Message: fmt.Sprintf("failed to load AWS configuration: %v", err),
			Type:    "authentication_error",
		}
	}

	return awsCfg, nil
}

// Converse forwards a Converse request to the underlying runtime client
func (c *Client) Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error) {
	return c.runtime.Converse(ctx, params, optFns...)
}

// Runtime returns the raw Bedrock runtime client
func (c *Client) Runtime() *bedrockruntime.Client {
	return c.runtime
}

// Region returns the region the client is scoped to
func (c *Client) Region() string {
	return c.region
}

// Remote returns information about the remote service
func (c *Client) Remote() llm.RemoteInfo {
	info := llm.RemoteInfo{
		Name: "bedrock",
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Check if we need to refresh the health status
	now := time.Now()
	needsRefresh := c.lastHealthCheck == nil ||
		now.Sub(*c.lastHealthCheck) >= llm.DefaultHealthCheckInterval

	if needsRefresh {
		healthy := c.performHealthCheck()
		c.lastHealthStatus = &healthy
		c.lastHealthCheck = &now
	}

	info.Status = &llm.RemoteStatus{
		Healthy:     c.lastHealthStatus,
		LastChecked: c.lastHealthCheck,
	}

	return info
}

// performHealthCheck performs a simple health check on AWS Bedrock
func (c *Client) performHealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Try to list foundation models as a health check
	_, err := c.control.ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{})
	return err == nil
}

// Close cleans up any resources used by the client
func (c *Client) Close() error {
	// AWS SDK clients don't require explicit cleanup
	return nil
}
