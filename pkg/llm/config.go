// Configuration types and environment loading
package llm

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultRegion is used when AWS_REGION is not set
const DefaultRegion = "us-east-1"

// LoginStrategy selects how AWS credentials are resolved
type LoginStrategy string

const (
	// LoginStrategySSO uses a shared-config profile (single sign-on)
	LoginStrategySSO LoginStrategy = "aws_sso"
	// LoginStrategyKeys uses an explicit access key triple
	LoginStrategyKeys LoginStrategy = "aws_keys"
	// LoginStrategyIAMRole relies on ambient resolution (instance profile,
	// IRSA, shared config) by the SDK's default credential chain
	LoginStrategyIAMRole LoginStrategy = "aws_iam_role"
)

// Credentials is the per-strategy credential material. Exactly one
// implementation exists per LoginStrategy; ConfigFromEnv guarantees an
// active Config always carries a fully populated variant.
type Credentials interface {
	Strategy() LoginStrategy
}

// SSOCredentials carries the shared-config profile name for SSO access
type SSOCredentials struct {
	Profile string
}

func (SSOCredentials) Strategy() LoginStrategy { return LoginStrategySSO }

// StaticCredentials carries an explicit access key triple. All three
// fields are required together.
type StaticCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

func (StaticCredentials) Strategy() LoginStrategy { return LoginStrategyKeys }

// IAMRoleCredentials carries nothing; resolution is ambient
type IAMRoleCredentials struct{}

func (IAMRoleCredentials) Strategy() LoginStrategy { return LoginStrategyIAMRole }

// Config holds the process-wide AWS access configuration. It is built once
// at startup and read-only afterwards, so concurrent readers need no
// locking.
type Config struct {
	Region      string
	Credentials Credentials
}

// Strategy returns the active login strategy
func (c *Config) Strategy() LoginStrategy {
	return c.Credentials.Strategy()
}

// awsEnv mirrors the environment variables ConfigFromEnv reads
type awsEnv struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	LoginStrategy   string `env:"AWS_LOGIN_STRATEGY" envDefault:"aws_keys"`
	Profile         string `env:"AWS_PROFILE"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	SessionToken    string `env:"AWS_SESSION_TOKEN"`
}

// bearerTokenVar overrides Bedrock authentication inside the SDK when set,
// so it is cleared for both explicit strategies
const bearerTokenVar = "AWS_BEARER_TOKEN_BEDROCK"

// ConfigFromEnv reads and validates the AWS access configuration from the
// process environment. The strategy selector is matched case-insensitively.
//
// On successful validation of an explicit strategy, conflicting credential
// variables are removed from the process environment: the SDK's default
// chain reads environment keys ahead of shared-config profiles, so a stale
// AWS_ACCESS_KEY_ID would silently override an SSO profile unless cleared.
//
// Returns a configuration error for an unrecognized strategy or missing
// required fields; callers are expected to treat that as fatal.
func ConfigFromEnv() (*Config, error) {
	var e awsEnv
	if err := env.Parse(&e); err != nil {
		return nil, &Error{
			Code:    "env_parse_error",
			Message: fmt.Sprintf("parsing AWS environment: %v", err),
			Type:    TypeConfigurationError,
		}
	}

	cfg := &Config{Region: e.Region}

	switch LoginStrategy(strings.ToLower(e.LoginStrategy)) {
	case LoginStrategySSO:
		if e.Profile == "" {
			return nil, &Error{
				Code:    "missing_profile",
				Message: "AWS_PROFILE must be set for the aws_sso login strategy",
				Type:    TypeConfigurationError,
			}
		}
		cfg.Credentials = SSOCredentials{Profile: e.Profile}

		// Clear key material so it cannot shadow the profile
		os.Unsetenv("AWS_ACCESS_KEY_ID")
		os.Unsetenv("AWS_SECRET_ACCESS_KEY")
		os.Unsetenv("AWS_SESSION_TOKEN")
		os.Unsetenv(bearerTokenVar)

	case LoginStrategyKeys:
		if e.AccessKeyID == "" || e.SecretAccessKey == "" || e.SessionToken == "" {
			return nil, &Error{
				Code:    "missing_credentials",
				Message: "AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, and AWS_SESSION_TOKEN must be set for the aws_keys login strategy",
				Type:    TypeConfigurationError,
			}
		}
		cfg.Credentials = StaticCredentials{
			AccessKeyID:     e.AccessKeyID,
			SecretAccessKey: e.SecretAccessKey,
			SessionToken:    e.SessionToken,
		}

		os.Unsetenv("AWS_PROFILE")
		os.Unsetenv(bearerTokenVar)

	case LoginStrategyIAMRole:
		cfg.Credentials = IAMRoleCredentials{}

	default:
		return nil, &Error{
			Code:    "invalid_login_strategy",
			Message: fmt.Sprintf("invalid AWS_LOGIN_STRATEGY: %s", e.LoginStrategy),
			Type:    TypeConfigurationError,
		}
	}

	return cfg, nil
}
