package llm

import (
	"os"
	"testing"
)

// unsetForTest removes a variable for the duration of the test; t.Setenv
// first so the original value is restored on cleanup
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

// setStrategyEnv populates the full set of credential variables so each
// case only has to describe its deviation from a fully configured process
func setStrategyEnv(t *testing.T, strategy string) {
	t.Helper()
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("AWS_LOGIN_STRATEGY", strategy)
	t.Setenv("AWS_PROFILE", "dev-profile")
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIAEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_SESSION_TOKEN", "token")
	t.Setenv("AWS_BEARER_TOKEN_BEDROCK", "bearer")
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		strategy     string
		unset        []string
		wantErr      bool
		wantStrategy LoginStrategy
	}{
		{
			name:         "sso with profile",
			strategy:     "aws_sso",
			wantStrategy: LoginStrategySSO,
		},
		{
			name:     "sso without profile",
			strategy: "aws_sso",
			unset:    []string{"AWS_PROFILE"},
			wantErr:  true,
		},
		{
			name:         "keys with full triple",
			strategy:     "aws_keys",
			wantStrategy: LoginStrategyKeys,
		},
		{
			name:     "keys without access key id",
			strategy: "aws_keys",
			unset:    []string{"AWS_ACCESS_KEY_ID"},
			wantErr:  true,
		},
		{
			name:     "keys without secret",
			strategy: "aws_keys",
			unset:    []string{"AWS_SECRET_ACCESS_KEY"},
			wantErr:  true,
		},
		{
			name:     "keys without session token",
			strategy: "aws_keys",
			unset:    []string{"AWS_SESSION_TOKEN"},
			wantErr:  true,
		},
		{
			name:         "iam role needs nothing",
			strategy:     "aws_iam_role",
			unset:        []string{"AWS_PROFILE", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_SESSION_TOKEN"},
			wantStrategy: LoginStrategyIAMRole,
		},
		{
			name:         "strategy matching is case-insensitive",
			strategy:     "AWS_SSO",
			wantStrategy: LoginStrategySSO,
		},
		{
			name:     "unrecognized strategy",
			strategy: "aws_magic",
			wantErr:  true,
		},
		{
			name:     "empty strategy is not a recognized value",
			strategy: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setStrategyEnv(t, tt.strategy)
			for _, v := range tt.unset {
				t.Setenv(v, "")
			}

			cfg, err := ConfigFromEnv()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConfigFromEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsConfigurationError(err) {
					t.Errorf("ConfigFromEnv() error = %v, want configuration error", err)
				}
				return
			}
			if cfg.Strategy() != tt.wantStrategy {
				t.Errorf("Strategy() = %v, want %v", cfg.Strategy(), tt.wantStrategy)
			}
			if cfg.Region != "eu-west-1" {
				t.Errorf("Region = %v, want eu-west-1", cfg.Region)
			}
		})
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	// Default strategy is aws_keys, so a bare environment with only the
	// key triple must produce a static-keys config in the default region
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIAEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_SESSION_TOKEN", "token")
	unsetForTest(t, "AWS_LOGIN_STRATEGY")
	unsetForTest(t, "AWS_REGION")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	if cfg.Strategy() != LoginStrategyKeys {
		t.Errorf("Strategy() = %v, want %v", cfg.Strategy(), LoginStrategyKeys)
	}
	if cfg.Region != DefaultRegion {
		t.Errorf("Region = %v, want %v", cfg.Region, DefaultRegion)
	}
}

func TestConfigFromEnvScrubsConflicts(t *testing.T) {
	t.Run("keys strategy clears profile and bearer token", func(t *testing.T) {
		setStrategyEnv(t, "aws_keys")

		cfg, err := ConfigFromEnv()
		if err != nil {
			t.Fatalf("ConfigFromEnv() error = %v", err)
		}

		if _, ok := os.LookupEnv("AWS_PROFILE"); ok {
			t.Error("AWS_PROFILE still set after selecting aws_keys")
		}
		if _, ok := os.LookupEnv("AWS_BEARER_TOKEN_BEDROCK"); ok {
			t.Error("AWS_BEARER_TOKEN_BEDROCK still set after selecting aws_keys")
		}

		creds, ok := cfg.Credentials.(StaticCredentials)
		if !ok {
			t.Fatalf("Credentials = %T, want StaticCredentials", cfg.Credentials)
		}
		if creds.AccessKeyID != "AKIAEXAMPLE" || creds.SecretAccessKey != "secret" || creds.SessionToken != "token" {
			t.Errorf("StaticCredentials = %+v, want captured env values", creds)
		}
	})

	t.Run("sso strategy clears key material and bearer token", func(t *testing.T) {
		setStrategyEnv(t, "aws_sso")

		cfg, err := ConfigFromEnv()
		if err != nil {
			t.Fatalf("ConfigFromEnv() error = %v", err)
		}

		for _, v := range []string{"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_SESSION_TOKEN", "AWS_BEARER_TOKEN_BEDROCK"} {
			if _, ok := os.LookupEnv(v); ok {
				t.Errorf("%s still set after selecting aws_sso", v)
			}
		}

		creds, ok := cfg.Credentials.(SSOCredentials)
		if !ok {
			t.Fatalf("Credentials = %T, want SSOCredentials", cfg.Credentials)
		}
		if creds.Profile != "dev-profile" {
			t.Errorf("Profile = %v, want dev-profile", creds.Profile)
		}
	})

	t.Run("iam role strategy leaves the environment alone", func(t *testing.T) {
		setStrategyEnv(t, "aws_iam_role")

		if _, err := ConfigFromEnv(); err != nil {
			t.Fatalf("ConfigFromEnv() error = %v", err)
		}

		if _, ok := os.LookupEnv("AWS_PROFILE"); !ok {
			t.Error("AWS_PROFILE was cleared by the iam role strategy")
		}
		if _, ok := os.LookupEnv("AWS_ACCESS_KEY_ID"); !ok {
			t.Error("AWS_ACCESS_KEY_ID was cleared by the iam role strategy")
		}
	})
}
