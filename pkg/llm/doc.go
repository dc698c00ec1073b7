// Package llm provides the shared types for the AWS Bedrock chat-model
// factory.
//
// This package defines the credential configuration model, model
// identifiers, inference parameters, and standardized error types used by
// the provider and factory packages.
//
// The main components include:
//
// - Config and the Credentials union: the process-wide AWS access
// configuration, built once from the environment and read-only afterwards
// - ModelID: Bedrock model identifiers with cross-region routing support
// - InferenceConfig / ThinkingConfig: per-model request parameters
// - Error handling: standardized error types
//
// Client construction lives in /pkg/providers/bedrock and the high-level
// factory in /pkg/factory to maintain clean separation of concerns and
// avoid import cycles.
package llm
