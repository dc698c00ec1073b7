// Package bedrock constructs AWS Bedrock runtime clients and chat models.
//
// Client construction selects among three credential strategies (SSO
// profile, static access keys, ambient IAM role) frozen into an llm.Config
// at startup, and applies a fixed resilience configuration: adaptive retry
// mode with 10 maximum attempts and a 60-second request timeout. Requests,
// retries, and error classification all stay inside the AWS SDK; this
// package only feeds configuration into its constructors.
//
// Key components:
//   - Client: wrapper around the Bedrock runtime and control-plane clients
//     with a cached health check
//   - ChatModel: an invocable chat interface bound to a single model, with
//     cross-region routing and pass-through extension fields
//   - ConverseAPI: the small client seam that lets tests stub the transport
//
// Usage:
//
//	cfg, err := llm.ConfigFromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model, err := bedrock.NewChatModel(ctx, cfg, logger, bedrock.ChatModelParams{
//	    ModelID:     llm.Claude35Sonnet,
//	    CrossRegion: true,
//	})
package bedrock
