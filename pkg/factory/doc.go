// Package factory provides the high-level entry point for creating Bedrock
// clients and chat models.
//
// A Factory holds a configuration frozen at construction time and a logger;
// its methods only read that configuration and allocate fresh objects, so a
// single Factory is safe for concurrent use from multiple goroutines.
//
// Example usage:
//
//	f, err := factory.NewFromEnv(logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	model, err := f.CreateChatModel(ctx, bedrock.ChatModelParams{
//	    ModelID: llm.Claude35Sonnet,
//	})
package factory
