package embedding

import (
	"context"

	"github.com/nguyentantai21042004/script-extractor/internal/config"
	"github.com/nguyentantai21042004/script-extractor/internal/logger"
)

// New builds the configured provider. Anything that prevents the provider
// from loading yields Unavailable and a warning.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) Provider {
	var p Provider

	switch cfg.Embedding.Provider {
	case "none":
		return Unavailable{Reason: "embedding.provider is none"}

	case "openai":
		if cfg.Embedding.OpenAIKey == "" {
			log.Warn(ctx, "OPENAI_API_KEY not set, semantic segmentation disabled")
			return Unavailable{Reason: "OPENAI_API_KEY not set"}
		}
		p = NewOpenAI(cfg.Embedding.OpenAIKey, cfg.Embedding.OpenAIModel, cfg.Embedding.BatchSize)

	default:
		onnx, err := NewONNX(ctx, ONNXOptions{
			ModelPath:      cfg.Embedding.ModelPath,
			TokenizerPath:  cfg.Embedding.TokenizerPath,
			LibraryPath:    cfg.Embedding.LibraryPath,
			InputNames:     cfg.Embedding.InputNames,
			OutputName:     cfg.Embedding.OutputName,
			MaxBatchTokens: cfg.Embedding.MaxBatchTokens,
			UseGPU:         cfg.Embedding.UseGPU,
		}, log)
		if err != nil {
			log.Warn(ctx, "ONNX embedding model unavailable: %v", err)
			return Unavailable{Reason: err.Error()}
		}
		p = onnx
	}

	log.Info(ctx, "Embedding provider: %s", p.Name())
	p = Dedup(p)

	if cfg.Cache.RedisURL != "" {
		client, err := ConnectRedis(ctx, cfg.Cache.RedisURL)
		if err != nil {
			log.Warn(ctx, "Embedding cache disabled: %v", err)
			return p
		}
		log.Info(ctx, "Embedding cache enabled (ttl %s)", cfg.Cache.TTL)
		p = Cached(p, client, cfg.Cache.TTL, log)
	}

	return p
}
