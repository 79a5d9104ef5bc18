package embedding

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type embeddingsClient interface {
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

type openaiProvider struct {
	client    embeddingsClient
	model     openai.EmbeddingModel
	batchSize int
}

// NewOpenAI embeds through the OpenAI embeddings endpoint.
func NewOpenAI(apiKey, model string, batchSize int) Provider {
	return newOpenAI(openai.NewClient(apiKey), model, batchSize)
}

func newOpenAI(client embeddingsClient, model string, batchSize int) *openaiProvider {
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	if batchSize <= 0 {
		batchSize = 256
	}
	return &openaiProvider{
		client:    client,
		model:     openai.EmbeddingModel(model),
		batchSize: batchSize,
	}
}

func (p *openaiProvider) Name() string { return "openai/" + string(p.model) }

func (p *openaiProvider) Embed(ctx context.Context, sentences []string) ([][]float32, error) {
	out := make([][]float32, 0, len(sentences))

	for start := 0; start < len(sentences); start += p.batchSize {
		batch := sentences[start:min(start+p.batchSize, len(sentences))]

		resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input: batch,
			Model: p.model,
		})
		if err != nil {
			return nil, fmt.Errorf("create embeddings: %w", err)
		}
		if len(resp.Data) != len(batch) {
			return nil, fmt.Errorf("create embeddings: got %d vectors for %d inputs", len(resp.Data), len(batch))
		}

		vectors := make([][]float32, len(batch))
		for _, d := range resp.Data {
			if d.Index < 0 || d.Index >= len(batch) {
				return nil, fmt.Errorf("create embeddings: index %d out of range", d.Index)
			}
			vectors[d.Index] = Normalize(d.Embedding)
		}
		out = append(out, vectors...)
	}

	return out, nil
}
