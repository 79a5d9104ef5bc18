package embedding

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nguyentantai21042004/script-extractor/internal/logger"
	tokenizer "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"
)

// maxSeqLen matches the sentence-transformers limit for all-mpnet-base-v2.
const maxSeqLen = 384

// ONNXOptions locates a sentence-transformer export and its tokenizer.
type ONNXOptions struct {
	ModelPath      string
	TokenizerPath  string
	LibraryPath    string
	InputNames     []string
	OutputName     string
	MaxBatchTokens int
	UseGPU         bool
}

type onnxProvider struct {
	name      string
	tokenizer *tokenizer.Tokenizer
	session   *ort.DynamicAdvancedSession
	inputs    []string
	maxTokens int
	// mu serializes session runs
	mu sync.Mutex
}

var envOnce sync.Once
var envErr error

// NewONNX loads the model and tokenizer and opens an inference session.
func NewONNX(ctx context.Context, opts ONNXOptions, log logger.Logger) (Provider, error) {
	for _, path := range []string{opts.ModelPath, opts.TokenizerPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}
	for _, name := range opts.InputNames {
		switch name {
		case "input_ids", "attention_mask", "token_type_ids":
		default:
			return nil, fmt.Errorf("unsupported model input %q", name)
		}
	}

	tok, err := pretrained.FromFile(opts.TokenizerPath)
	if err != nil {
		return nil, fmt.Errorf("load tokenizer: %w", err)
	}

	envOnce.Do(func() {
		if opts.LibraryPath != "" {
			ort.SetSharedLibraryPath(opts.LibraryPath)
		}
		envErr = ort.InitializeEnvironment()
	})
	if envErr != nil {
		return nil, fmt.Errorf("initialize onnx environment: %w", envErr)
	}

	sessionOpts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}
	defer sessionOpts.Destroy()

	if err := sessionOpts.SetGraphOptimizationLevel(ort.GraphOptimizationLevelEnableAll); err != nil {
		return nil, fmt.Errorf("set graph optimization: %w", err)
	}

	if opts.UseGPU {
		enableCUDA(ctx, sessionOpts, log)
	}

	if err := sessionOpts.SetIntraOpNumThreads(0); err != nil {
		log.Warn(ctx, "Failed to set ONNX thread count: %v", err)
	}

	session, err := ort.NewDynamicAdvancedSession(opts.ModelPath, opts.InputNames, []string{opts.OutputName}, sessionOpts)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	maxTokens := opts.MaxBatchTokens
	if maxTokens <= 0 {
		maxTokens = 6000
	}

	return &onnxProvider{
		name:      "onnx/" + filepath.Base(filepath.Dir(opts.ModelPath)),
		tokenizer: tok,
		session:   session,
		inputs:    opts.InputNames,
		maxTokens: maxTokens,
	}, nil
}

// enableCUDA appends the CUDA execution provider, staying on CPU on failure.
func enableCUDA(ctx context.Context, sessionOpts *ort.SessionOptions, log logger.Logger) {
	cudaOpts, err := ort.NewCUDAProviderOptions()
	if err != nil {
		log.Warn(ctx, "CUDA not available, using CPU: %v", err)
		return
	}
	defer cudaOpts.Destroy()

	if err := cudaOpts.Update(map[string]string{"device_id": "0"}); err != nil {
		log.Warn(ctx, "Failed to update CUDA options, using CPU: %v", err)
		return
	}
	if err := sessionOpts.AppendExecutionProviderCUDA(cudaOpts); err != nil {
		log.Warn(ctx, "Failed to append CUDA provider, using CPU: %v", err)
		return
	}
	log.Info(ctx, "CUDA execution provider enabled")
}

func (p *onnxProvider) Name() string { return p.name }

func (p *onnxProvider) Embed(ctx context.Context, sentences []string) ([][]float32, error) {
	if len(sentences) == 0 {
		return [][]float32{}, nil
	}

	inputs := make([]tokenizer.EncodeInput, len(sentences))
	for i, s := range sentences {
		inputs[i] = tokenizer.NewSingleEncodeInput(tokenizer.NewInputSequence(s))
	}
	encodings, err := p.tokenizer.EncodeBatch(inputs, true)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	batches := tokenBatches(encodingLengths(encodings), p.maxTokens)

	all := make([][]float32, 0, len(sentences))
	for _, b := range batches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vectors, err := p.embedBatch(encodings[b[0]:b[1]])
		if err != nil {
			return nil, fmt.Errorf("embed batch: %w", err)
		}
		all = append(all, vectors...)
	}
	return all, nil
}

func encodingLengths(encodings []tokenizer.Encoding) []int {
	lengths := make([]int, len(encodings))
	for i, enc := range encodings {
		lengths[i] = min(len(enc.GetIds()), maxSeqLen)
	}
	return lengths
}

// tokenBatches splits items into [start, end) ranges whose padded size,
// count times longest length, stays within budget. A single oversized item
// still forms its own batch.
func tokenBatches(lengths []int, budget int) [][2]int {
	var batches [][2]int
	i := 0
	for i < len(lengths) {
		start := i
		maxLen := 0
		for i < len(lengths) {
			newMax := max(maxLen, lengths[i])
			if i > start && (i-start+1)*newMax > budget {
				break
			}
			maxLen = newMax
			i++
		}
		batches = append(batches, [2]int{start, i})
	}
	return batches
}

func (p *onnxProvider) embedBatch(encodings []tokenizer.Encoding) ([][]float32, error) {
	batchSize := len(encodings)
	seqLen := 0
	for _, enc := range encodings {
		seqLen = max(seqLen, min(len(enc.GetIds()), maxSeqLen))
	}

	inputIDs := make([]int64, batchSize*seqLen)
	attentionMask := make([]int64, batchSize*seqLen)
	tokenTypeIDs := make([]int64, batchSize*seqLen)

	for i, enc := range encodings {
		ids := enc.GetIds()
		mask := enc.GetAttentionMask()
		offset := i * seqLen
		for j := 0; j < seqLen && j < len(ids); j++ {
			inputIDs[offset+j] = int64(ids[j])
			attentionMask[offset+j] = int64(mask[j])
		}
	}

	data := map[string][]int64{
		"input_ids":      inputIDs,
		"attention_mask": attentionMask,
		"token_type_ids": tokenTypeIDs,
	}

	shape := ort.NewShape(int64(batchSize), int64(seqLen))
	values := make([]ort.Value, 0, len(p.inputs))
	for _, name := range p.inputs {
		tensor, err := ort.NewTensor(shape, data[name])
		if err != nil {
			return nil, fmt.Errorf("create %s tensor: %w", name, err)
		}
		defer tensor.Destroy()
		values = append(values, tensor)
	}

	outputs := make([]ort.Value, 1)
	p.mu.Lock()
	err := p.session.Run(values, outputs)
	p.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("inference: %w", err)
	}
	defer outputs[0].Destroy()

	hidden, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("output tensor is not float32")
	}

	// last_hidden_state: [batch, seq, hidden]
	outShape := hidden.GetShape()
	if len(outShape) != 3 {
		return nil, fmt.Errorf("unexpected output shape %v", outShape)
	}
	return meanPool(hidden.GetData(), attentionMask, int(outShape[0]), int(outShape[1]), int(outShape[2])), nil
}

// meanPool averages token states under the attention mask and normalizes
// each sentence vector. The result is copied out of the tensor memory.
func meanPool(data []float32, mask []int64, batch, seq, dim int) [][]float32 {
	vectors := make([][]float32, batch)
	for b := 0; b < batch; b++ {
		vec := make([]float32, dim)
		var count float32
		for t := 0; t < seq; t++ {
			if mask[b*seq+t] == 0 {
				continue
			}
			count++
			row := data[(b*seq+t)*dim : (b*seq+t+1)*dim]
			for d, x := range row {
				vec[d] += x
			}
		}
		if count > 0 {
			for d := range vec {
				vec[d] /= count
			}
		}
		vectors[b] = Normalize(vec)
	}
	return vectors
}

func (p *onnxProvider) Close() error {
	if p.session != nil {
		return p.session.Destroy()
	}
	return nil
}
