package config

import (
	"fmt"
	"time"
)

type Config struct {
	Caption      CaptionConfig      `yaml:"caption"`
	Transcript   TranscriptConfig   `yaml:"transcript"`
	Segmentation SegmentationConfig `yaml:"segmentation"`
	Embedding    EmbeddingConfig    `yaml:"embedding"`
	Keyphrase    KeyphraseConfig    `yaml:"keyphrase"`
	Gemini       GeminiConfig       `yaml:"gemini"`
	Cache        CacheConfig        `yaml:"cache"`
	Storage      StorageConfig      `yaml:"storage"`
	Server       ServerConfig       `yaml:"server"`
	Paths        PathsConfig        `yaml:"paths"`
	Logging      LoggingConfig      `yaml:"logging"`
	Performance  PerformanceConfig  `yaml:"performance"`
}

type CaptionConfig struct {
	BinaryPath   string        `yaml:"binary_path"`
	Language     string        `yaml:"language"`
	Timeout      time.Duration `yaml:"timeout"`
	Retries      *int          `yaml:"retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

type TranscriptConfig struct {
	WindowSeconds int `yaml:"window_seconds"`
	PauseSeconds  int `yaml:"pause_seconds"`
	MinWords      int `yaml:"min_words"`
}

type SegmentationConfig struct {
	// Mode selects the default pipeline: semantic, generative or basic
	Mode               string  `yaml:"mode"`
	Strategy           string  `yaml:"strategy"`
	MinGap             int     `yaml:"min_gap"`
	MinParagraphs      int     `yaml:"min_paragraphs"`
	MaxParagraphs      int     `yaml:"max_paragraphs"`
	MinParagraphLength int     `yaml:"min_paragraph_length"`
	TargetParagraphs   int     `yaml:"target_paragraphs"`
	DropRatio          float64 `yaml:"drop_ratio"`
	RatioMinGap        int     `yaml:"ratio_min_gap"`
	ExtractTitles      *bool   `yaml:"extract_titles"`
}

type EmbeddingConfig struct {
	// Provider is onnx, openai or none
	Provider       string   `yaml:"provider"`
	UseGPU         bool     `yaml:"use_gpu"`
	ModelPath      string   `yaml:"model_path"`
	TokenizerPath  string   `yaml:"tokenizer_path"`
	LibraryPath    string   `yaml:"library_path"`
	InputNames     []string `yaml:"input_names"`
	OutputName     string   `yaml:"output_name"`
	MaxBatchTokens int      `yaml:"max_batch_tokens"`
	OpenAIModel    string   `yaml:"openai_model"`
	BatchSize      int      `yaml:"batch_size"`
	OpenAIKey      string   `yaml:"-"`
}

type KeyphraseConfig struct {
	TopN      int     `yaml:"top_n"`
	Diversity float64 `yaml:"diversity"`
	MaxNGram  int     `yaml:"max_ngram"`
}

type GeminiConfig struct {
	Model           string   `yaml:"model"`
	MaxPromptTokens int      `yaml:"max_prompt_tokens"`
	APIKeys         []string `yaml:"-"`
}

type CacheConfig struct {
	RedisURL string        `yaml:"redis_url"`
	TTL      time.Duration `yaml:"ttl"`
}

type StorageConfig struct {
	DatabaseURL string `yaml:"-"`
}

type ServerConfig struct {
	Addr   string `yaml:"addr"`
	APIKey string `yaml:"-"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// RetryCount reports caption.retries, 2 when unset
func (c CaptionConfig) RetryCount() int {
	if c.Retries == nil {
		return 2
	}
	return *c.Retries
}

// TitlesEnabled reports segmentation.extract_titles, true when unset
func (c SegmentationConfig) TitlesEnabled() bool {
	return c.ExtractTitles == nil || *c.ExtractTitles
}

func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	switch c.Segmentation.Mode {
	case "":
		c.Segmentation.Mode = "semantic"
	case "semantic", "generative", "basic":
	default:
		return fmt.Errorf("segmentation.mode must be semantic, generative or basic, got %q", c.Segmentation.Mode)
	}

	switch c.Segmentation.Strategy {
	case "":
		c.Segmentation.Strategy = "elbow"
	case "elbow", "top", "ratio":
	default:
		return fmt.Errorf("segmentation.strategy must be elbow, top or ratio, got %q", c.Segmentation.Strategy)
	}

	switch c.Embedding.Provider {
	case "":
		c.Embedding.Provider = "onnx"
	case "onnx", "openai", "none":
	default:
		return fmt.Errorf("embedding.provider must be onnx, openai or none, got %q", c.Embedding.Provider)
	}

	if c.Segmentation.MinParagraphs < 0 || c.Segmentation.MaxParagraphs < 0 {
		return fmt.Errorf("segmentation paragraph bounds must not be negative")
	}
	if c.Caption.Retries != nil && *c.Caption.Retries < 0 {
		return fmt.Errorf("caption.retries must not be negative")
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Caption.BinaryPath == "" {
		c.Caption.BinaryPath = "yt-dlp"
	}
	if c.Caption.Language == "" {
		c.Caption.Language = "en"
	}
	if c.Caption.Timeout == 0 {
		c.Caption.Timeout = 2 * time.Minute
	}
	if c.Caption.RetryBackoff == 0 {
		c.Caption.RetryBackoff = 2 * time.Second
	}
	if c.Transcript.WindowSeconds == 0 {
		c.Transcript.WindowSeconds = 25
	}
	if c.Transcript.PauseSeconds == 0 {
		c.Transcript.PauseSeconds = 3
	}
	if c.Transcript.MinWords == 0 {
		c.Transcript.MinWords = 10
	}
	if c.Segmentation.MinGap == 0 {
		c.Segmentation.MinGap = 15
	}
	if c.Segmentation.MinParagraphs == 0 {
		c.Segmentation.MinParagraphs = 5
	}
	if c.Segmentation.MaxParagraphs == 0 {
		c.Segmentation.MaxParagraphs = 12
	}
	if c.Segmentation.MinParagraphs > c.Segmentation.MaxParagraphs {
		return fmt.Errorf("segmentation.min_paragraphs (%d) exceeds max_paragraphs (%d)",
			c.Segmentation.MinParagraphs, c.Segmentation.MaxParagraphs)
	}
	if c.Segmentation.MinParagraphLength == 0 {
		c.Segmentation.MinParagraphLength = 5
	}
	if c.Segmentation.TargetParagraphs == 0 {
		c.Segmentation.TargetParagraphs = 8
	}
	if c.Segmentation.DropRatio == 0 {
		c.Segmentation.DropRatio = 0.65
	}
	if c.Segmentation.RatioMinGap == 0 {
		c.Segmentation.RatioMinGap = 5
	}
	if c.Embedding.ModelPath == "" {
		c.Embedding.ModelPath = "models/all-mpnet-base-v2/model.onnx"
	}
	if c.Embedding.TokenizerPath == "" {
		c.Embedding.TokenizerPath = "models/all-mpnet-base-v2/tokenizer.json"
	}
	if len(c.Embedding.InputNames) == 0 {
		c.Embedding.InputNames = []string{"input_ids", "attention_mask"}
	}
	if c.Embedding.OutputName == "" {
		c.Embedding.OutputName = "last_hidden_state"
	}
	if c.Embedding.MaxBatchTokens == 0 {
		c.Embedding.MaxBatchTokens = 6000
	}
	if c.Embedding.OpenAIModel == "" {
		c.Embedding.OpenAIModel = "text-embedding-3-small"
	}
	if c.Embedding.BatchSize == 0 {
		c.Embedding.BatchSize = 256
	}
	if c.Keyphrase.TopN == 0 {
		c.Keyphrase.TopN = 3
	}
	if c.Keyphrase.Diversity == 0 {
		c.Keyphrase.Diversity = 0.5
	}
	if c.Keyphrase.MaxNGram == 0 {
		c.Keyphrase.MaxNGram = 3
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash-lite"
	}
	if c.Gemini.MaxPromptTokens == 0 {
		c.Gemini.MaxPromptTokens = 900000
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 7 * 24 * time.Hour
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
