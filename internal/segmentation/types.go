package segmentation

// Method records which path produced a Result.
type Method string

const (
	MethodSemantic   Method = "semantic"
	MethodGenerative Method = "generative"
	MethodFallback   Method = "fallback"
	MethodBasic      Method = "basic"
)

// Result is the segmentation output: index-aligned paragraphs and titles.
type Result struct {
	Paragraphs [][]string
	Titles     []string
	Method     Method
	// Embeddings holds one unit vector per paragraph when the semantic path ran.
	Embeddings [][]float32
}

// Sentences returns the paragraphs flattened back into sentence order.
func (r Result) Sentences() []string {
	var out []string
	for _, p := range r.Paragraphs {
		out = append(out, p...)
	}
	return out
}

// Strategy names a boundary detection strategy.
type Strategy string

const (
	StrategyElbow Strategy = "elbow"
	StrategyTop   Strategy = "top"
	StrategyRatio Strategy = "ratio"
)

// Options configures the Segmenter.
type Options struct {
	Strategy           Strategy
	MinGap             int
	MinParagraphs      int
	MaxParagraphs      int
	MinParagraphLength int
	TargetParagraphs   int
	DropRatio          float64
	RatioMinGap        int
	ExtractTitles      bool
}

// DefaultOptions returns the elbow strategy with min gap 15 and 5 to 12 paragraphs.
func DefaultOptions() Options {
	return Options{
		Strategy:           StrategyElbow,
		MinGap:             15,
		MinParagraphs:      5,
		MaxParagraphs:      12,
		MinParagraphLength: 5,
		TargetParagraphs:   8,
		DropRatio:          0.65,
		RatioMinGap:        5,
		ExtractTitles:      true,
	}
}
