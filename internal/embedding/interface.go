package embedding

import (
	"context"
	"errors"
	"io"
)

// ErrUnavailable is returned by providers that cannot embed in this process.
var ErrUnavailable = errors.New("embedding provider unavailable")

// Provider maps sentences to L2-normalized vectors, one per sentence, in order.
type Provider interface {
	Name() string
	Embed(ctx context.Context, sentences []string) ([][]float32, error)
}

// Unavailable stands in for a provider that could not be constructed.
type Unavailable struct {
	Reason string
}

func (u Unavailable) Name() string { return "unavailable" }

func (u Unavailable) Embed(context.Context, []string) ([][]float32, error) {
	return nil, ErrUnavailable
}

func (u Unavailable) String() string { return u.Reason }

// IsAvailable reports whether p can produce embeddings.
func IsAvailable(p Provider) bool {
	switch p.(type) {
	case nil, Unavailable, *Unavailable:
		return false
	}
	return true
}

// Close releases p's resources if it holds any.
func Close(p Provider) error {
	if c, ok := p.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
