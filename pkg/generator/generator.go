package generator

import (
	"github.com/shamikhz/UUID-Generator/internal/id"
)

// BatchSize is the number of identifiers in every batch.
const BatchSize = 5

const (
	v2PrefixLen = 8
	v3PrefixLen = 12
)

// Format applies the display transformation for v to a canonical token.
func Format(v Version, token string) string {
	switch v {
	case V1:
		return "v1-" + token
	case V2:
		return "v2-" + truncate(token, v2PrefixLen)
	case V3:
		return "v3-" + truncate(token, v3PrefixLen)
	default:
		return token
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Generator produces identifier batches from a token provider.
// It holds no mutable state and is safe for concurrent use when its
// provider is.
type Generator struct {
	provider id.Provider
}

// Option configures a Generator.
type Option func(*Generator)

// WithProvider sets the token source. A nil provider is ignored.
func WithProvider(p id.Provider) Option {
	return func(g *Generator) {
		if p != nil {
			g.provider = p
		}
	}
}

// New creates a Generator backed by id.Default unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{provider: id.Default}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns BatchSize identifiers for v, each from its own token.
// It never fails: tags other than v1..v3 fall back to plain v4 tokens.
func (g *Generator) Generate(v Version) []string {
	batch := make([]string, BatchSize)
	for i := range batch {
		batch[i] = Format(v, g.provider())
	}
	return batch
}
