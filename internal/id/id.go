package id

import (
	"sync"

	"github.com/google/uuid"
)

// TokenLength is the length of a canonical token.
const TokenLength = 36

// Provider returns a new canonical token on each call.
type Provider func() string

// UUID is the random token source backing Default.
func UUID() string {
	return uuid.NewString()
}

// Default is the provider used when none is configured.
var Default Provider = UUID

// Fixed returns a provider that always yields token.
func Fixed(token string) Provider {
	return func() string { return token }
}

// Sequence returns a provider that yields tokens in order and then wraps
// around. An empty sequence falls back to UUID.
func Sequence(tokens ...string) Provider {
	if len(tokens) == 0 {
		return UUID
	}
	var (
		mu   sync.Mutex
		next int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		t := tokens[next%len(tokens)]
		next++
		return t
	}
}

// IsCanonical reports whether s is a canonical lowercase hyphenated UUID.
func IsCanonical(s string) bool {
	if len(s) != TokenLength {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.String() == s
}
