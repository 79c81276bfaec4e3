package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	traceIDBytes = 16
	spanIDBytes  = 8
)

// TraceID returns a random 128-bit trace identifier as 32 lowercase hex characters.
func TraceID() string {
	return randomHex(traceIDBytes)
}

// SpanID returns a random 64-bit span identifier as 16 lowercase hex characters.
func SpanID() string {
	return randomHex(spanIDBytes)
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is unusable
		panic(fmt.Errorf("idgen: failed to read random bytes: %w", err))
	}
	return hex.EncodeToString(b)
}
