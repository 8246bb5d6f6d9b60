// ABOUTME: Retry utilities for embedding and generation API calls
// ABOUTME: Exponential backoff with jitter, shared by the LLM client
package util

import (
	"math/rand/v2"
	"time"
)

// CalculateBackoff returns exponential backoff with jitter for the given
// attempt number. Attempt 0 (the first try) gets no delay. The delay doubles
// each attempt, capped at 30 seconds, with random jitter of up to 25%.
func CalculateBackoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
