package provider

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// CacheStatus describes how a provider backed snapshot was served.
type CacheStatus string

const (
	CacheStatusHit     CacheStatus = "hit"
	CacheStatusMiss    CacheStatus = "miss"
	CacheStatusRefresh CacheStatus = "refresh"
	CacheStatusStale   CacheStatus = "stale"
)

// FromCache reports whether the data was served without a successful upstream call.
func (s CacheStatus) FromCache() bool {
	return s == CacheStatusHit || s == CacheStatusStale
}

// RateLimit is the last quota snapshot reported by the provider.
type RateLimit struct {
	RequestsAvailable *int
	ResetSeconds      *int
	ObservedAt        time.Time
}

func (r RateLimit) Exhausted() bool {
	return r.RequestsAvailable != nil && *r.RequestsAvailable <= 0
}

// Status is the result of a provider reachability probe.
type Status struct {
	Configured   bool
	Reachable    bool
	StatusCode   int
	Latency      time.Duration
	CircuitState string
	RateLimit    RateLimit
	CheckedAt    time.Time
	Error        string
}

// UpstreamError is a non-2xx answer from the provider.
type UpstreamError struct {
	StatusCode int
	Message    string
	Path       string
}

func (e *UpstreamError) Error() string {
	message := strings.TrimSpace(e.Message)
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("provider status=%d path=%s: %s", e.StatusCode, e.Path, message)
}

// Reason extracts the message worth showing to a caller: the provider's own
// message for upstream errors, otherwise the error text.
func Reason(err error) string {
	if err == nil {
		return ""
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		if message := strings.TrimSpace(upstreamErr.Message); message != "" {
			return message
		}
		if text := http.StatusText(upstreamErr.StatusCode); text != "" {
			return text
		}
	}

	return err.Error()
}
