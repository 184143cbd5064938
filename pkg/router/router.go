package router

import (
	"sync"
	"time"
)

// CircuitState represents the state of a circuit breaker
type CircuitState int

const (
	CircuitClosed   CircuitState = iota // Normal operation
	CircuitOpen                         // Failing, rejecting requests
	CircuitHalfOpen                     // Testing if recovered
)

const (
	DefaultFailureThreshold = 5
	DefaultRecoveryTimeout  = 30 * time.Second
)

// ProviderStats tracks health metrics for a single upstream provider
type ProviderStats struct {
	mu sync.RWMutex

	totalRequests int64
	totalFailures int64

	state               CircuitState
	consecutiveFailures int
	lastFailure         time.Time
}

func NewProviderStats() *ProviderStats {
	return &ProviderStats{
		state: CircuitClosed,
	}
}

// IsAvailable checks if the provider is available for requests.
// Transitions Open -> HalfOpen once the recovery timeout has passed.
func (s *ProviderStats) IsAvailable(recoveryTimeout time.Duration) bool {
	s.mu.RLock()
	state := s.state
	lastFailure := s.lastFailure
	s.mu.RUnlock()

	if state != CircuitOpen {
		return true
	}

	if time.Since(lastFailure) >= recoveryTimeout {
		s.mu.Lock()
		if s.state == CircuitOpen {
			s.state = CircuitHalfOpen
		}
		s.mu.Unlock()
		return true
	}

	return false
}

// GetMetrics returns current metrics in a thread-safe manner
func (s *ProviderStats) GetMetrics() (state CircuitState, totalRequests, totalFailures int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state, s.totalRequests, s.totalFailures
}

// RecordSuccess updates stats after a successful request
func (s *ProviderStats) RecordSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalRequests++
	s.consecutiveFailures = 0

	if s.state == CircuitHalfOpen {
		s.state = CircuitClosed
	}
}

// RecordFailure updates stats after a failed request
func (s *ProviderStats) RecordFailure(failureThreshold int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalRequests++
	s.totalFailures++
	s.consecutiveFailures++
	s.lastFailure = time.Now()

	if s.state == CircuitHalfOpen || s.consecutiveFailures >= failureThreshold {
		s.state = CircuitOpen
	}
}

// GetLastFailure returns the last failure time in a thread-safe manner
func (s *ProviderStats) GetLastFailure() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastFailure
}
