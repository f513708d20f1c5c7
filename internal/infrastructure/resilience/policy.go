package resilience

import "time"

// Policy bounds retries and circuit breaking for one executor. Zero values
// fall back to the defaults, so a partially filled Policy is safe to use.
type Policy struct {
	Attempts      int
	Backoff       time.Duration
	BackoffCap    time.Duration
	BackoffGrowth float64

	BreakerEnabled      bool
	BreakerMinRequests  uint32
	BreakerFailureRatio float64
	BreakerOpenFor      time.Duration
	BreakerProbeCalls   uint32
}

func DefaultPolicy() Policy {
	return Policy{
		Attempts:      3,
		Backoff:       100 * time.Millisecond,
		BackoffCap:    500 * time.Millisecond,
		BackoffGrowth: 2.0,

		BreakerEnabled:      true,
		BreakerMinRequests:  10,
		BreakerFailureRatio: 0.5,
		BreakerOpenFor:      30 * time.Second,
		BreakerProbeCalls:   2,
	}
}

func (p Policy) withDefaults() Policy {
	def := DefaultPolicy()
	if p.Attempts <= 0 {
		p.Attempts = def.Attempts
	}
	if p.Backoff <= 0 {
		p.Backoff = def.Backoff
	}
	if p.BackoffCap < p.Backoff {
		p.BackoffCap = max(p.Backoff, def.BackoffCap)
	}
	if p.BackoffGrowth < 1 {
		p.BackoffGrowth = def.BackoffGrowth
	}
	if p.BreakerMinRequests == 0 {
		p.BreakerMinRequests = def.BreakerMinRequests
	}
	if p.BreakerFailureRatio <= 0 || p.BreakerFailureRatio > 1 {
		p.BreakerFailureRatio = def.BreakerFailureRatio
	}
	if p.BreakerOpenFor <= 0 {
		p.BreakerOpenFor = def.BreakerOpenFor
	}
	if p.BreakerProbeCalls == 0 {
		p.BreakerProbeCalls = def.BreakerProbeCalls
	}
	return p
}
