package fetch

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// RateLimiter enforces a fixed minimum spacing between requests to a host.
// The interval is unconditional: it applies whether the previous request
// succeeded or failed, so no two fetches to the same host ever start within
// one interval of each other.
type RateLimiter struct {
	hostLastRequest   map[string]time.Time // hostname -> last request attempt time
	hostLastRequestMu sync.Mutex           // Protects hostLastRequest map
	interval          time.Duration
	log               *logrus.Entry
}

// NewRateLimiter creates a RateLimiter with the given fixed interval.
func NewRateLimiter(interval time.Duration, log *logrus.Entry) *RateLimiter {
	return &RateLimiter{
		hostLastRequest: make(map[string]time.Time),
		interval:        interval,
		log:             log,
	}
}

// Wait sleeps until a full interval has passed since the last request
// attempt to host. The first request to a host proceeds immediately.
func (rl *RateLimiter) Wait(host string) {
	if rl.interval <= 0 {
		return
	}

	rl.hostLastRequestMu.Lock()
	lastReqTime, exists := rl.hostLastRequest[host]
	rl.hostLastRequestMu.Unlock() // Unlock before potentially sleeping

	if !exists {
		return
	}

	elapsed := time.Since(lastReqTime)
	if elapsed < rl.interval {
		sleepDuration := rl.interval - elapsed
		rl.log.WithFields(logrus.Fields{
			"host": host, "sleep": sleepDuration, "interval": rl.interval,
		}).Debug("Rate limit applying sleep")
		time.Sleep(sleepDuration)
	}
}

// UpdateLastRequestTime records the current time as the last request attempt
// time for the host. Call this after every HTTP request attempt, whether or
// not it succeeded.
func (rl *RateLimiter) UpdateLastRequestTime(host string) {
	rl.hostLastRequestMu.Lock()
	rl.hostLastRequest[host] = time.Now()
	rl.hostLastRequestMu.Unlock()
}
