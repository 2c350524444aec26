package requests

import (
	"leaguedash/pkg/config"
	"sync"
	"time"
)

// Single riot rate limiting window.
type riotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
type RateLimiter struct {
	windows []*riotLimit

	// Fetch interval for the background job.
	// Will be the slowest interval that let all requests be consumed before reseting.
	fetchInterval time.Duration

	// Last fetch and the mutex.
	lastFetch time.Time
	mu        sync.Mutex
}

// CreateRateLimiter creates a instance of the rate limiter for the configured windows.
func CreateRateLimiter(limits config.LimitsConfiguration) *RateLimiter {
	return &RateLimiter{
		windows: []*riotLimit{
			{
				limit:         limits.Lower.Count,
				resetInterval: limits.Lower.ResetInterval,
				lastReset:     time.Now(),
			},
			{
				limit:         limits.Higher.Count,
				resetInterval: limits.Higher.ResetInterval,
				lastReset:     time.Now(),
			},
		},
		fetchInterval: limits.SlowInterval,
		lastFetch:     time.Now(),
	}
}

// Reset the count.
func (r *RateLimiter) resetCounts() {
	now := time.Now()
	// Loop through each window and verify if can reset.
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if the window is on it's limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// WaitApi waits until the next refresh for a on demand request.
func (r *RateLimiter) WaitApi() {
	// Verify if can run the API.
	if r.canRunApi() {
		return
	}

	// Verify if the windows limit wasn't reached.
	r.waitWindowsReset()

	// Verify again the API.
	r.WaitApi()
}

// WaitJob waits until the next job refresh.
func (r *RateLimiter) WaitJob() {
	// Verify if can run the job.
	if r.canRunJob() {
		return
	}

	// Verify if the elapsed time until the next job fetch was reached.
	if time.Since(r.lastFetch) < r.fetchInterval {
		waitTill := r.fetchInterval - time.Since(r.lastFetch)
		time.Sleep(waitTill)
	}

	// Verify if the general limit wasn't already reached.
	r.waitWindowsReset()
	// Verify again for the job.
	r.WaitJob()
}

// Wait until all the rate limit windows are met.
func (r *RateLimiter) waitWindowsReset() {
	// If can't run, see how many time must wait.
	var waitTime time.Duration
	for _, window := range r.windows {
		// If it's not this window that is limited, just continue.
		if window.count < window.limit {
			continue
		}

		// See how many time has elapsed since the last reset.
		elapsed := time.Since(window.lastReset)
		// See how many time till the next reset.
		waitTill := window.resetInterval - elapsed
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	// Wait till next reset.
	time.Sleep(waitTime)
}

// Verify if can run the job/background request.
func (r *RateLimiter) canRunJob() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	// Verify if it's not to early.
	if time.Since(r.lastFetch) < r.fetchInterval {
		return false
	}

	// Verify the limit.
	if !r.checkLimits() {
		return false
	}

	r.incrementCounts()
	r.lastFetch = time.Now()
	return true
}

// Verify if can run the API.
func (r *RateLimiter) canRunApi() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	// Check the limits.
	if !r.checkLimits() {
		return false
	}

	r.incrementCounts()
	return true
}
