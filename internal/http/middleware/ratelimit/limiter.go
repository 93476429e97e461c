package ratelimit

import "time"

// Limiter decides whether one more request charged to key may pass.
type Limiter interface {
	Allow(key string) bool
}

// Clock is the time source of a limiter.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter lets everything through; used when limiting is switched off.
type NopLimiter struct{}

func (NopLimiter) Allow(string) bool { return true }
