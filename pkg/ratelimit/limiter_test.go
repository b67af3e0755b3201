package ratelimit_test

import (
	"testing"
	"time"

	"opportunityhub/pkg/ratelimit"
)

func TestAllowWithinLimit(t *testing.T) {
	limiter := ratelimit.NewLimiter()

	for i := 0; i < 5; i++ {
		if !limiter.Allow("10.0.0.1", 5, time.Minute) {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if limiter.Allow("10.0.0.1", 5, time.Minute) {
		t.Error("sixth attempt within the window should be blocked")
	}
	if !limiter.Allow("10.0.0.2", 5, time.Minute) {
		t.Error("a different key should not be affected")
	}
}

func TestAllowWindowExpiry(t *testing.T) {
	limiter := ratelimit.NewLimiter()

	if !limiter.Allow("host", 1, 20*time.Millisecond) {
		t.Fatal("first attempt should pass")
	}
	if limiter.Allow("host", 1, 20*time.Millisecond) {
		t.Fatal("second attempt inside the window should block")
	}

	time.Sleep(30 * time.Millisecond)
	if !limiter.Allow("host", 1, 20*time.Millisecond) {
		t.Error("attempt after the window expires should pass")
	}
}

func TestReset(t *testing.T) {
	limiter := ratelimit.NewLimiter()

	limiter.Allow("host", 1, time.Minute)
	if limiter.Allow("host", 1, time.Minute) {
		t.Fatal("second attempt should block")
	}

	limiter.Reset("host")
	if !limiter.Allow("host", 1, time.Minute) {
		t.Error("attempt after reset should pass")
	}
}
