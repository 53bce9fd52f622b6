package httpserver

import (
	"testing"
	"time"
)

func TestRateLimiterBudget(t *testing.T) {
	rl := newRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.allow("login|10.0.0.1") {
			t.Fatalf("attempt %d denied within budget", i+1)
		}
	}
	if rl.allow("login|10.0.0.1") {
		t.Error("attempt over budget was allowed")
	}
	// Other keys have their own budget.
	if !rl.allow("login|10.0.0.2") {
		t.Error("different IP shares the budget")
	}
	if !rl.allow("signup|10.0.0.1") {
		t.Error("different action shares the budget")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := newRateLimiter(1, 10*time.Millisecond)

	if !rl.allow("k") {
		t.Fatal("first attempt denied")
	}
	if rl.allow("k") {
		t.Fatal("second attempt allowed")
	}
	time.Sleep(20 * time.Millisecond)
	if !rl.allow("k") {
		t.Error("attempt after window expiry denied")
	}
}
