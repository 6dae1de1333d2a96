package caseid

import (
	"strings"
	"sync"
	"testing"
	"time"
)

var testCreatedAt = time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)

func TestNew_Format(t *testing.T) {
	id := New(testCreatedAt, "client@example.com")

	if !Valid(id) {
		t.Fatalf("generated id %q does not match the expected format", id)
	}
	if !strings.HasPrefix(id, "DC-20260831-") {
		t.Fatalf("id %q must carry the submission date", id)
	}
}

func TestNew_StableClientComponent(t *testing.T) {
	a := New(testCreatedAt, "client@example.com")
	b := New(testCreatedAt, "  Client@Example.com ")
	c := New(testCreatedAt, "other@example.com")

	clientPart := func(id string) string {
		return strings.Split(id, "-")[2]
	}

	if clientPart(a) != clientPart(b) {
		t.Fatalf("client component must be stable regardless of case and spacing: %q vs %q", a, b)
	}
	if clientPart(a) == clientPart(c) {
		t.Fatalf("different clients produced the same component: %q vs %q", a, c)
	}
}

func TestNew_ConcurrentUniqueness(t *testing.T) {
	const n = 1000

	ids := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- New(testCreatedAt, "client@example.com")
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate case id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) != n {
		t.Fatalf("generated %d unique ids, want %d", len(seen), n)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"DC-20260831-a1b2c3-0f9e8d", true},
		{"DC-20260831-a1b2c3", false},
		{"dc-20260831-a1b2c3-0f9e8d", false},
		{"DC-20260831-A1B2C3-0F9E8D", false},
		{"../etc/passwd", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.id); got != tt.want {
			t.Fatalf("Valid(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
