package cache

import (
	"context"
	"testing"
	"time"

	"github.com/iamselvaperumal/alc-console/internal/core/domain"
)

func TestMemoryProfileCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryProfileCache()

	c.Set(ctx, "tok", &domain.Session{Username: "amy", Role: domain.RoleAdmin}, time.Minute)
	sess, ok := c.Get(ctx, "tok")
	if !ok {
		t.Fatalf("entry missing after set")
	}
	if sess.Username != "amy" || sess.Token != "tok" {
		t.Fatalf("unexpected session: %+v", sess)
	}

	if _, ok := c.Get(ctx, "other"); ok {
		t.Fatalf("unknown token should miss")
	}
}

func TestMemoryProfileCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryProfileCache()

	c.Set(ctx, "tok", &domain.Session{Username: "amy"}, time.Nanosecond)
	time.Sleep(time.Millisecond)
	if _, ok := c.Get(ctx, "tok"); ok {
		t.Fatalf("expired entry served")
	}
}

func TestMemoryProfileCache_NonPositiveTTLIsNoop(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryProfileCache()

	c.Set(ctx, "tok", &domain.Session{Username: "amy"}, 0)
	if _, ok := c.Get(ctx, "tok"); ok {
		t.Fatalf("zero-ttl entry should never be stored")
	}
}

func TestMemoryProfileCache_Delete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryProfileCache()

	c.Set(ctx, "tok", &domain.Session{Username: "amy"}, time.Minute)
	c.Delete(ctx, "tok")
	if _, ok := c.Get(ctx, "tok"); ok {
		t.Fatalf("deleted entry still present")
	}
}
