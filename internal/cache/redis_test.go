package cache

import (
	"context"
	"testing"

	"github.com/techmarket-api/internal/config"
)

func TestInitRedisDisabled(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	if Enabled() {
		t.Fatalf("redis should be disabled")
	}
	if Client() != nil {
		t.Fatalf("disabled redis should not expose a client")
	}
	if err := Ping(context.Background()); err != nil {
		t.Fatalf("ping on disabled redis should be a no-op, got %v", err)
	}
}

func TestKeyJoinsPrefix(t *testing.T) {
	old := redisPrefix
	redisPrefix = "shop"
	t.Cleanup(func() { redisPrefix = old })

	if got := Key("rate_limit", " login ", ""); got != "shop:rate_limit:login" {
		t.Fatalf("key want shop:rate_limit:login got %s", got)
	}
	if got := Key(); got != "shop" {
		t.Fatalf("empty key want shop got %s", got)
	}
}
