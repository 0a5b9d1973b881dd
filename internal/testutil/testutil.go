// Package testutil provides testing utilities and helpers for the shoetrack front end.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestingTB is the subset of testing.TB the helpers need.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// envBool parses common truthy values from env vars.
func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

func requireRedis() bool { return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") }

// FixedTimeFunc returns a function that always returns the same time.
func FixedTimeFunc(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}

// TestTime returns a fixed time for testing.
func TestTime() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

// redisCandidates lists the addresses probed when REDIS_ADDR is unset:
// the compose service name first, then the host port used by local runs.
var redisCandidates = []string{"redis:6379", "localhost:6379", "localhost:56379"}

const (
	redisDialTimeout = 2 * time.Second
	redisLockTTL     = 30 * time.Minute
	redisLockPrefix  = "shoetrack:testutil:db:"
)

// SetupTestRedis returns a client on an empty, reserved Redis database.
// The test is skipped when no Redis answers, or fails when TEST_REQUIRE_REDIS is set.
func SetupTestRedis(t interface {
	TestingTB
	Cleanup(func())
}) *redis.Client {
	t.Helper()

	addr, err := findRedis()
	if err != nil {
		if requireRedis() {
			t.Fatalf("redis unavailable: %v", err)
		}
		t.Skipf("redis unavailable: %v", err)
	}

	db := reserveRedisDB(t, addr)
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flush redis db %d: %v", db, err)
	}
	return client
}

func findRedis() (string, error) {
	candidates := redisCandidates
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		candidates = []string{addr}
	}
	var lastErr error
	for _, addr := range candidates {
		if lastErr = pingRedis(addr); lastErr == nil {
			return addr, nil
		}
	}
	return "", lastErr
}

func pingRedis(addr string) error {
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%s: %w", addr, err)
	}
	return nil
}

// reserveRedisDB picks a database for one test so packages running in
// parallel never flush each other's keys. TEST_REDIS_DB pins the choice.
// Reservations are lock keys in DB 0, released when the test ends.
func reserveRedisDB(t interface {
	TestingTB
	Cleanup(func())
}, addr string) int {
	if v := os.Getenv("TEST_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil && db >= 0 {
			return db
		}
	}

	meta := redis.NewClient(&redis.Options{Addr: addr})
	owner := fmt.Sprintf("%d:%d", os.Getpid(), time.Now().UnixNano())
	for db := 1; db <= 15; db++ {
		key := redisLockPrefix + strconv.Itoa(db)
		ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
		ok, err := meta.SetNX(ctx, key, owner, redisLockTTL).Result()
		cancel()
		if err != nil || !ok {
			continue
		}
		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
			defer cancel()
			_ = meta.Del(ctx, key).Err()
			_ = meta.Close()
		})
		return db
	}
	_ = meta.Close()
	t.Logf("no free redis db at %s, sharing db 1", addr)
	return 1
}
