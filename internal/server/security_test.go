package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	// 5 reqs/sec, 10 reqs/min, 1s ban
	rl := NewRateLimiter(5, 10, 1*time.Second)
	ip := "127.0.0.1"

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow(ip), "request %d should be allowed", i)
	}

	// 6th request trips the per-second limit
	assert.False(t, rl.Allow(ip))
	assert.True(t, rl.IsBanned(ip))
}

func TestRateLimiter_BanExpires(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(2, 50, 200*time.Millisecond)
	ip := "192.168.1.1"

	assert.True(t, rl.Allow(ip))
	assert.True(t, rl.Allow(ip))
	assert.False(t, rl.Allow(ip))
	require.True(t, rl.IsBanned(ip))

	time.Sleep(1200 * time.Millisecond)

	assert.False(t, rl.IsBanned(ip))
	assert.True(t, rl.Allow(ip))
}

func TestRateLimiter_IndependentIPs(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, 10, time.Second)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "another IP should not share the budget")
}

func TestOriginChecker(t *testing.T) {
	t.Parallel()

	oc := NewOriginChecker([]string{"https://example.com"})

	allowed := &http.Request{Header: http.Header{"Origin": {"https://example.com"}}}
	assert.True(t, oc.Check(allowed))

	mixedCase := &http.Request{Header: http.Header{"Origin": {"https://EXAMPLE.com"}}}
	assert.True(t, oc.Check(mixedCase))

	denied := &http.Request{Header: http.Header{"Origin": {"https://evil.com"}}}
	assert.False(t, oc.Check(denied))

	// No Origin header: same-origin or native client
	noOrigin := &http.Request{Header: http.Header{}}
	assert.True(t, oc.Check(noOrigin))
}

func TestOriginChecker_Wildcard(t *testing.T) {
	t.Parallel()

	oc := NewOriginChecker([]string{"*"})
	req := &http.Request{Header: http.Header{"Origin": {"https://anything.io"}}}
	assert.True(t, oc.Check(req))
}

func TestIPFilter(t *testing.T) {
	t.Parallel()

	f := NewIPFilter()
	assert.True(t, f.IsAllowed("1.2.3.4"))

	f.AddToBlacklist("1.2.3.4")
	assert.False(t, f.IsAllowed("1.2.3.4"))

	// Whitelist mode: only listed IPs pass
	f2 := NewIPFilter()
	f2.AddToWhitelist("10.0.0.1")
	assert.True(t, f2.IsAllowed("10.0.0.1"))
	assert.False(t, f2.IsAllowed("10.0.0.2"))
}

func TestMessageRateLimiter(t *testing.T) {
	t.Parallel()

	ml := NewMessageRateLimiter(4)
	id := "client-1"

	for i := 0; i < 4; i++ {
		allowed, _ := ml.AllowMessage(id)
		assert.True(t, allowed, "message %d should be allowed", i)
	}

	allowed, warning := ml.AllowMessage(id)
	assert.False(t, allowed)
	assert.True(t, warning)
	assert.Equal(t, 1, ml.GetWarningCount(id))

	ml.RemoveClient(id)
	assert.Equal(t, 0, ml.GetWarningCount(id))
}

func TestChatRateLimiter(t *testing.T) {
	t.Parallel()

	cl := NewChatRateLimiter(3, 200*time.Millisecond)
	id := "client-1"

	for i := 0; i < 3; i++ {
		allowed, reason := cl.AllowChat(id)
		assert.True(t, allowed, "chat %d should be allowed", i)
		assert.Empty(t, reason)
	}

	allowed, reason := cl.AllowChat(id)
	assert.False(t, allowed)
	assert.NotEmpty(t, reason)

	// Still blocked during cooldown
	allowed, _ = cl.AllowChat(id)
	assert.False(t, allowed)

	cl.RemoveClient(id)
	allowed, _ = cl.AllowChat(id)
	assert.True(t, allowed, "a fresh record should be allowed again")
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "from RemoteAddr",
			remoteAddr: "192.168.1.5:52000",
			expected:   "192.168.1.5",
		},
		{
			name:       "X-Forwarded-For takes first hop",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			expected:   "203.0.113.7",
		},
		{
			name:       "X-Real-IP fallback",
			remoteAddr: "10.0.0.1:80",
			headers:    map[string]string{"X-Real-IP": "203.0.113.9"},
			expected:   "203.0.113.9",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := &http.Request{RemoteAddr: tt.remoteAddr, Header: http.Header{}}
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, GetClientIP(req))
		})
	}
}
