package ratelimit_test

import (
	"testing"
	"time"

	"github.com/parceltrack/parceltrack/pkg/ratelimit"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(clock *fakeClock) *ratelimit.Guard {
	logger := logrus.New()
	return ratelimit.NewGuard(logger, newTestLimiter(clock))
}

func TestGuard_UnknownOperationFallsBackToDefault(t *testing.T) {
	guard := newTestGuard(newFakeClock())

	res := guard.Admit("unregistered-op", "user1")
	assert.True(t, res.Allowed)

	defaultPolicy := guard.PolicyFor("unregistered-op")
	assert.Equal(t, time.Minute, defaultPolicy.Window)
	assert.Equal(t, 60, defaultPolicy.Quota)
	assert.Equal(t, defaultPolicy.Quota-1, res.Remaining)
}

func TestGuard_TierShape(t *testing.T) {
	guard := newTestGuard(newFakeClock())

	defaultPolicy := guard.PolicyFor("shipments:list")
	write := guard.PolicyFor(ratelimit.OpCreateShipment)
	auth := guard.PolicyFor(ratelimit.OpLogin)
	sync := guard.PolicyFor(ratelimit.OpSyncIntegration)

	// Writes stricter than reads, auth stricter than writes, sync has the
	// smallest quota over the longest window.
	assert.Greater(t, defaultPolicy.Quota, write.Quota)
	assert.Greater(t, write.Quota, auth.Quota)
	assert.Greater(t, auth.Quota, sync.Quota)
	assert.Greater(t, sync.Window, auth.Window)
}

func TestGuard_OperationsDoNotInterfere(t *testing.T) {
	clock := newFakeClock()
	guard := newTestGuard(clock)

	for i := 0; i < 5; i++ {
		res := guard.Admit(ratelimit.OpLogin, "user1")
		require.True(t, res.Allowed)
	}
	res := guard.Admit(ratelimit.OpLogin, "user1")
	require.False(t, res.Allowed)

	// Same caller, different operation: separate window.
	res = guard.Admit(ratelimit.OpCreateShipment, "user1")
	assert.True(t, res.Allowed)
}

func TestGuard_PerResourceCallerKey(t *testing.T) {
	clock := newFakeClock()
	guard := newTestGuard(clock)

	keyA := "user1:integration-a"
	keyB := "user1:integration-b"

	guard.Admit(ratelimit.OpSyncIntegration, keyA)
	guard.Admit(ratelimit.OpSyncIntegration, keyA)
	res := guard.Admit(ratelimit.OpSyncIntegration, keyA)
	require.False(t, res.Allowed)

	res = guard.Admit(ratelimit.OpSyncIntegration, keyB)
	assert.True(t, res.Allowed, "per-resource keys must be independent")
}

func TestGuard_ApplyOverrides(t *testing.T) {
	clock := newFakeClock()
	guard := newTestGuard(clock)

	guard.ApplyOverrides(map[string]interface{}{
		"write": map[string]interface{}{"window": "30s", "quota": 2},
	})

	policy := guard.PolicyFor(ratelimit.OpCreateShipment)
	assert.Equal(t, 30*time.Second, policy.Window)
	assert.Equal(t, 2, policy.Quota)

	guard.Admit(ratelimit.OpCreateShipment, "user1")
	guard.Admit(ratelimit.OpCreateShipment, "user1")
	res := guard.Admit(ratelimit.OpCreateShipment, "user1")
	assert.False(t, res.Allowed)
}

func TestGuard_ApplyOverridesIgnoresBadEntries(t *testing.T) {
	guard := newTestGuard(newFakeClock())

	guard.ApplyOverrides(map[string]interface{}{
		"nope":    map[string]interface{}{"window": "1m", "quota": 1},
		"auth":    map[string]interface{}{"window": "not-a-duration", "quota": 1},
		"sync":    map[string]interface{}{"window": "1m", "quota": 0},
		"default": "not-a-map",
	})

	// All entries were rejected, built-in tiers remain.
	assert.Equal(t, 5, guard.PolicyFor(ratelimit.OpLogin).Quota)
	assert.Equal(t, 2, guard.PolicyFor(ratelimit.OpSyncIntegration).Quota)
	assert.Equal(t, 60, guard.PolicyFor("anything").Quota)
}

func TestGuard_RetryAfter(t *testing.T) {
	guard := newTestGuard(newFakeClock())

	assert.Equal(t, 60, guard.RetryAfter(ratelimit.OpLogin))
	assert.Equal(t, 300, guard.RetryAfter(ratelimit.OpSyncIntegration))
	assert.Equal(t, 60, guard.RetryAfter("unregistered-op"))
}
