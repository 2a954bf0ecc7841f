package ratelimit

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

// Policy tiers. Operations are registered against one of these; unknown
// operations fall back to TierDefault so a misconfigured route degrades to
// the generous limit instead of rejecting all traffic.
const (
	TierDefault = "default"
	TierWrite   = "write"
	TierAuth    = "auth"
	TierSync    = "sync"
)

// Operation names used by the route handlers.
const (
	OpRegister          = "auth:register"
	OpLogin             = "auth:login"
	OpCreateShipment    = "shipments:create"
	OpUpdateShipment    = "shipments:update"
	OpDeleteShipment    = "shipments:delete"
	OpAddTrackingEvent  = "tracking:add"
	OpCreateIntegration = "integrations:create"
	OpDeleteIntegration = "integrations:delete"
	OpSyncIntegration   = "integrations:sync"
)

func defaultTiers() map[string]Policy {
	return map[string]Policy{
		TierDefault: {Window: time.Minute, Quota: 60},
		TierWrite:   {Window: time.Minute, Quota: 20},
		TierAuth:    {Window: time.Minute, Quota: 5},
		TierSync:    {Window: 5 * time.Minute, Quota: 2},
	}
}

func defaultOperations() map[string]string {
	return map[string]string{
		OpRegister:          TierAuth,
		OpLogin:             TierAuth,
		OpCreateShipment:    TierWrite,
		OpUpdateShipment:    TierWrite,
		OpDeleteShipment:    TierWrite,
		OpAddTrackingEvent:  TierWrite,
		OpCreateIntegration: TierWrite,
		OpDeleteIntegration: TierWrite,
		OpSyncIntegration:   TierSync,
	}
}

// TierOverride is the YAML shape for a per-tier policy override, e.g.
// {window: "1m", quota: 30}.
type TierOverride struct {
	Window string `mapstructure:"window"`
	Quota  int    `mapstructure:"quota"`
}

// Guard binds named operations to rate-limit policies and exposes the single
// admission decision route handlers call before doing work.
type Guard struct {
	logger     *logrus.Logger
	limiter    *Limiter
	tiers      map[string]Policy
	operations map[string]string
}

func NewGuard(logger *logrus.Logger, limiter *Limiter) *Guard {
	return &Guard{
		logger:     logger,
		limiter:    limiter,
		tiers:      defaultTiers(),
		operations: defaultOperations(),
	}
}

// ApplyOverrides replaces tier policies with values from configuration.
// Unknown tier names and malformed entries are skipped with a warning; a bad
// config entry must never take the limiter down.
func (g *Guard) ApplyOverrides(overrides map[string]interface{}) {
	for tier, raw := range overrides {
		if _, ok := g.tiers[tier]; !ok {
			g.logger.WithField("tier", tier).Warn("ignoring rate limit override for unknown tier")
			continue
		}
		var o TierOverride
		if err := mapstructure.Decode(raw, &o); err != nil {
			g.logger.WithError(err).WithField("tier", tier).Warn("ignoring malformed rate limit override")
			continue
		}
		window, err := time.ParseDuration(o.Window)
		if err != nil || window <= 0 || o.Quota <= 0 {
			g.logger.WithField("tier", tier).Warn("ignoring rate limit override with non-positive window or quota")
			continue
		}
		g.tiers[tier] = Policy{Window: window, Quota: o.Quota}
	}
}

// Admit checks whether the caller identified by callerKey may perform
// operation right now. The identifier handed to the limiter combines both,
// so limits for distinct operations never interfere. callerKey must uniquely
// identify the rate-limited subject (user id, client IP for unauthenticated
// routes, optionally suffixed with a resource id for per-resource limits).
func (g *Guard) Admit(operation, callerKey string) Result {
	return g.limiter.Check(fmt.Sprintf("%s:%s", operation, callerKey), g.PolicyFor(operation))
}

// PolicyFor resolves the policy registered for operation, falling back to the
// default tier for unregistered names.
func (g *Guard) PolicyFor(operation string) Policy {
	tier, ok := g.operations[operation]
	if !ok {
		g.logger.WithField("operation", operation).Warn("no rate limit tier registered for operation, using default")
		tier = TierDefault
	}
	policy, ok := g.tiers[tier]
	if !ok {
		return defaultTiers()[TierDefault]
	}
	return policy
}

// RetryAfter returns the Retry-After header value, in whole seconds, for a
// rejected call against operation's policy.
func (g *Guard) RetryAfter(operation string) int {
	seconds := int(g.PolicyFor(operation).Window.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}
