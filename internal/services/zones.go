package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tbourn/companion-insights/internal/config"
)

// Policy names a time-zone anchoring for "today" and calendar-day buckets.
type Policy string

const (
	// PolicyFixed anchors days to the configured fixed UTC offset.
	PolicyFixed Policy = "fixed"
	// PolicyStore anchors days to the store's local calendar.
	PolicyStore Policy = "store"
)

// Time-dependent operations, as named in TZ_POLICY_OVERRIDES.
const (
	OpDailyAffinityGain  = "daily_affinity_gain"
	OpQuestCompletion    = "quest_completion"
	OpQuestClaimTrend    = "quest_claim_trend"
	OpRetention          = "retention"
	OpActiveUserTrend    = "active_user_trend"
	OpDailyMessageCounts = "daily_message_counts"
	OpUserWeekWindow     = "user_week_window"
)

// DefaultPolicies is the anchoring each operation uses unless overridden.
var DefaultPolicies = map[string]Policy{
	OpDailyAffinityGain:  PolicyFixed,
	OpQuestCompletion:    PolicyFixed,
	OpQuestClaimTrend:    PolicyFixed,
	OpRetention:          PolicyStore,
	OpActiveUserTrend:    PolicyStore,
	OpDailyMessageCounts: PolicyStore,
	OpUserWeekWindow:     PolicyStore,
}

// Zones resolves the location each operation computes its days in.
type Zones struct {
	Fixed    *time.Location
	Store    *time.Location
	policies map[string]Policy
}

// NewZones builds the zone table from configuration. Overrides for unknown
// operations are ignored with a warning.
func NewZones(cfg config.TimeConfig) (*Zones, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("time zones: %w", err)
	}
	off, _ := config.ParseOffset(cfg.FixedOffset)
	store, _ := time.LoadLocation(cfg.StoreTimezone)

	z := &Zones{
		Fixed:    time.FixedZone("UTC"+cfg.FixedOffset, off),
		Store:    store,
		policies: make(map[string]Policy, len(DefaultPolicies)),
	}
	for op, p := range DefaultPolicies {
		z.policies[op] = p
	}
	for op, p := range cfg.Overrides {
		if _, known := DefaultPolicies[op]; !known {
			log.Warn().Str("op", op).Msg("ignoring time-zone override for unknown operation")
			continue
		}
		z.policies[op] = Policy(p)
	}
	return z, nil
}

// Policy returns the policy in effect for op. Unknown operations use the
// store calendar.
func (z *Zones) Policy(op string) Policy {
	if p, ok := z.policies[op]; ok {
		return p
	}
	return PolicyStore
}

// For returns the location op computes its days in.
func (z *Zones) For(op string) *time.Location {
	if z.Policy(op) == PolicyFixed {
		return z.Fixed
	}
	return z.Store
}

// Effective lists every operation with its policy, sorted by operation name.
// It is logged at startup so the anchoring of each report is visible.
func (z *Zones) Effective() []string {
	out := make([]string, 0, len(z.policies))
	for op, p := range z.policies {
		out = append(out, op+"="+string(p))
	}
	sort.Strings(out)
	return out
}
