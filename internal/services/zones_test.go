package services

import (
	"testing"
	"time"

	"github.com/tbourn/companion-insights/internal/config"
)

func TestNewZones_DefaultsAndOverrides(t *testing.T) {
	z, err := NewZones(config.TimeConfig{
		FixedOffset:   "+09:00",
		StoreTimezone: "UTC",
		Overrides:     map[string]string{OpRetention: "fixed", "no_such_op": "fixed"},
	})
	if err != nil {
		t.Fatalf("NewZones: %v", err)
	}

	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	if _, off := at.In(z.For(OpDailyAffinityGain)).Zone(); off != 9*3600 {
		t.Fatalf("daily_affinity_gain should default to fixed +9, got offset %d", off)
	}
	if z.For(OpActiveUserTrend) != z.Store {
		t.Fatalf("active_user_trend should default to store zone")
	}
	if z.Policy(OpRetention) != PolicyFixed {
		t.Fatalf("override not applied to retention")
	}
	if z.Policy("no_such_op") != PolicyStore {
		t.Fatalf("unknown ops fall back to store")
	}

	eff := z.Effective()
	if len(eff) != len(DefaultPolicies) {
		t.Fatalf("expected %d effective entries, got %v", len(DefaultPolicies), eff)
	}
	if eff[0] != "active_user_trend=store" {
		t.Fatalf("expected sorted output, got %v", eff)
	}
}

func TestNewZones_Errors(t *testing.T) {
	if _, err := NewZones(config.TimeConfig{FixedOffset: "9", StoreTimezone: "UTC"}); err == nil {
		t.Fatal("expected error for bad offset")
	}
	if _, err := NewZones(config.TimeConfig{FixedOffset: "+09:00", StoreTimezone: "Mars/Olympus"}); err == nil {
		t.Fatal("expected error for unknown store timezone")
	}
	bad := config.TimeConfig{FixedOffset: "+09:00", StoreTimezone: "UTC", Overrides: map[string]string{OpRetention: "lunar"}}
	if _, err := NewZones(bad); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}
