package domain

import (
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	cases := map[string]interface{ TableName() string }{
		"affinity":           Affinity{},
		"affinity_events":    AffinityEvent{},
		"conversations":      Conversation{},
		"user_cards":         UserCard{},
		"user_login_streaks": LoginStreak{},
		"user_gifts":         UserGift{},
		"user_keywords":      UserKeyword{},
		"user_nicknames":     UserNickname{},
		"episodes":           Episode{},
		"story_progress":     StoryProgress{},
		"quest_claims":       QuestClaim{},
		"memory_summaries":   MemorySummary{},
		"spam_messages":      SpamMessage{},
	}
	for want, m := range cases {
		if got := m.TableName(); got != want {
			t.Fatalf("%T.TableName() = %q; want %q", m, got, want)
		}
	}
}

func TestAll_CoversEveryTable(t *testing.T) {
	if got := len(All()); got != 13 {
		t.Fatalf("All() returned %d models; want 13", got)
	}
}

func TestMigrations_CreateTablesAndIndexes(t *testing.T) {
	db := newDomainDB(t)
	if err := db.AutoMigrate(All()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()
	for _, tbl := range All() {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
	if !m.HasIndex(&Conversation{}, "idx_conv_user_time") {
		t.Fatalf("expected index idx_conv_user_time on conversations")
	}
	// The quoted "character" column must round-trip.
	if !m.HasColumn(&Episode{}, "character") {
		t.Fatalf("expected episodes.character column")
	}
}

func TestLevelOrder_IsSemantic(t *testing.T) {
	want := []string{"Rookie", "Iron", "Bronze", "Silver", "Gold"}
	if len(LevelOrder) != len(want) {
		t.Fatalf("LevelOrder has %d entries; want %d", len(LevelOrder), len(want))
	}
	for i := range want {
		if LevelOrder[i] != want[i] {
			t.Fatalf("LevelOrder[%d] = %q; want %q", i, LevelOrder[i], want[i])
		}
	}
}
