package domain

import "time"

// Result rows returned by the query layer. Every table-shaped result is a
// slice of one of these types; field tags double as the SQL column aliases
// GORM scans into and the JSON keys served to the dashboard.

// Level bucket names, in their semantic order.
const (
	LevelRookie = "Rookie"
	LevelIron   = "Iron"
	LevelBronze = "Bronze"
	LevelSilver = "Silver"
	LevelGold   = "Gold"
)

// LevelOrder is the fixed presentation order of level buckets.
var LevelOrder = []string{LevelRookie, LevelIron, LevelBronze, LevelSilver, LevelGold}

// TierCount is a card count for one rarity tier.
type TierCount struct {
	Tier    string  `json:"tier"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent" gorm:"-"`
}

// CharacterTierCount is a card count for one (character, tier) pair.
type CharacterTierCount struct {
	CharacterName string `json:"character_name"`
	Tier          string `json:"tier"`
	Count         int64  `json:"count"`
}

// LevelStat is the population of one level bucket.
type LevelStat struct {
	Level   string  `json:"level"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

// CharacterCount is a generic per-character counter.
type CharacterCount struct {
	CharacterName string `json:"character_name"`
	Count         int64  `json:"count"`
}

// CharacterAffinity is the summed affinity of one character.
type CharacterAffinity struct {
	CharacterName string `json:"character_name"`
	TotalAffinity int64  `json:"total_affinity"`
	UserCount     int64  `json:"user_count"`
}

// DayCount is a counter for one calendar day (YYYY-MM-DD) or, when the axis
// is relative, for day number Day.
type DayCount struct {
	Date  string `json:"date,omitempty"`
	Day   int    `json:"day,omitempty" gorm:"-"`
	Count int64  `json:"count"`
}

// UserScore is a ranking entry keyed by user.
type UserScore struct {
	UserID string `json:"user_id"`
	Score  int64  `json:"score"`
}

// RankingEntry is a row of the full character or total ranking.
type RankingEntry struct {
	UserID        string `json:"user_id"`
	TotalAffinity int64  `json:"total_affinity"`
	MessageCount  int64  `json:"message_count"`
}

// AffinityGain is today's affinity gain for a (user, character) pair.
type AffinityGain struct {
	UserID        string `json:"user_id"`
	CharacterName string `json:"character_name"`
	Gain          int64  `json:"gain"`
}

// KeywordCount is the frequency of one keyword value.
type KeywordCount struct {
	KeywordType  string `json:"keyword_type"`
	KeywordValue string `json:"keyword_value"`
	Count        int64  `json:"count"`
}

// TypeCount is a counter keyed by an arbitrary label (keyword type, reason,
// ending type, choice).
type TypeCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// QuestCompletion is the completion rate of one quest for today.
type QuestCompletion struct {
	QuestID   string  `json:"quest_id"`
	Completed int64   `json:"completed"`
	Total     int64   `json:"total"`
	Percent   float64 `json:"percent"`
}

// ChapterCount is the completion count of one story chapter.
type ChapterCount struct {
	CharacterName string `json:"character_name"`
	ChapterNumber int    `json:"chapter_number"`
	Count         int64  `json:"count"`
}

// GiftTotal is the granted quantity of one gift.
type GiftTotal struct {
	GiftID     string `json:"gift_id"`
	Quantity   int64  `json:"quantity"`
	Recipients int64  `json:"recipients"`
}

// Retention is the N-day retention of the cohort active N days ago.
type Retention struct {
	Days     int     `json:"days"`
	Retained int64   `json:"retained"`
	Base     int64   `json:"base"`
	Percent  float64 `json:"percent"`
}

// StreakCount is the number of users on a given login streak length.
type StreakCount struct {
	Streak int   `json:"streak"`
	Users  int64 `json:"users"`
}

// UserCardRow is one card of a user with its per-user tier.
type UserCardRow struct {
	CardID        string `json:"card_id"`
	CharacterName string `json:"character_name"`
	Tier          string `json:"tier"`
}

// GiftQuantity is a gift held by a user.
type GiftQuantity struct {
	GiftID   string `json:"gift_id"`
	Quantity int64  `json:"quantity"`
}

// StreakInfo is a user's login streak. Found is false when the user has no
// streak row.
type StreakInfo struct {
	CurrentStreak int       `json:"current_streak"`
	LastLoginDate time.Time `json:"last_login_date"`
	Found         bool      `json:"found" gorm:"-"`
}

// UserSummary bundles every per-user lookup for one user. Sections are
// filled in a fixed order by independent queries, so they may reflect
// slightly different instants.
type UserSummary struct {
	UserID        string           `json:"user_id"`
	Level         string           `json:"level"`
	TotalAffinity int64            `json:"total_affinity"`
	CardCount     int64            `json:"card_count"`
	Messages      []CharacterCount `json:"messages"`
	Affinity      []Affinity       `json:"affinity"`
	CardTiers     []TierCount      `json:"card_tiers"`
	Cards         []UserCardRow    `json:"cards"`
	Streak        StreakInfo       `json:"streak"`
	Gifts         []GiftQuantity   `json:"gifts"`
	Keywords      []UserKeyword    `json:"keywords"`
	Nicknames     []UserNickname   `json:"nicknames"`
	Episodes      []Episode        `json:"episodes"`
	Story         []StoryProgress  `json:"story"`
	WeekMessages  []CharacterCount `json:"week_messages"`
	WeekDaily     []DayCount       `json:"week_daily"`
}

// DashboardStats is the headline block of the overview tab.
type DashboardStats struct {
	TotalMessages int64       `json:"total_messages"`
	TotalAffinity int64       `json:"total_affinity"`
	TotalTokens   int64       `json:"total_tokens"`
	TotalUsers    int64       `json:"total_users"`
	CardTiers     []TierCount `json:"card_tiers"`
	Levels        []LevelStat `json:"levels"`
}
