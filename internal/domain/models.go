// Package domain defines the GORM mappings for the companion app tables that
// the dashboard reads. The dashboard never writes to these tables; the models
// exist so queries and tests share one description of the schema, and so a
// local SQLite database can be created with AutoMigrate.
package domain

import "time"

// Message roles stored in conversations.message_role.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Story ending types stored in story_progress.ending_type.
const (
	EndingGood   = "Good"
	EndingBad    = "Bad"
	EndingNormal = "Normal"
)

// Affinity is the per-(user, character) relationship score.
//
// Fields:
//   - UserID / CharacterName: composite key.
//   - EmotionScore: accumulated affinity.
//   - DailyMessageCount: messages sent to the character today.
type Affinity struct {
	UserID            string `json:"user_id"             gorm:"type:varchar(64);primaryKey"`
	CharacterName     string `json:"character_name"      gorm:"type:varchar(64);primaryKey"`
	EmotionScore      int    `json:"emotion_score"       gorm:"not null;default:0"`
	DailyMessageCount int    `json:"daily_message_count" gorm:"not null;default:0"`
}

// TableName returns the database table name for Affinity.
func (Affinity) TableName() string { return "affinity" }

// AffinityEvent is one incremental change to an affinity score.
type AffinityEvent struct {
	ID            uint      `json:"id"             gorm:"primaryKey"`
	UserID        string    `json:"user_id"        gorm:"type:varchar(64);not null;index"`
	CharacterName string    `json:"character_name" gorm:"type:varchar(64);not null"`
	ScoreDelta    int       `json:"score_delta"    gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"     gorm:"index"`
}

// TableName returns the database table name for AffinityEvent.
func (AffinityEvent) TableName() string { return "affinity_events" }

// Conversation is a single message in the append-only chat log.
type Conversation struct {
	ID            uint      `json:"id"             gorm:"primaryKey"`
	UserID        string    `json:"user_id"        gorm:"type:varchar(64);not null;index:idx_conv_user_time,priority:1"`
	CharacterName string    `json:"character_name" gorm:"type:varchar(64);not null"`
	MessageRole   string    `json:"message_role"   gorm:"type:varchar(16);not null"`
	Content       string    `json:"content"        gorm:"type:text"`
	TokenCount    int       `json:"token_count"    gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"     gorm:"index:idx_conv_user_time,priority:2"`
}

// TableName returns the database table name for Conversation.
func (Conversation) TableName() string { return "conversations" }

// UserCard is a collectible card owned by a user. The rarity tier is encoded
// inside CardID and derived at query time.
type UserCard struct {
	ID            uint      `json:"id"             gorm:"primaryKey"`
	UserID        string    `json:"user_id"        gorm:"type:varchar(64);not null;index"`
	CardID        string    `json:"card_id"        gorm:"type:varchar(64);not null"`
	CharacterName string    `json:"character_name" gorm:"type:varchar(64);not null"`
	AcquiredAt    time.Time `json:"acquired_at"`
}

// TableName returns the database table name for UserCard.
func (UserCard) TableName() string { return "user_cards" }

// LoginStreak tracks consecutive daily logins.
type LoginStreak struct {
	UserID        string    `json:"user_id"         gorm:"type:varchar(64);primaryKey"`
	CurrentStreak int       `json:"current_streak"  gorm:"not null;default:0"`
	LastLoginDate time.Time `json:"last_login_date"`
}

// TableName returns the database table name for LoginStreak.
func (LoginStreak) TableName() string { return "user_login_streaks" }

// UserGift is a gift granted to a user.
type UserGift struct {
	ID       uint   `json:"id"       gorm:"primaryKey"`
	UserID   string `json:"user_id"  gorm:"type:varchar(64);not null;index"`
	GiftID   string `json:"gift_id"  gorm:"type:varchar(64);not null"`
	Quantity int    `json:"quantity" gorm:"not null;default:1"`
}

// TableName returns the database table name for UserGift.
func (UserGift) TableName() string { return "user_gifts" }

// UserKeyword is a keyword the companion extracted from a conversation.
type UserKeyword struct {
	ID            uint   `json:"id"             gorm:"primaryKey"`
	UserID        string `json:"user_id"        gorm:"type:varchar(64);not null;index"`
	CharacterName string `json:"character_name" gorm:"type:varchar(64);not null"`
	KeywordType   string `json:"keyword_type"   gorm:"type:varchar(32);not null"`
	KeywordValue  string `json:"keyword_value"  gorm:"type:varchar(255);not null"`
	Context       string `json:"context"        gorm:"type:text"`
}

// TableName returns the database table name for UserKeyword.
func (UserKeyword) TableName() string { return "user_keywords" }

// UserNickname is the name a character uses for a user.
type UserNickname struct {
	ID            uint   `json:"id"             gorm:"primaryKey"`
	UserID        string `json:"user_id"        gorm:"type:varchar(64);not null;index"`
	CharacterName string `json:"character_name" gorm:"type:varchar(64);not null"`
	Nickname      string `json:"nickname"       gorm:"type:varchar(64);not null"`
}

// TableName returns the database table name for UserNickname.
func (UserNickname) TableName() string { return "user_nicknames" }

// Episode is a summarized conversation episode. The column is named
// "character" in the store, so raw SQL must quote it.
type Episode struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:varchar(64);not null;index"`
	Character string    `json:"character"  gorm:"column:character;type:varchar(64);not null"`
	Summary   string    `json:"summary"    gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the database table name for Episode.
func (Episode) TableName() string { return "episodes" }

// StoryProgress records a completed story chapter and the choice made.
type StoryProgress struct {
	ID             uint      `json:"id"              gorm:"primaryKey"`
	UserID         string    `json:"user_id"         gorm:"type:varchar(64);not null;index"`
	CharacterName  string    `json:"character_name"  gorm:"type:varchar(64);not null"`
	ChapterNumber  int       `json:"chapter_number"  gorm:"not null"`
	CompletedAt    time.Time `json:"completed_at"`
	SelectedChoice string    `json:"selected_choice" gorm:"type:varchar(255)"`
	EndingType     string    `json:"ending_type"     gorm:"type:varchar(16)"`
}

// TableName returns the database table name for StoryProgress.
func (StoryProgress) TableName() string { return "story_progress" }

// QuestClaim records that a user claimed a quest reward.
type QuestClaim struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	UserID    string    `json:"user_id"    gorm:"type:varchar(64);not null;index"`
	QuestID   string    `json:"quest_id"   gorm:"type:varchar(64);not null;index"`
	ClaimedAt time.Time `json:"claimed_at" gorm:"index"`
}

// TableName returns the database table name for QuestClaim.
func (QuestClaim) TableName() string { return "quest_claims" }

// MemorySummary is the AI-generated long-term memory for a user/character pair.
type MemorySummary struct {
	ID            uint      `json:"id"             gorm:"primaryKey"`
	UserID        string    `json:"user_id"        gorm:"type:varchar(64);not null;index"`
	CharacterName string    `json:"character_name" gorm:"type:varchar(64);not null"`
	Summary       string    `json:"summary"        gorm:"type:text"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName returns the database table name for MemorySummary.
func (MemorySummary) TableName() string { return "memory_summaries" }

// SpamMessage is a message the chat filter flagged as spam.
type SpamMessage struct {
	ID            uint      `json:"id"             gorm:"primaryKey"`
	UserID        string    `json:"user_id"        gorm:"type:varchar(64);not null;index"`
	CharacterName string    `json:"character_name" gorm:"type:varchar(64)"`
	Message       string    `json:"message"        gorm:"type:text"`
	Reason        string    `json:"reason"         gorm:"type:varchar(64)"`
	CreatedAt     time.Time `json:"created_at"     gorm:"index"`
}

// TableName returns the database table name for SpamMessage.
func (SpamMessage) TableName() string { return "spam_messages" }

// All returns every model, in migration order.
func All() []any {
	return []any{
		&Affinity{}, &AffinityEvent{}, &Conversation{}, &UserCard{},
		&LoginStreak{}, &UserGift{}, &UserKeyword{}, &UserNickname{},
		&Episode{}, &StoryProgress{}, &QuestClaim{}, &MemorySummary{},
		&SpamMessage{},
	}
}
