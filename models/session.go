// models/session.go
package models

import "time"

const (
	GameTypeTetris = "tetris"
	GameTypeSnake  = "snake"
)

// AI opponent difficulty levels. Opaque grouping keys as far as this
// service is concerned — the game clients run the actual opponents.
const (
	AILevelBasic        = 1
	AILevelIntermediate = 2
	AILevelAdvanced     = 3
)

// GameSession is one completed game. Immutable once written — no updates,
// no soft delete.
type GameSession struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	ExternalUserID string    `json:"external_user_id" gorm:"index:idx_sessions_user_game;not null"` // Player.ExternalUserID
	GameType       string    `json:"game_type" gorm:"index:idx_sessions_user_game;index:idx_sessions_game_score,priority:1;not null"`
	Score          int       `json:"score" gorm:"index:idx_sessions_game_score,priority:2;not null"`
	AILevel        int       `json:"ai_level" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
}
