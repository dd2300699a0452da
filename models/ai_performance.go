// models/ai_performance.go
package models

import "time"

// AIPerformance is the rolling summary for one (game type, difficulty)
// pair: the exact mean and count of every score recorded for that pair
// since tracking began. One row per pair, created lazily on the first
// matching session, never deleted.
type AIPerformance struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	GameType        string    `json:"game_type" gorm:"uniqueIndex:idx_ai_game_difficulty;not null"`
	DifficultyLevel int       `json:"difficulty_level" gorm:"uniqueIndex:idx_ai_game_difficulty;not null"`
	AverageScore    float64   `json:"average_score" gorm:"not null"`
	GamesPlayed     int64     `json:"games_played" gorm:"not null"`
	LastUpdated     time.Time `json:"last_updated"`
}
