package services

import (
	"fmt"

	"arcade-score-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DefaultRecentSessions is how many games the dashboard shows.
const DefaultRecentSessions = 10

type StatsService struct {
	DB     *gorm.DB
	AIPerf *AIPerformanceService
}

func NewStatsService(db *gorm.DB, aiPerf *AIPerformanceService) *StatsService {
	return &StatsService{DB: db, AIPerf: aiPerf}
}

// UserGameStats summarizes one player's history for a single game type.
// Derived on demand, never persisted.
type UserGameStats struct {
	GamesPlayed  int64   `json:"games_played"`
	HighScore    int64   `json:"high_score"`
	AverageScore float64 `json:"average_score"`
}

// ComputeUserStats recomputes count, max and mean from the raw sessions on
// every call. Zero values when the player has no matching sessions. Pure
// read, no rounding — display formatting is the client's concern.
func (s *StatsService) ComputeUserStats(externalUserID, gameType string) (UserGameStats, error) {
	var stats UserGameStats
	err := s.DB.Model(&models.GameSession{}).
		Select("COUNT(*) AS games_played, COALESCE(MAX(score), 0) AS high_score, COALESCE(AVG(score), 0) AS average_score").
		Where("external_user_id = ? AND game_type = ?", externalUserID, gameType).
		Scan(&stats).Error
	if err != nil {
		return UserGameStats{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return stats, nil
}

// RecentSessions returns the player's newest sessions across both game
// types, newest first. Equal timestamps fall back to id so the order is
// stable across calls.
func (s *StatsService) RecentSessions(externalUserID string, limit int) ([]models.GameSession, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultRecentSessions
	}
	var sessions []models.GameSession
	err := s.DB.Where("external_user_id = ?", externalUserID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return sessions, nil
}

// Dashboard assembles everything the player dashboard renders: per-game
// stats, the last 10 games, and the AI performance table.
func (s *StatsService) Dashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing user context"})
	}

	tetrisStats, err := s.ComputeUserStats(userID, models.GameTypeTetris)
	if err != nil {
		return respondServiceError(c, err)
	}
	snakeStats, err := s.ComputeUserStats(userID, models.GameTypeSnake)
	if err != nil {
		return respondServiceError(c, err)
	}
	recent, err := s.RecentSessions(userID, DefaultRecentSessions)
	if err != nil {
		return respondServiceError(c, err)
	}
	aiPerformance, err := s.AIPerf.ListSummaries()
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"tetris_stats":   tetrisStats,
		"snake_stats":    snakeStats,
		"recent_games":   recent,
		"ai_performance": aiPerformance,
	})
}
