package services

import (
	"fmt"

	"arcade-score-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DefaultLeaderboardSize is the top-N cutoff the leaderboard page uses.
const DefaultLeaderboardSize = 10

type LeaderboardService struct {
	DB *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{DB: db}
}

// LeaderboardEntry is one ranked row, projected for display.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// TopSessions ranks every session of one game type across all players by
// score descending, truncated to n. Equal scores order by session creation
// (earliest first, then id) so repeated reads over unchanged data return
// the same ranking. Pure read.
func (s *LeaderboardService) TopSessions(gameType string, n int) ([]LeaderboardEntry, error) {
	if !validGameType(gameType) {
		return nil, fmt.Errorf("%w: unknown game type %q", ErrInvalidPayload, gameType)
	}
	if n <= 0 {
		n = DefaultLeaderboardSize
	}

	var entries []LeaderboardEntry
	err := s.DB.Raw(`
		SELECT p.username, gs.score
		FROM game_sessions gs
		INNER JOIN players p ON p.external_user_id = gs.external_user_id
		WHERE gs.game_type = ? AND p.deleted_at IS NULL
		ORDER BY gs.score DESC, gs.created_at ASC, gs.id ASC
		LIMIT ?
	`, gameType, n).Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return entries, nil
}

// GetLeaderboard returns the top 10 for both game types in one response,
// matching what the leaderboard page renders.
func (s *LeaderboardService) GetLeaderboard(c *fiber.Ctx) error {
	tetrisLeaders, err := s.TopSessions(models.GameTypeTetris, DefaultLeaderboardSize)
	if err != nil {
		return respondServiceError(c, err)
	}
	snakeLeaders, err := s.TopSessions(models.GameTypeSnake, DefaultLeaderboardSize)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"tetris_leaders": tetrisLeaders,
		"snake_leaders":  snakeLeaders,
	})
}

// GetTopForGame returns the leaderboard for a single game type, with an
// optional ?limit= override.
func (s *LeaderboardService) GetTopForGame(c *fiber.Ctx) error {
	gameType := c.Params("game_type")
	limit := c.QueryInt("limit", DefaultLeaderboardSize)
	if limit > 100 {
		limit = 100
	}

	entries, err := s.TopSessions(gameType, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"game_type": gameType,
		"leaders":   entries,
	})
}
