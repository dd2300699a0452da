package services

import (
	"fmt"
	"log"
	"time"

	"arcade-score-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AIPerformanceService struct {
	DB *gorm.DB
}

func NewAIPerformanceService(db *gorm.DB) *AIPerformanceService {
	return &AIPerformanceService{DB: db}
}

// RecordForSummary folds one score into the rolling average for the
// (game type, difficulty) pair: new avg = (old avg * n + score) / (n + 1).
// The whole read-modify-write is pushed into a single upsert statement, so
// two concurrent recorders for the same pair cannot lose an update and no
// retry loop is needed. First session for a pair creates the row.
func (s *AIPerformanceService) RecordForSummary(tx *gorm.DB, gameType string, aiLevel, score int) error {
	now := time.Now()
	perf := models.AIPerformance{
		ID:              uuid.NewString(),
		GameType:        gameType,
		DifficultyLevel: aiLevel,
		AverageScore:    float64(score),
		GamesPlayed:     1,
		LastUpdated:     now,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "game_type"}, {Name: "difficulty_level"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"average_score": gorm.Expr("(average_score * games_played + ?) / (games_played + 1)", score),
			"games_played":  gorm.Expr("games_played + 1"),
			"last_updated":  now,
		}),
	}).Create(&perf).Error
}

// ListSummaries returns every summary row in existence, one per
// (game type, difficulty) pair. Ordered for stable display only — the set
// itself is unordered.
func (s *AIPerformanceService) ListSummaries() ([]models.AIPerformance, error) {
	var perfs []models.AIPerformance
	if err := s.DB.Order("game_type ASC, difficulty_level ASC").Find(&perfs).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return perfs, nil
}

// ReconcileSummaries recomputes every summary directly from the raw
// sessions and overwrites rows the incremental mean has drifted away from.
// The incremental update accumulates floating-point error over many games;
// this is the periodic correction, run by the scheduler, not per request.
func (s *AIPerformanceService) ReconcileSummaries() error {
	type pairStats struct {
		GameType     string
		AILevel      int
		AverageScore float64
		GamesPlayed  int64
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var stats []pairStats
		if err := tx.Model(&models.GameSession{}).
			Select("game_type, ai_level, AVG(score) AS average_score, COUNT(*) AS games_played").
			Group("game_type, ai_level").
			Scan(&stats).Error; err != nil {
			return err
		}

		for _, st := range stats {
			res := tx.Model(&models.AIPerformance{}).
				Where("game_type = ? AND difficulty_level = ?", st.GameType, st.AILevel).
				Where("games_played <> ? OR ABS(average_score - ?) > 1e-9", st.GamesPlayed, st.AverageScore).
				Updates(map[string]interface{}{
					"average_score": st.AverageScore,
					"games_played":  st.GamesPlayed,
					"last_updated":  time.Now(),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				log.Printf("[Reconcile] Corrected AI summary for (%s, %d): avg=%f games=%d",
					st.GameType, st.AILevel, st.AverageScore, st.GamesPlayed)
			}
		}
		return nil
	})
}

// GetAIPerformance returns all AI summaries for the metrics page.
func (s *AIPerformanceService) GetAIPerformance(c *fiber.Ctx) error {
	perfs, err := s.ListSummaries()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch AI performance"})
	}
	return c.JSON(perfs)
}
