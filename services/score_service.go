package services

import (
	"errors"
	"fmt"
	"log"

	"arcade-score-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScoreService struct {
	DB     *gorm.DB
	AIPerf *AIPerformanceService
}

func NewScoreService(db *gorm.DB, aiPerf *AIPerformanceService) *ScoreService {
	return &ScoreService{DB: db, AIPerf: aiPerf}
}

// SessionInput is the result payload a game client posts when a game ends.
// Score and AILevel are pointers so a missing field is distinguishable from
// a zero.
type SessionInput struct {
	GameType string `json:"game_type"`
	Score    *int   `json:"score"`
	AILevel  *int   `json:"ai_level"`
}

func validGameType(gameType string) bool {
	return gameType == models.GameTypeTetris || gameType == models.GameTypeSnake
}

func validAILevel(level int) bool {
	return level >= models.AILevelBasic && level <= models.AILevelAdvanced
}

// RecordSession validates and appends exactly one immutable GameSession,
// folding the score into the AI performance summary for the same
// (game type, level) pair inside the same transaction. The caller owns
// authentication — externalUserID is trusted to be an authenticated
// identity, but must exist in the local player mirror.
func (s *ScoreService) RecordSession(externalUserID string, input SessionInput) (*models.GameSession, error) {
	if externalUserID == "" || input.GameType == "" || input.Score == nil || input.AILevel == nil {
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidPayload)
	}
	if !validGameType(input.GameType) {
		return nil, fmt.Errorf("%w: unknown game type %q", ErrInvalidPayload, input.GameType)
	}
	if *input.Score < 0 {
		return nil, fmt.Errorf("%w: score must be >= 0", ErrInvalidPayload)
	}
	if !validAILevel(*input.AILevel) {
		return nil, fmt.Errorf("%w: ai level must be between %d and %d",
			ErrInvalidPayload, models.AILevelBasic, models.AILevelAdvanced)
	}

	var player models.Player
	if err := s.DB.Where("external_user_id = ?", externalUserID).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: player %s", ErrNotFound, externalUserID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	session := &models.GameSession{
		ID:             uuid.NewString(),
		ExternalUserID: externalUserID,
		GameType:       input.GameType,
		Score:          *input.Score,
		AILevel:        *input.AILevel,
	}

	// Session insert and summary update commit or fail together — a storage
	// failure must never leave a session without its summary contribution.
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		return s.AIPerf.RecordForSummary(tx, session.GameType, session.AILevel, session.Score)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return session, nil
}

// SaveGame is the endpoint game clients post finished games to.
func (s *ScoreService) SaveGame(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var input SessionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid JSON body"})
	}

	session, err := s.RecordSession(userID, input)
	if err != nil {
		return respondServiceError(c, err)
	}

	log.Printf("🎮 Game saved: user=%s type=%s score=%d ai_level=%d",
		session.ExternalUserID, session.GameType, session.Score, session.AILevel)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Game saved successfully",
		"session": session,
	})
}
