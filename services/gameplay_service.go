package services

import (
	"encoding/json"
	"log"
	"time"

	"arcade-score-system/models"
	"arcade-score-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GameplayService archives raw human gameplay captures for AI training.
// Captures are opaque to this service — they go straight to object storage.
type GameplayService struct {
	DB *gorm.DB
}

func NewGameplayService(db *gorm.DB) *GameplayService {
	return &GameplayService{DB: db}
}

type gameplayCapture struct {
	GameType string            `json:"game_type"`
	AILevel  int               `json:"ai_level"`
	Frames   []json.RawMessage `json:"frames"`
}

// SaveGameplayData stores one gameplay capture as a JSON object in R2,
// keyed by game type and player. Falls back to local uploads/ storage when
// R2 is unreachable so captures are not lost.
func (s *GameplayService) SaveGameplayData(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing user context"})
	}

	var capture gameplayCapture
	if err := c.BodyParser(&capture); err != nil || len(capture.Frames) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No data provided"})
	}
	if !validGameType(capture.GameType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid game type"})
	}

	var player models.Player
	if err := s.DB.Where("external_user_id = ?", userID).First(&player).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "player not found"})
	}

	body, err := json.Marshal(fiber.Map{
		"external_user_id": userID,
		"game_type":        capture.GameType,
		"ai_level":         capture.AILevel,
		"captured_at":      time.Now().UTC(),
		"frames":           capture.Frames,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "failed to encode capture"})
	}

	key := "gameplay/" + capture.GameType + "/" + slug.Make(player.Username) + "/" + uuid.NewString() + ".json"

	location, err := utils.UploadBytesToR2(body, key, "application/json")
	if err != nil {
		log.Printf("⚠️ R2 upload failed for capture %s, falling back to local storage: %v", key, err)
		localPath := utils.GetUploadPath(key)
		if err := utils.SaveBytes(body, localPath); err != nil {
			log.Printf("❌ Failed to store gameplay capture %s locally: %v", key, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "failed to store gameplay data"})
		}
		location = "/" + localPath
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"message":  "Gameplay data saved successfully",
		"location": location,
	})
}
