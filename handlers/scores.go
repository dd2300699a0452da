// handlers/scores.go
package handlers

import (
	"arcade-score-system/middleware"
	"arcade-score-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupScoreRoutes(app *fiber.App, scoreService *services.ScoreService, gameplayService *services.GameplayService) {
	// 🔐 Write endpoints — require user context injected by the Gateway
	app.Post("/api/save_game", middleware.UserContextMiddleware(), scoreService.SaveGame)
	app.Post("/api/save_gameplay_data", middleware.UserContextMiddleware(), gameplayService.SaveGameplayData)
}
