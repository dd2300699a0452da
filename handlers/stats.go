// handlers/stats.go
package handlers

import (
	"arcade-score-system/middleware"
	"arcade-score-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(app *fiber.App, statsService *services.StatsService, leaderboardService *services.LeaderboardService, aiPerfService *services.AIPerformanceService) {
	// 🔓 Public reads — no user context needed, Gateway auth still applies
	app.Get("/api/leaderboard", leaderboardService.GetLeaderboard)
	app.Get("/api/leaderboard/:game_type", leaderboardService.GetTopForGame)
	app.Get("/api/ai_performance", aiPerfService.GetAIPerformance)

	// 🔐 Per-player dashboard — requires user context
	app.Get("/api/dashboard", middleware.UserContextMiddleware(), statsService.Dashboard)
}
