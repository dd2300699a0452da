package services

import (
	"fmt"
	"strings"
	"testing"

	"arcade-score-system/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test and migrates the
// score subsystem schema into it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Player{},
		&models.GameSession{},
		&models.AIPerformance{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

// seedPlayer inserts a player mirror row and returns its external user id.
func seedPlayer(t *testing.T, db *gorm.DB, username string) string {
	t.Helper()

	player := models.Player{
		ID:             uuid.NewString(),
		ExternalUserID: uuid.NewString(),
		Username:       username,
		Email:          username + "@example.com",
	}
	if err := db.Create(&player).Error; err != nil {
		t.Fatalf("failed to seed player %s: %v", username, err)
	}
	return player.ExternalUserID
}

func intPtr(v int) *int {
	return &v
}

// recordSessions is a shorthand for recording a sequence of valid sessions
// for one player.
func recordSessions(t *testing.T, svc *ScoreService, userID, gameType string, aiLevel int, scores ...int) {
	t.Helper()

	for _, score := range scores {
		if _, err := svc.RecordSession(userID, SessionInput{
			GameType: gameType,
			Score:    intPtr(score),
			AILevel:  intPtr(aiLevel),
		}); err != nil {
			t.Fatalf("failed to record session (score=%d): %v", score, err)
		}
	}
}
