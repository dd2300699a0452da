package services

import (
	"errors"
	"testing"

	"arcade-score-system/models"
)

func TestRecordSessionCreatesSessionAndSummary(t *testing.T) {
	db := newTestDB(t)
	aiPerf := NewAIPerformanceService(db)
	svc := NewScoreService(db, aiPerf)
	userID := seedPlayer(t, db, "alice")

	session, err := svc.RecordSession(userID, SessionInput{
		GameType: models.GameTypeTetris,
		Score:    intPtr(250),
		AILevel:  intPtr(models.AILevelIntermediate),
	})
	if err != nil {
		t.Fatalf("RecordSession failed: %v", err)
	}
	if session.ID == "" {
		t.Error("expected server-assigned session id")
	}
	if session.CreatedAt.IsZero() {
		t.Error("expected server-assigned timestamp")
	}
	if session.Score != 250 || session.GameType != models.GameTypeTetris || session.AILevel != 2 {
		t.Errorf("session fields mismatch: %+v", session)
	}

	var count int64
	db.Model(&models.GameSession{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 stored session, got %d", count)
	}

	var perf models.AIPerformance
	if err := db.Where("game_type = ? AND difficulty_level = ?", models.GameTypeTetris, 2).First(&perf).Error; err != nil {
		t.Fatalf("expected summary row to be created: %v", err)
	}
	if perf.GamesPlayed != 1 || perf.AverageScore != 250 {
		t.Errorf("summary mismatch: games=%d avg=%f", perf.GamesPlayed, perf.AverageScore)
	}
}

func TestRecordSessionRejectsInvalidPayload(t *testing.T) {
	db := newTestDB(t)
	svc := NewScoreService(db, NewAIPerformanceService(db))
	userID := seedPlayer(t, db, "bob")

	cases := []struct {
		name  string
		input SessionInput
	}{
		{"missing score", SessionInput{GameType: models.GameTypeSnake, AILevel: intPtr(1)}},
		{"missing ai level", SessionInput{GameType: models.GameTypeSnake, Score: intPtr(10)}},
		{"missing game type", SessionInput{Score: intPtr(10), AILevel: intPtr(1)}},
		{"negative score", SessionInput{GameType: models.GameTypeTetris, Score: intPtr(-1), AILevel: intPtr(1)}},
		{"unknown game type", SessionInput{GameType: "chess", Score: intPtr(10), AILevel: intPtr(1)}},
		{"ai level too low", SessionInput{GameType: models.GameTypeSnake, Score: intPtr(10), AILevel: intPtr(0)}},
		{"ai level too high", SessionInput{GameType: models.GameTypeSnake, Score: intPtr(10), AILevel: intPtr(4)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.RecordSession(userID, tc.input); !errors.Is(err, ErrInvalidPayload) {
				t.Errorf("expected ErrInvalidPayload, got %v", err)
			}
		})
	}

	// No partial writes: the table stays empty and no summary row was ever
	// created, not even for the unknown game type.
	var sessionCount, perfCount int64
	db.Model(&models.GameSession{}).Count(&sessionCount)
	db.Model(&models.AIPerformance{}).Count(&perfCount)
	if sessionCount != 0 {
		t.Errorf("expected 0 sessions after rejections, got %d", sessionCount)
	}
	if perfCount != 0 {
		t.Errorf("expected 0 summary rows after rejections, got %d", perfCount)
	}
}

func TestRecordSessionUnknownPlayer(t *testing.T) {
	db := newTestDB(t)
	svc := NewScoreService(db, NewAIPerformanceService(db))

	_, err := svc.RecordSession("no-such-user", SessionInput{
		GameType: models.GameTypeTetris,
		Score:    intPtr(100),
		AILevel:  intPtr(1),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	var count int64
	db.Model(&models.GameSession{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no session for unknown player, got %d", count)
	}
}
