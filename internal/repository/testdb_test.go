package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory sqlite database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	// A pooled second connection would see a different in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.Post{},
		&domain.Comment{},
		&domain.Like{},
		&domain.Exercise{},
		&domain.Workout{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func seedConversation(t *testing.T, db *gorm.DB, userA, userB string) *domain.Conversation {
	t.Helper()

	now := time.Now()
	conv := &domain.Conversation{
		ID:               uuid.NewString(),
		PairKey:          domain.PairKeyFor(userA, userB),
		ParticipantAID:   userA,
		ParticipantAName: "User " + userA,
		ParticipantBID:   userB,
		ParticipantBName: "User " + userB,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := db.Create(conv).Error; err != nil {
		t.Fatalf("failed to seed conversation: %v", err)
	}
	return conv
}

func seedMessage(t *testing.T, db *gorm.DB, conv *domain.Conversation, senderID, receiverID, content string, at time.Time) *domain.Message {
	t.Helper()

	msg := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Content:        content,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		CreatedAt:      at,
	}
	repo := NewMessageRepository(db)
	if err := repo.Append(msg); err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
	return msg
}
