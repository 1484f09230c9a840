package repository

import (
	"testing"
	"time"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAppend_UpdatesLastMessageSummary(t *testing.T) {
	db := setupTestDB(t)
	convRepo := NewConversationRepository(db)

	conv := seedConversation(t, db, "u1", "u2")
	at := time.Now().Truncate(time.Second)
	seedMessage(t, db, conv, "u1", "u2", "first", at)

	got, err := convRepo.FindByID(conv.ID)
	assert.NoError(t, err)
	assert.Equal(t, "first", got.LastMessageContent)
	assert.Equal(t, "u1", got.LastMessageSenderID)
	assert.False(t, got.LastMessageRead)
	assert.NotNil(t, got.LastMessageAt)
	assert.WithinDuration(t, at, *got.LastMessageAt, time.Second)
	assert.WithinDuration(t, at, got.UpdatedAt, time.Second)
}

func TestAppend_NewerMessageReplacesSummary(t *testing.T) {
	db := setupTestDB(t)
	convRepo := NewConversationRepository(db)

	conv := seedConversation(t, db, "u1", "u2")
	base := time.Now()
	seedMessage(t, db, conv, "u1", "u2", "first", base)
	seedMessage(t, db, conv, "u2", "u1", "second", base.Add(time.Minute))

	got, err := convRepo.FindByID(conv.ID)
	assert.NoError(t, err)
	assert.Equal(t, "second", got.LastMessageContent)
	assert.Equal(t, "u2", got.LastMessageSenderID)
	// A fresh send always resets the read flag
	assert.False(t, got.LastMessageRead)
}

func TestListByConversation_AscendingByCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	msgRepo := NewMessageRepository(db)

	conv := seedConversation(t, db, "u1", "u2")
	base := time.Now()
	// Insert out of order to prove ordering comes from created_at
	seedMessage(t, db, conv, "u1", "u2", "third", base.Add(2*time.Minute))
	seedMessage(t, db, conv, "u1", "u2", "first", base)
	seedMessage(t, db, conv, "u2", "u1", "second", base.Add(time.Minute))

	messages, err := msgRepo.ListByConversation(conv.ID)
	assert.NoError(t, err)
	assert.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestListByConversation_ScopedToConversation(t *testing.T) {
	db := setupTestDB(t)
	msgRepo := NewMessageRepository(db)

	conv := seedConversation(t, db, "u1", "u2")
	other := seedConversation(t, db, "u1", "u3")
	seedMessage(t, db, conv, "u1", "u2", "ours", time.Now())
	seedMessage(t, db, other, "u1", "u3", "theirs", time.Now())

	messages, err := msgRepo.ListByConversation(conv.ID)
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, "ours", messages[0].Content)
}

func TestMarkRead_OnlyRecipientMessages(t *testing.T) {
	db := setupTestDB(t)
	msgRepo := NewMessageRepository(db)

	conv := seedConversation(t, db, "u1", "u2")
	base := time.Now()
	seedMessage(t, db, conv, "u1", "u2", "to u2 a", base)
	seedMessage(t, db, conv, "u1", "u2", "to u2 b", base.Add(time.Second))
	seedMessage(t, db, conv, "u2", "u1", "to u1", base.Add(2*time.Second))

	updated, err := msgRepo.MarkRead(conv.ID, "u2")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	messages, err := msgRepo.ListByConversation(conv.ID)
	assert.NoError(t, err)
	for _, msg := range messages {
		if msg.ReceiverID == "u2" {
			assert.True(t, msg.Read)
		} else {
			assert.False(t, msg.Read)
		}
	}
}

func TestMarkRead_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	msgRepo := NewMessageRepository(db)

	conv := seedConversation(t, db, "u1", "u2")
	seedMessage(t, db, conv, "u1", "u2", "hello", time.Now())

	first, err := msgRepo.MarkRead(conv.ID, "u2")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := msgRepo.MarkRead(conv.ID, "u2")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), second)
}

func TestMarkRead_UpdatesConversationFlag(t *testing.T) {
	db := setupTestDB(t)
	msgRepo := NewMessageRepository(db)
	convRepo := NewConversationRepository(db)

	conv := seedConversation(t, db, "u1", "u2")
	seedMessage(t, db, conv, "u1", "u2", "hello", time.Now())

	_, err := msgRepo.MarkRead(conv.ID, "u2")
	assert.NoError(t, err)

	got, err := convRepo.FindByID(conv.ID)
	assert.NoError(t, err)
	assert.True(t, got.LastMessageRead)
}

func TestMarkRead_SenderDoesNotClearOwnFlag(t *testing.T) {
	db := setupTestDB(t)
	msgRepo := NewMessageRepository(db)
	convRepo := NewConversationRepository(db)

	conv := seedConversation(t, db, "u1", "u2")
	seedMessage(t, db, conv, "u1", "u2", "hello", time.Now())

	// The sender marking read touches nothing: no messages are addressed to
	// them and the summary flag tracks the receiver's state.
	updated, err := msgRepo.MarkRead(conv.ID, "u1")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), updated)

	got, err := convRepo.FindByID(conv.ID)
	assert.NoError(t, err)
	assert.False(t, got.LastMessageRead)
}

func TestMarkRead_NoMessagesNoop(t *testing.T) {
	db := setupTestDB(t)
	msgRepo := NewMessageRepository(db)

	conv := seedConversation(t, db, "u1", "u2")

	updated, err := msgRepo.MarkRead(conv.ID, "u2")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

func TestCountUnread(t *testing.T) {
	db := setupTestDB(t)
	msgRepo := NewMessageRepository(db)

	convA := seedConversation(t, db, "u1", "u2")
	convB := seedConversation(t, db, "u2", "u3")
	base := time.Now()
	seedMessage(t, db, convA, "u1", "u2", "a", base)
	seedMessage(t, db, convA, "u1", "u2", "b", base.Add(time.Second))
	seedMessage(t, db, convB, "u3", "u2", "c", base.Add(2*time.Second))
	// u2's own outgoing message never counts against the badge
	seedMessage(t, db, convB, "u2", "u3", "d", base.Add(3*time.Second))

	count, err := msgRepo.CountUnread("u2")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// reading one conversation leaves the other's unread in place
	_, err = msgRepo.MarkRead(convA.ID, "u2")
	assert.NoError(t, err)

	count, err = msgRepo.CountUnread("u2")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = msgRepo.MarkRead(convB.ID, "u2")
	assert.NoError(t, err)

	count, err = msgRepo.CountUnread("u2")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestReadFlagMonotonic(t *testing.T) {
	db := setupTestDB(t)
	msgRepo := NewMessageRepository(db)

	conv := seedConversation(t, db, "u1", "u2")
	msg := seedMessage(t, db, conv, "u1", "u2", "hello", time.Now())

	_, err := msgRepo.MarkRead(conv.ID, "u2")
	assert.NoError(t, err)

	// A later mark-read by the other side must not flip it back
	_, err = msgRepo.MarkRead(conv.ID, "u1")
	assert.NoError(t, err)

	var got domain.Message
	assert.NoError(t, db.Where("id = ?", msg.ID).First(&got).Error)
	assert.True(t, got.Read)
}
