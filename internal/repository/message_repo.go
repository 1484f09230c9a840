package repository

import (
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access interface
type MessageRepository interface {
	Append(msg *domain.Message) error
	ListByConversation(conversationID string) ([]*domain.Message, error)
	MarkRead(conversationID, readerID string) (int64, error)
	CountUnread(readerID string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Append persists a message and refreshes the owning conversation's
// last-message summary in one transaction, so the detailed record and the
// denormalized cache cannot drift apart on partial failure.
func (r *messageRepository) Append(msg *domain.Message) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Updates(map[string]interface{}{
				"last_message_content":   msg.Content,
				"last_message_at":        msg.CreatedAt,
				"last_message_sender_id": msg.SenderID,
				"last_message_read":      false,
				"updated_at":             msg.CreatedAt,
			}).Error
	})
}

// ListByConversation returns the full message history, oldest first.
// created_at is the sole ordering key; no pagination is exposed.
func (r *messageRepository) ListByConversation(conversationID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// MarkRead flips every unread message addressed to the reader, then brings
// the conversation's denormalized last_message_read in line when the last
// message was sent by someone else. Running it again is a no-op.
func (r *messageRepository) MarkRead(conversationID, readerID string) (int64, error) {
	var updated int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Message{}).
			Where("conversation_id = ? AND receiver_id = ? AND is_read = ?", conversationID, readerID, false).
			Update("is_read", true)
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected

		return tx.Model(&domain.Conversation{}).
			Where("id = ? AND last_message_sender_id <> ? AND last_message_at IS NOT NULL", conversationID, readerID).
			Update("last_message_read", true).Error
	})
	return updated, err
}

// CountUnread counts messages addressed to the reader that are still unread,
// across all of the reader's conversations. Backs the inbox badge.
func (r *messageRepository) CountUnread(readerID string) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Message{}).
		Where("receiver_id = ? AND is_read = ?", readerID, false).
		Count(&count).Error
	return count, err
}
