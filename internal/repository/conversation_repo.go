package repository

import (
	"errors"

	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"gorm.io/gorm"
)

// ConversationRepository conversation data access interface
type ConversationRepository interface {
	Create(conv *domain.Conversation) error
	FindByID(id string) (*domain.Conversation, error)
	FindByPair(userA, userB string) (*domain.Conversation, error)
	ListByParticipant(userID string) ([]*domain.Conversation, error)
}

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

// Create inserts a new conversation. The unique index on pair_key rejects a
// second conversation for the same unordered pair; callers losing that race
// should retry as a lookup.
func (r *conversationRepository) Create(conv *domain.Conversation) error {
	return r.db.Create(conv).Error
}

// FindByID finds a conversation by ID
func (r *conversationRepository) FindByID(id string) (*domain.Conversation, error) {
	var conv domain.Conversation
	err := r.db.Where("id = ?", id).First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

// FindByPair finds the conversation between two users, regardless of the
// order the pair is given in. Returns nil when none exists.
func (r *conversationRepository) FindByPair(userA, userB string) (*domain.Conversation, error) {
	var conv domain.Conversation
	err := r.db.Where("pair_key = ?", domain.PairKeyFor(userA, userB)).First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

// ListByParticipant returns all conversations the user takes part in,
// most recently active first
func (r *conversationRepository) ListByParticipant(userID string) ([]*domain.Conversation, error) {
	var convs []*domain.Conversation
	err := r.db.
		Where("participant_a_id = ? OR participant_b_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&convs).Error
	return convs, err
}
