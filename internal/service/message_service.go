package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/repository"
	"github.com/rs/zerolog/log"
)

// MessageService direct messaging business logic interface
type MessageService interface {
	ResolveConversation(req *domain.StartConversationRequest) (*domain.Conversation, error)
	ListConversations(userID string) ([]*domain.FeedEntry, error)
	GetMessages(conversationID, readerID string) ([]*domain.MessageResponse, error)
	SendMessage(conversationID string, req *domain.SendMessageRequest) (*domain.MessageResponse, error)
	MarkRead(conversationID, readerID string) (int64, error)
	UnreadCount(userID string) (int64, error)
}

type messageService struct {
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	userRepo         repository.UserRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
) MessageService {
	return &messageService{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		userRepo:         userRepo,
	}
}

// ResolveConversation finds the conversation between two users, creating it if
// none exists. The same pair always resolves to the same conversation no
// matter which side initiates.
func (s *messageService) ResolveConversation(req *domain.StartConversationRequest) (*domain.Conversation, error) {
	if req.SenderID == req.ReceiverID {
		return nil, common.ErrSelfConversation
	}

	conv, err := s.conversationRepo.FindByPair(req.SenderID, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return conv, nil
	}

	sender, err := s.userRepo.FindByID(req.SenderID)
	if err != nil || sender == nil {
		return nil, common.ErrUserNotFound
	}
	receiver, err := s.userRepo.FindByID(req.ReceiverID)
	if err != nil || receiver == nil {
		return nil, common.ErrUserNotFound
	}

	a, b := sender.Snapshot(), receiver.Snapshot()
	now := time.Now()
	conv = &domain.Conversation{
		ID:                 uuid.NewString(),
		PairKey:            domain.PairKeyFor(a.ID, b.ID),
		ParticipantAID:     a.ID,
		ParticipantAName:   a.Name,
		ParticipantAAvatar: a.Avatar,
		ParticipantBID:     b.ID,
		ParticipantBName:   b.Name,
		ParticipantBAvatar: b.Avatar,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.conversationRepo.Create(conv); err != nil {
		// A concurrent resolve for the same pair may have won the unique
		// index race. Treat the failed insert as a lookup.
		existing, findErr := s.conversationRepo.FindByPair(req.SenderID, req.ReceiverID)
		if findErr == nil && existing != nil {
			return existing, nil
		}
		log.Error().Err(err).
			Str("sender_id", req.SenderID).
			Str("receiver_id", req.ReceiverID).
			Msg("Failed to create conversation")
		return nil, err
	}

	return conv, nil
}

// ListConversations returns the user's inbox, most recently active first
func (s *messageService) ListConversations(userID string) ([]*domain.FeedEntry, error) {
	convs, err := s.conversationRepo.ListByParticipant(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.FeedEntry, 0, len(convs))
	for _, conv := range convs {
		entries = append(entries, conv.ToFeedEntry(userID))
	}
	return entries, nil
}

// GetMessages returns a conversation's messages oldest first. When readerID
// identifies a participant, fetching doubles as reading: messages addressed
// to them are marked read before the list is built, so the response already
// reflects the new read state.
func (s *messageService) GetMessages(conversationID, readerID string) ([]*domain.MessageResponse, error) {
	conv, err := s.conversationRepo.FindByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, common.ErrConversationNotFound
	}

	if readerID != "" && conv.HasParticipant(readerID) {
		if _, err := s.messageRepo.MarkRead(conversationID, readerID); err != nil {
			return nil, err
		}
	}

	messages, err := s.messageRepo.ListByConversation(conversationID)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, msg.ToResponse())
	}
	return responses, nil
}

// SendMessage appends a message to a conversation. The conversation's
// last-message summary moves in the same transaction as the insert.
func (s *messageService) SendMessage(conversationID string, req *domain.SendMessageRequest) (*domain.MessageResponse, error) {
	conv, err := s.conversationRepo.FindByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, common.ErrConversationNotFound
	}
	if !conv.HasParticipant(req.SenderID) {
		return nil, common.ErrNotParticipant
	}
	if strings.TrimSpace(req.Content) == "" && req.MediaURL == "" {
		return nil, common.ErrEmptyMessage
	}

	receiver := conv.OtherParticipant(req.SenderID)
	sender := conv.OtherParticipant(receiver.ID)

	msg := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Content:        req.Content,
		MediaURL:       req.MediaURL,
		SenderID:       sender.ID,
		SenderName:     sender.Name,
		SenderAvatar:   sender.Avatar,
		ReceiverID:     receiver.ID,
		ReceiverName:   receiver.Name,
		ReceiverAvatar: receiver.Avatar,
		Read:           false,
		CreatedAt:      time.Now(),
	}

	if err := s.messageRepo.Append(msg); err != nil {
		log.Error().Err(err).
			Str("conversation_id", conv.ID).
			Str("sender_id", req.SenderID).
			Msg("Failed to append message")
		return nil, err
	}

	return msg.ToResponse(), nil
}

// MarkRead marks every unread message addressed to readerID in the
// conversation as read and returns how many changed. Calling it again is a
// no-op: the read flag only ever moves from unread to read.
func (s *messageService) MarkRead(conversationID, readerID string) (int64, error) {
	conv, err := s.conversationRepo.FindByID(conversationID)
	if err != nil {
		return 0, err
	}
	if conv == nil {
		return 0, common.ErrConversationNotFound
	}
	if !conv.HasParticipant(readerID) {
		return 0, common.ErrNotParticipant
	}

	return s.messageRepo.MarkRead(conversationID, readerID)
}

// UnreadCount returns how many messages addressed to userID are still unread
// across all conversations, for the inbox badge.
func (s *messageService) UnreadCount(userID string) (int64, error) {
	if userID == "" {
		return 0, common.ErrInvalidInput
	}
	return s.messageRepo.CountUnread(userID)
}
