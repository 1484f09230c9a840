package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/common"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/domain"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/middleware"
	"github.com/rgsuhas/fitness-buddy-sub001/internal/service"
)

// MessageHandler direct messaging HTTP handlers.
//
// These endpoints keep the frontend's original wire contract: bare JSON
// arrays for lists, Mongo-style "_id" fields on messages, and plain
// {"error": message} bodies on failure.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// ListConversations godoc
// @Summary List a user's conversations
// @Description Returns the user's inbox, most recently active first
// @Tags messages
// @Produce json
// @Param userId query string true "Viewer user ID"
// @Success 200 {array} domain.FeedEntry
// @Failure 400 {object} map[string]string
// @Router /api/messages/conversations [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "userId is required")
		return
	}

	entries, err := h.messageService.ListConversations(userID)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// StartConversation godoc
// @Summary Find or create a conversation between two users
// @Description Resolves the conversation for a user pair, creating it on first contact
// @Tags messages
// @Accept json
// @Produce json
// @Param request body domain.StartConversationRequest true "User pair"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/messages [post]
func (h *MessageHandler) StartConversation(c *gin.Context) {
	var req domain.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "senderId and receiverId are required")
		return
	}

	conv, err := h.messageService.ResolveConversation(&req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      conv.ID,
		"message": "Conversation started",
	})
}

// GetMessages godoc
// @Summary List a conversation's messages
// @Description Returns messages oldest first. A userId of a participant marks their unread messages read before the list is built.
// @Tags messages
// @Produce json
// @Param conversationId path string true "Conversation ID"
// @Param userId query string false "Reader user ID"
// @Success 200 {array} domain.MessageResponse
// @Failure 404 {object} map[string]string
// @Router /api/messages/{conversationId} [get]
func (h *MessageHandler) GetMessages(c *gin.Context) {
	conversationID := c.Param("conversationId")
	readerID := c.Query("userId")

	messages, err := h.messageService.GetMessages(conversationID, readerID)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// SendMessage godoc
// @Summary Send a message
// @Description Appends a message to the conversation and updates its last-message summary
// @Tags messages
// @Accept json
// @Produce json
// @Param conversationId path string true "Conversation ID"
// @Param request body domain.SendMessageRequest true "Message"
// @Success 200 {object} domain.MessageResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/messages/{conversationId} [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	conversationID := c.Param("conversationId")

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SenderID == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "senderId is required")
		return
	}

	msg, err := h.messageService.SendMessage(conversationID, &req)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	middleware.CountMessageSent()
	c.JSON(http.StatusOK, msg)
}

// MarkRead godoc
// @Summary Mark a conversation read
// @Description Marks every unread message addressed to the user as read. Idempotent.
// @Tags messages
// @Produce json
// @Param conversationId path string true "Conversation ID"
// @Param userId query string true "Reader user ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/messages/{conversationId}/read [put]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	conversationID := c.Param("conversationId")
	readerID := c.Query("userId")
	if readerID == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "userId is required")
		return
	}

	if _, err := h.messageService.MarkRead(conversationID, readerID); err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetUnreadCount godoc
// @Summary Count unread messages
// @Description Total unread messages addressed to the user across all conversations, for the inbox badge
// @Tags messages
// @Produce json
// @Param userId query string true "User ID"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Router /api/messages/unread [get]
func (h *MessageHandler) GetUnreadCount(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "userId is required")
		return
	}

	count, err := h.messageService.UnreadCount(userID)
	if err != nil {
		common.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
