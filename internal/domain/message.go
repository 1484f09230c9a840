package domain

import "time"

// Message represents one direct message (messages table). Owned by exactly
// one conversation for its lifetime; never updated after creation except the
// read flag, which only moves false -> true.
type Message struct {
	ID             string `gorm:"column:id;primaryKey;size:36" json:"id"`
	ConversationID string `gorm:"column:conversation_id;size:36;index" json:"conversation_id"`

	Content  string `gorm:"column:content;type:text" json:"content"`
	MediaURL string `gorm:"column:media_url;size:512" json:"media_url,omitempty"`

	SenderID     string `gorm:"column:sender_id;size:36;index" json:"sender_id"`
	SenderName   string `gorm:"column:sender_name;size:100" json:"-"`
	SenderAvatar string `gorm:"column:sender_avatar;size:512" json:"-"`

	ReceiverID     string `gorm:"column:receiver_id;size:36;index" json:"receiver_id"`
	ReceiverName   string `gorm:"column:receiver_name;size:100" json:"-"`
	ReceiverAvatar string `gorm:"column:receiver_avatar;size:512" json:"-"`

	Read      bool      `gorm:"column:is_read" json:"read"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// SendMessageRequest represents an append-message request
type SendMessageRequest struct {
	Content  string `json:"content"`
	SenderID string `json:"senderId"`
	MediaURL string `json:"mediaUrl"`
}

// MessageParty is the sender/receiver snapshot in message responses.
// The frontend contract uses Mongo-style "_id" here.
type MessageParty struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// MessageResponse represents a message in API responses
type MessageResponse struct {
	ID             string       `json:"_id"`
	ConversationID string       `json:"conversationId"`
	Content        string       `json:"content"`
	MediaURL       string       `json:"mediaUrl,omitempty"`
	Sender         MessageParty `json:"sender"`
	Receiver       MessageParty `json:"receiver"`
	Read           bool         `json:"read"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// ToResponse converts Message to MessageResponse
func (m *Message) ToResponse() *MessageResponse {
	return &MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Content:        m.Content,
		MediaURL:       m.MediaURL,
		Sender:         MessageParty{ID: m.SenderID, Name: m.SenderName, Avatar: m.SenderAvatar},
		Receiver:       MessageParty{ID: m.ReceiverID, Name: m.ReceiverName, Avatar: m.ReceiverAvatar},
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}
