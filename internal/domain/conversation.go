package domain

import (
	"time"
)

// Conversation is the unique pairing of two users that owns an ordered
// sequence of Messages (conversations table). The participant pair is
// immutable after creation; participant names/avatars are snapshots taken at
// creation time.
type Conversation struct {
	ID string `gorm:"column:id;primaryKey;size:36" json:"id"`

	// Canonical unordered pair key: min(a,b) + ":" + max(a,b).
	// The unique index makes find-or-create idempotent under concurrent
	// resolves for the same pair.
	PairKey string `gorm:"column:pair_key;size:80;uniqueIndex" json:"-"`

	ParticipantAID     string `gorm:"column:participant_a_id;size:36;index" json:"-"`
	ParticipantAName   string `gorm:"column:participant_a_name;size:100" json:"-"`
	ParticipantAAvatar string `gorm:"column:participant_a_avatar;size:512" json:"-"`

	ParticipantBID     string `gorm:"column:participant_b_id;size:36;index" json:"-"`
	ParticipantBName   string `gorm:"column:participant_b_name;size:100" json:"-"`
	ParticipantBAvatar string `gorm:"column:participant_b_avatar;size:512" json:"-"`

	// Denormalized cache of the newest message, updated by the same
	// transaction that appends a Message. Empty until the first send.
	LastMessageContent  string     `gorm:"column:last_message_content;type:text" json:"-"`
	LastMessageAt       *time.Time `gorm:"column:last_message_at" json:"-"`
	LastMessageSenderID string     `gorm:"column:last_message_sender_id;size:36" json:"-"`
	LastMessageRead     bool       `gorm:"column:last_message_read" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;index" json:"updated_at"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// PairKeyFor builds the canonical order-independent key for a user pair
func PairKeyFor(userA, userB string) string {
	if userA < userB {
		return userA + ":" + userB
	}
	return userB + ":" + userA
}

// HasParticipant reports whether the given user is one of the two participants
func (c *Conversation) HasParticipant(userID string) bool {
	return c.ParticipantAID == userID || c.ParticipantBID == userID
}

// OtherParticipant returns the snapshot of the participant that is not userID
func (c *Conversation) OtherParticipant(userID string) UserSnapshot {
	if c.ParticipantAID == userID {
		return UserSnapshot{ID: c.ParticipantBID, Name: c.ParticipantBName, Avatar: c.ParticipantBAvatar}
	}
	return UserSnapshot{ID: c.ParticipantAID, Name: c.ParticipantAName, Avatar: c.ParticipantAAvatar}
}

// StartConversationRequest represents a find-or-create conversation request
type StartConversationRequest struct {
	SenderID   string `json:"senderId" binding:"required"`
	ReceiverID string `json:"receiverId" binding:"required"`
}

// LastMessageInfo is the feed-entry view of a conversation's newest message
type LastMessageInfo struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Unread    bool      `json:"unread"`
}

// FeedEntry is one row of a user's conversation inbox
type FeedEntry struct {
	ID          string           `json:"id"`
	User        UserSnapshot     `json:"user"`
	LastMessage *LastMessageInfo `json:"lastMessage"`
}

// ToFeedEntry builds the inbox row seen by viewerID. Unread is derived, not
// stored: true iff a last message exists, someone else sent it, and it has
// not been read.
func (c *Conversation) ToFeedEntry(viewerID string) *FeedEntry {
	entry := &FeedEntry{
		ID:   c.ID,
		User: c.OtherParticipant(viewerID),
	}
	if c.LastMessageAt != nil {
		entry.LastMessage = &LastMessageInfo{
			Content:   c.LastMessageContent,
			Timestamp: *c.LastMessageAt,
			Unread:    c.LastMessageSenderID != viewerID && !c.LastMessageRead,
		}
	}
	return entry
}
