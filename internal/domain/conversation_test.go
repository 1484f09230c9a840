package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPairKeyFor_OrderIndependent(t *testing.T) {
	assert.Equal(t, PairKeyFor("a", "b"), PairKeyFor("b", "a"))
	assert.Equal(t, "a:b", PairKeyFor("b", "a"))
	assert.NotEqual(t, PairKeyFor("a", "b"), PairKeyFor("a", "c"))
}

func TestOtherParticipant(t *testing.T) {
	conv := &Conversation{
		ParticipantAID: "u1", ParticipantAName: "Alice", ParticipantAAvatar: "a.png",
		ParticipantBID: "u2", ParticipantBName: "Bob", ParticipantBAvatar: "b.png",
	}

	other := conv.OtherParticipant("u1")
	assert.Equal(t, "u2", other.ID)
	assert.Equal(t, "Bob", other.Name)

	other = conv.OtherParticipant("u2")
	assert.Equal(t, "u1", other.ID)
	assert.Equal(t, "Alice", other.Name)
}

func TestToFeedEntry_UnreadDerivation(t *testing.T) {
	at := time.Now()
	base := Conversation{
		ID:             "c1",
		ParticipantAID: "u1", ParticipantAName: "Alice",
		ParticipantBID: "u2", ParticipantBName: "Bob",
	}

	tests := []struct {
		name     string
		senderID string
		read     bool
		viewerID string
		unread   bool
	}{
		{"other sent, unread", "u2", false, "u1", true},
		{"other sent, read", "u2", true, "u1", false},
		{"viewer sent, unread flag down", "u1", false, "u1", false},
		{"viewer sent, read", "u1", true, "u1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := base
			conv.LastMessageContent = "hey"
			conv.LastMessageAt = &at
			conv.LastMessageSenderID = tt.senderID
			conv.LastMessageRead = tt.read

			entry := conv.ToFeedEntry(tt.viewerID)
			assert.NotNil(t, entry.LastMessage)
			assert.Equal(t, tt.unread, entry.LastMessage.Unread)
		})
	}
}

func TestToFeedEntry_NoMessagesYet(t *testing.T) {
	conv := &Conversation{
		ID:             "c1",
		ParticipantAID: "u1", ParticipantAName: "Alice",
		ParticipantBID: "u2", ParticipantBName: "Bob", ParticipantBAvatar: "b.png",
	}

	entry := conv.ToFeedEntry("u1")
	assert.Nil(t, entry.LastMessage)
	assert.Equal(t, "u2", entry.User.ID)
	assert.Equal(t, "b.png", entry.User.Avatar)
}
