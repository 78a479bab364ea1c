package analyzer

import (
	"time"

	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/wajid"
)

// Message is one row of the message store, already normalized by the reader.
type Message struct {
	ID        int64
	ChatJID   string
	SenderJID string // per-message sender in group chats; empty in older exports
	FromMe    bool
	Timestamp time.Time // zero value means the stored timestamp was missing or invalid
	Text      string
	HasText   bool
	MediaType int // canonical media code, 0 = plain text
	Status    int
}

// IsGroup reports whether the message belongs to a group conversation.
// Derived from the chat JID, never stored separately.
func (m *Message) IsGroup() bool {
	return wajid.IsGroup(m.ChatJID)
}

// HasTimestamp reports whether the message carries a usable timestamp.
func (m *Message) HasTimestamp() bool {
	return !m.Timestamp.IsZero()
}

// Contact is one row of the contact book.
type Contact struct {
	JID         string
	DisplayName string
	GivenName   string
	Status      string
}

// Group is one known group conversation.
type Group struct {
	JID       string
	Name      string
	CreatedAt time.Time
}

// MediaInfo is per-message attachment metadata.
type MediaInfo struct {
	MessageID int64
	MediaType int
	Size      int64
	Name      string
	MimeType  string
	Timestamp time.Time
}

// AliasPair maps a LID namespace identifier to its canonical JID.
type AliasPair struct {
	LID string
	JID string
}

// Dataset bundles the message table with the optional auxiliary tables.
// Nil slices are treated as empty; every analysis degrades accordingly.
type Dataset struct {
	Messages []Message
	Contacts []Contact
	Groups   []Group
	Media    []MediaInfo
	AliasMap []AliasPair
}
