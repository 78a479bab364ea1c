package wajid

import (
	"strings"

	"go.mau.fi/whatsmeow/types"
)

// Parse parses a raw chat identifier into types.JID.
func Parse(raw string) (types.JID, error) {
	return types.ParseJID(raw)
}

// IsGroup returns true if the identifier names a group conversation.
func IsGroup(raw string) bool {
	jid, err := types.ParseJID(raw)
	return err == nil && jid.Server == types.GroupServer
}

// IsUser returns true if the identifier is a direct-chat (phone number) JID.
func IsUser(raw string) bool {
	jid, err := types.ParseJID(raw)
	return err == nil && jid.Server == types.DefaultUserServer
}

// IsLID returns true if the identifier belongs to the LID namespace.
func IsLID(raw string) bool {
	jid, err := types.ParseJID(raw)
	return err == nil && jid.Server == types.HiddenUserServer
}

// HasServer returns true if the identifier carries a domain marker.
func HasServer(raw string) bool {
	return strings.Contains(raw, "@")
}

// LocalPart returns the text before the domain marker, or the identifier
// unchanged when there is none.
func LocalPart(raw string) string {
	if idx := strings.Index(raw, "@"); idx >= 0 {
		return raw[:idx]
	}
	return raw
}

// FormatPhone renders a direct-chat JID as a phone number: the local part
// prefixed with '+' unless it already starts with one.
func FormatPhone(raw string) string {
	phone := LocalPart(raw)
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}
	return phone
}
