package analyzer

import (
	"strings"

	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/wajid"
)

// unknownContact is the fallback label for missing identifiers.
const unknownContact = "Bilinmeyen"

// ContactName resolves a chat identifier to a display name. It is a total
// function: any identifier, including an empty one, produces a displayable
// string. Results are memoized for the lifetime of the Analyzer.
func (a *Analyzer) ContactName(chatID string) string {
	if chatID == "" {
		return unknownContact
	}
	if name, ok := a.nameCache[chatID]; ok {
		return name
	}
	name := a.resolveName(chatID)
	a.nameCache[chatID] = name
	return name
}

func (a *Analyzer) resolveName(original string) string {
	chatID := original

	// LID identifiers are translated to the canonical namespace first.
	if wajid.IsLID(chatID) && len(a.aliases) > 0 {
		if canonical, ok := a.aliases[chatID]; ok && canonical != "" {
			chatID = canonical
		}
	}

	if c, ok := a.contacts[chatID]; ok {
		if name := usableName(c.DisplayName); name != "" {
			return name
		}
		if name := usableName(c.GivenName); name != "" {
			return name
		}
	}

	switch {
	case wajid.IsUser(chatID):
		// No contact entry, show the phone number instead.
		return wajid.FormatPhone(chatID)
	case wajid.IsLID(original):
		if chatID != original && wajid.IsUser(chatID) {
			return wajid.FormatPhone(chatID)
		}
		return wajid.LocalPart(original)
	case wajid.HasServer(chatID):
		return wajid.LocalPart(chatID)
	}
	return chatID
}

// usableName filters out empty, whitespace-only and the literal "None"
// placeholder some contact exports carry.
func usableName(name string) string {
	if name == "" || name == "None" || strings.TrimSpace(name) == "" {
		return ""
	}
	return name
}
