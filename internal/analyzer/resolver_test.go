package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactNameResolution(t *testing.T) {
	ds := Dataset{
		Contacts: []Contact{
			{JID: "905551234567@s.whatsapp.net", DisplayName: "Ada"},
			{JID: "905559999999@s.whatsapp.net", DisplayName: "None", GivenName: "Mehmet"},
			{JID: "905558888888@s.whatsapp.net", DisplayName: "   "},
		},
		AliasMap: []AliasPair{
			{LID: "111222333@lid", JID: "905551234567@s.whatsapp.net"},
			{LID: "444555666@lid", JID: "905557777777@s.whatsapp.net"},
		},
	}
	a := New(ds)

	tests := []struct {
		name   string
		chatID string
		want   string
	}{
		{"empty identifier", "", "Bilinmeyen"},
		{"known contact", "905551234567@s.whatsapp.net", "Ada"},
		{"display name None falls back to given name", "905559999999@s.whatsapp.net", "Mehmet"},
		{"blank display name formats phone", "905558888888@s.whatsapp.net", "+905558888888"},
		{"unknown user formats phone", "905550000000@s.whatsapp.net", "+905550000000"},
		{"alias resolves through contact", "111222333@lid", "Ada"},
		{"alias translates to phone", "444555666@lid", "+905557777777"},
		{"untranslated alias keeps local part", "999888777@lid", "999888777"},
		{"group identifier keeps local part", "1234567890-123@g.us", "1234567890-123"},
		{"plain identifier unchanged", "someone", "someone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.ContactName(tt.chatID))
		})
	}
}

func TestContactNameWithoutAliasMap(t *testing.T) {
	a := New(Dataset{})

	// No alias table at all: a LID identifier degrades to its local part.
	assert.Equal(t, "123456789", a.ContactName("123456789@lid"))
}

func TestContactNameIsMemoized(t *testing.T) {
	a := New(Dataset{
		Contacts: []Contact{{JID: "905551234567@s.whatsapp.net", DisplayName: "Ada"}},
	})

	assert.Equal(t, "Ada", a.ContactName("905551234567@s.whatsapp.net"))
	// Mutating the cache entry proves the second call is a lookup.
	a.nameCache["905551234567@s.whatsapp.net"] = "cached"
	assert.Equal(t, "cached", a.ContactName("905551234567@s.whatsapp.net"))
}

func TestPhoneAlreadyPrefixed(t *testing.T) {
	a := New(Dataset{})
	assert.Equal(t, "+905551234567", a.ContactName("+905551234567@s.whatsapp.net"))
}
