package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesByKeyword(t *testing.T) {
	msgs := []Message{
		msgWithText(1, "Yarın toplantı var"),
		msgWithText(2, "tamam"),
		msgWithText(3, "TOPLANTI iptal"),
		{ID: 4, ChatJID: "u@s.whatsapp.net", MediaType: 1},
	}
	a := New(Dataset{Messages: msgs})

	hits := a.MessagesByKeyword("toplantı", 50)
	require.Len(t, hits, 2)
	assert.Equal(t, "Yarın toplantı var", hits[0].Text)
	assert.Equal(t, "TOPLANTI iptal", hits[1].Text)

	assert.Len(t, a.MessagesByKeyword("toplantı", 1), 1)
	assert.Empty(t, a.MessagesByKeyword("yüzme", 50))
}

func TestLongestMessages(t *testing.T) {
	long := strings.Repeat("a", 600)
	msgs := []Message{
		msgWithText(1, "kısa"), // <=10 chars, skipped
		msgWithText(2, "orta uzunlukta bir mesaj"),
		msgWithText(3, long),
	}
	a := New(Dataset{Messages: msgs})

	top := a.LongestMessages(10)
	require.Len(t, top, 2)
	assert.Equal(t, 600, top[0].Length)
	assert.Len(t, top[0].Text, 500)
	assert.Equal(t, "orta uzunlukta bir mesaj", top[1].Text)

	assert.Len(t, a.LongestMessages(1), 1)
}

func TestRandomMessageSamples(t *testing.T) {
	var msgs []Message
	for i := int64(0); i < 30; i++ {
		msgs = append(msgs, msgWithText(i, "mesaj"))
	}
	a := New(Dataset{Messages: msgs})
	a.SeedRandom(42)

	samples := a.RandomMessageSamples(10)
	assert.Len(t, samples, 10)

	// Sample size is capped at the number of texted messages.
	assert.Len(t, a.RandomMessageSamples(100), 30)
	assert.Empty(t, a.RandomMessageSamples(0))
	assert.Empty(t, New(Dataset{}).RandomMessageSamples(5))
}

func TestConversationWithContact(t *testing.T) {
	chat := "user1@s.whatsapp.net"
	var msgs []Message
	for i := 0; i < 10; i++ {
		msgs = append(msgs, textMsg(int64(i), chat, i%2 == 0, at(1, 10, i)))
	}
	msgs = append(msgs, textMsg(99, "other@s.whatsapp.net", false, at(1, 12, 0)))
	a := New(Dataset{Messages: msgs})

	conv := a.ConversationWithContact(chat, 100)
	require.Len(t, conv, 10)
	for i := 1; i < len(conv); i++ {
		assert.False(t, conv[i].Timestamp.Before(conv[i-1].Timestamp))
	}

	// With limit below the total, the tail survives, still ascending.
	tail := a.ConversationWithContact(chat, 4)
	require.Len(t, tail, 4)
	assert.Equal(t, at(1, 10, 6), tail[0].Timestamp)
	assert.Equal(t, at(1, 10, 9), tail[3].Timestamp)

	assert.Nil(t, a.ConversationWithContact("missing@s.whatsapp.net", 10))
}

func TestConversationDetails(t *testing.T) {
	chat := "user1@s.whatsapp.net"
	msgs := []Message{
		textMsg(1, chat, false, at(1, 9, 0)),
		textMsg(2, chat, true, at(1, 9, 10)),
		textMsg(3, chat, true, at(2, 21, 0)),
		{ID: 4, ChatJID: chat, MediaType: 1, Timestamp: at(2, 9, 0)},
	}
	a := New(Dataset{Messages: msgs})

	d := a.ConversationDetailsFor(chat)
	require.NotNil(t, d)
	assert.Equal(t, 4, d.TotalMessages)
	assert.Equal(t, 2, d.SentByMe)
	assert.Equal(t, 2, d.Received)
	assert.Equal(t, at(1, 9, 0), d.FirstMessage)
	assert.Equal(t, at(2, 21, 0), d.LastMessage)
	assert.Equal(t, 1, d.MediaCount)
	assert.Equal(t, 9, d.MostActiveHour)
	assert.Greater(t, d.AvgMessageLength, 0.0)

	assert.Nil(t, a.ConversationDetailsFor("missing@s.whatsapp.net"))
}

func TestRecentAndFirstMessages(t *testing.T) {
	msgs := []Message{
		// user1: three messages
		textMsg(1, "user1@s.whatsapp.net", false, at(1, 9, 0)),
		textMsg(2, "user1@s.whatsapp.net", true, at(3, 9, 0)),
		textMsg(3, "user1@s.whatsapp.net", false, at(5, 9, 0)),
		// user2: one message
		textMsg(4, "user2@s.whatsapp.net", false, at(4, 9, 0)),
		// group1: two messages
		textMsg(5, "group1@g.us", false, at(2, 9, 0)),
		textMsg(6, "group1@g.us", false, at(6, 9, 0)),
		// chat without any timestamp contributes no representative
		{ID: 7, ChatJID: "user3@s.whatsapp.net", Text: "saatsiz", HasText: true},
	}
	a := New(Dataset{Messages: msgs})

	recent := a.RecentMessages(50)
	require.Len(t, recent, 3)
	assert.Equal(t, at(6, 9, 0), recent[0].Timestamp) // group1's last
	assert.Equal(t, at(5, 9, 0), recent[1].Timestamp) // user1's last
	assert.Equal(t, at(4, 9, 0), recent[2].Timestamp) // user2's only

	first := a.FirstMessages(50)
	require.Len(t, first, 3)
	assert.Equal(t, at(1, 9, 0), first[0].Timestamp) // user1's first
	assert.Equal(t, at(2, 9, 0), first[1].Timestamp) // group1's first
	assert.Equal(t, at(4, 9, 0), first[2].Timestamp) // user2's only

	assert.Len(t, a.RecentMessages(2), 2)
	assert.Equal(t, at(6, 9, 0), a.RecentMessages(2)[0].Timestamp)
}
