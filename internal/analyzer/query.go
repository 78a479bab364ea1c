package analyzer

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// MessageSample is the reduced row shape query helpers return.
type MessageSample struct {
	ChatJID   string
	FromMe    bool
	Timestamp time.Time
	Text      string
	MediaType int
}

func sampleOf(m *Message) MessageSample {
	return MessageSample{
		ChatJID:   m.ChatJID,
		FromMe:    m.FromMe,
		Timestamp: m.Timestamp,
		Text:      m.Text,
		MediaType: m.MediaType,
	}
}

// MessagesByKeyword returns messages whose text contains the keyword,
// case-insensitively, up to limit rows in dataset order.
func (a *Analyzer) MessagesByKeyword(keyword string, limit int) []MessageSample {
	needle := strings.ToLower(keyword)
	var out []MessageSample
	for i := range a.messages {
		m := &a.messages[i]
		if !m.HasText {
			continue
		}
		if !strings.Contains(strings.ToLower(m.Text), needle) {
			continue
		}
		out = append(out, sampleOf(m))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// longMessageMinLength filters out trivially short texts; longMessageMaxChars
// caps what ends up in the report.
const (
	longMessageMinLength = 10
	longMessageMaxChars  = 500
)

// LongMessage is one row of the longest-message ranking.
type LongMessage struct {
	Index  int
	Length int
	Text   string
}

// LongestMessages ranks message texts by character length, descending.
// Only texts longer than ten characters qualify; each result is truncated
// to its first 500 characters.
func (a *Analyzer) LongestMessages(limit int) []LongMessage {
	var out []LongMessage
	for idx, text := range a.ExtractTextContent() {
		length := utf8.RuneCountInString(text)
		if length <= longMessageMinLength {
			continue
		}
		out = append(out, LongMessage{
			Index:  idx,
			Length: length,
			Text:   truncateRunes(text, longMessageMaxChars),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Length > out[j].Length
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// RandomMessageSamples returns a uniform random sample, without
// replacement, of messages that carry text. The sample size is capped at
// the number of available messages.
func (a *Analyzer) RandomMessageSamples(count int) []MessageSample {
	var candidates []int
	for i := range a.messages {
		if a.messages[i].HasText {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 || count <= 0 {
		return nil
	}

	size := count
	if size > len(candidates) {
		size = len(candidates)
	}

	perm := a.rng.Perm(len(candidates))
	out := make([]MessageSample, 0, size)
	for _, p := range perm[:size] {
		out = append(out, sampleOf(&a.messages[candidates[p]]))
	}
	return out
}

// ConversationWithContact returns the messages of one chat in ascending
// chronological order. When the chat holds more than limit messages, only
// the most recent limit ones are kept; recency wins over earliest history.
func (a *Analyzer) ConversationWithContact(chatID string, limit int) []Message {
	var idx []int
	for i := range a.messages {
		if a.messages[i].ChatJID == chatID {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil
	}

	idx = a.sortedByTime(idx)
	if limit > 0 && len(idx) > limit {
		idx = idx[len(idx)-limit:]
	}

	out := make([]Message, 0, len(idx))
	for _, i := range idx {
		out = append(out, a.messages[i])
	}
	return out
}

// ConversationDetails is the per-chat summary of one conversation.
type ConversationDetails struct {
	ChatJID          string
	ContactName      string
	TotalMessages    int
	SentByMe         int
	Received         int
	FirstMessage     time.Time
	LastMessage      time.Time
	AvgMessageLength float64
	MediaCount       int
	MostActiveHour   int // -1 when no message carries a timestamp
}

// ConversationDetailsFor computes the summary for one chat. Returns nil
// when the chat holds no messages.
func (a *Analyzer) ConversationDetailsFor(chatID string) *ConversationDetails {
	details := &ConversationDetails{
		ChatJID:        chatID,
		MostActiveHour: -1,
	}

	var lengths []float64
	var hourCounts [24]int
	found := false

	for i := range a.messages {
		m := &a.messages[i]
		if m.ChatJID != chatID {
			continue
		}
		found = true
		details.TotalMessages++
		if m.FromMe {
			details.SentByMe++
		} else {
			details.Received++
		}
		if m.HasText {
			lengths = append(lengths, float64(utf8.RuneCountInString(m.Text)))
		}
		if m.MediaType > 0 {
			details.MediaCount++
		}
		if m.HasTimestamp() {
			if details.FirstMessage.IsZero() || m.Timestamp.Before(details.FirstMessage) {
				details.FirstMessage = m.Timestamp
			}
			if m.Timestamp.After(details.LastMessage) {
				details.LastMessage = m.Timestamp
			}
			hourCounts[m.Timestamp.Hour()]++
		}
	}

	if !found {
		return nil
	}

	details.ContactName = a.ContactName(chatID)
	details.AvgMessageLength = mean(lengths)

	best := 0
	for hour, count := range hourCounts {
		if count > best {
			best = count
			details.MostActiveHour = hour
		}
	}
	return details
}

// RecentMessages picks the chronologically last message of every chat,
// then re-ranks the picks globally by time descending and truncates.
func (a *Analyzer) RecentMessages(limit int) []MessageSample {
	return a.representativeMessages(limit, true)
}

// FirstMessages picks the chronologically first message of every chat,
// then re-ranks the picks globally by time ascending and truncates.
func (a *Analyzer) FirstMessages(limit int) []MessageSample {
	return a.representativeMessages(limit, false)
}

// representativeMessages implements the two-stage pattern: one
// representative row per chat, then a global re-sort. Chats without a
// single valid timestamp contribute nothing.
func (a *Analyzer) representativeMessages(limit int, newest bool) []MessageSample {
	byChat := a.messagesByChat()
	var picks []MessageSample

	for _, jid := range a.chatOrder() {
		var pick *Message
		for _, i := range byChat[jid] {
			m := &a.messages[i]
			if !m.HasTimestamp() {
				continue
			}
			if pick == nil {
				pick = m
				continue
			}
			if newest && m.Timestamp.After(pick.Timestamp) {
				pick = m
			}
			if !newest && m.Timestamp.Before(pick.Timestamp) {
				pick = m
			}
		}
		if pick != nil {
			picks = append(picks, sampleOf(pick))
		}
	}

	sort.SliceStable(picks, func(i, j int) bool {
		if newest {
			return picks[i].Timestamp.After(picks[j].Timestamp)
		}
		return picks[i].Timestamp.Before(picks[j].Timestamp)
	})
	if limit > 0 && len(picks) > limit {
		picks = picks[:limit]
	}
	return picks
}
