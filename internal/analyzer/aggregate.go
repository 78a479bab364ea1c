package analyzer

import (
	"math"
	"sort"
	"time"

	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/wajid"
)

// dayNames are the Monday-first day labels used on charts.
var dayNames = [7]string{"Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi", "Pazar"}

// DayNames returns the Monday-first day labels.
func DayNames() [7]string {
	return dayNames
}

// mondayWeekday converts time.Weekday (Sunday=0) to Monday=0..Sunday=6.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// GeneralStats holds the headline numbers of a dataset.
type GeneralStats struct {
	TotalMessages      int
	TotalChats         int
	TotalMedia         int
	TotalGroups        int
	TotalPersonalChats int
	FirstMessage       time.Time
	LastMessage        time.Time
	DateRangeDays      int
	MostActiveDay      string
	MostActiveDayCount int
	SentMessages       int
	ReceivedMessages   int
}

// GeneralStatistics computes the headline numbers over the full dataset.
// Messages without a timestamp still count toward the totals but are
// excluded from the date-based figures.
func (a *Analyzer) GeneralStatistics() GeneralStats {
	stats := GeneralStats{TotalMessages: len(a.messages)}

	chats := make(map[string]struct{})
	groupChats := make(map[string]struct{})
	dayCounts := make(map[string]int)

	for i := range a.messages {
		m := &a.messages[i]
		if m.ChatJID != "" {
			chats[m.ChatJID] = struct{}{}
			if m.IsGroup() {
				groupChats[m.ChatJID] = struct{}{}
			}
		}
		if m.MediaType > 0 {
			stats.TotalMedia++
		}
		if m.FromMe {
			stats.SentMessages++
		} else {
			stats.ReceivedMessages++
		}
		if m.HasTimestamp() {
			if stats.FirstMessage.IsZero() || m.Timestamp.Before(stats.FirstMessage) {
				stats.FirstMessage = m.Timestamp
			}
			if m.Timestamp.After(stats.LastMessage) {
				stats.LastMessage = m.Timestamp
			}
			dayCounts[m.Timestamp.Format("2006-01-02")]++
		}
	}

	stats.TotalChats = len(chats)
	stats.TotalGroups = len(groupChats)
	stats.TotalPersonalChats = stats.TotalChats - stats.TotalGroups

	if !stats.FirstMessage.IsZero() {
		stats.DateRangeDays = int(stats.LastMessage.Sub(stats.FirstMessage).Hours() / 24)
	}

	// Busiest calendar date; earliest date wins a tie for determinism.
	for day, count := range dayCounts {
		if count > stats.MostActiveDayCount ||
			(count == stats.MostActiveDayCount && (stats.MostActiveDay == "" || day < stats.MostActiveDay)) {
			stats.MostActiveDay = day
			stats.MostActiveDayCount = count
		}
	}

	return stats
}

// MessageTypeDistribution counts messages per content category across the
// whole dataset. Every category is present in the result, zero or not, so
// the counts always sum to the total message count.
func (a *Analyzer) MessageTypeDistribution() map[Category]int {
	dist := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		dist[c] = 0
	}
	for i := range a.messages {
		dist[ClassifyMediaType(a.messages[i].MediaType)]++
	}
	return dist
}

// PeriodCount is one labeled bucket of a frequency table.
type PeriodCount struct {
	Label string
	Count int
}

// MessagesByMonth groups messages with valid timestamps by calendar month,
// labeled YYYY-MM, in ascending month order.
func (a *Analyzer) MessagesByMonth() []PeriodCount {
	counts := make(map[string]int)
	for i := range a.messages {
		if a.messages[i].HasTimestamp() {
			counts[a.messages[i].Timestamp.Format("2006-01")]++
		}
	}
	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]PeriodCount, 0, len(months))
	for _, m := range months {
		out = append(out, PeriodCount{Label: m, Count: counts[m]})
	}
	return out
}

// MessagesByHour returns message counts for every hour of the day, 0-23.
func (a *Analyzer) MessagesByHour() [24]int {
	var hours [24]int
	for i := range a.messages {
		if a.messages[i].HasTimestamp() {
			hours[a.messages[i].Timestamp.Hour()]++
		}
	}
	return hours
}

// MessagesByDayOfWeek returns Monday-first day buckets with localized labels.
func (a *Analyzer) MessagesByDayOfWeek() []PeriodCount {
	var days [7]int
	for i := range a.messages {
		if a.messages[i].HasTimestamp() {
			days[mondayWeekday(a.messages[i].Timestamp)]++
		}
	}
	out := make([]PeriodCount, 7)
	for d := 0; d < 7; d++ {
		out[d] = PeriodCount{Label: dayNames[d], Count: days[d]}
	}
	return out
}

// ActivityHeatmap returns the day-of-week x hour-of-day count grid.
// Rows are Monday-first, columns are hours 0-23.
func (a *Analyzer) ActivityHeatmap() [7][24]int {
	var grid [7][24]int
	for i := range a.messages {
		if a.messages[i].HasTimestamp() {
			t := a.messages[i].Timestamp
			grid[mondayWeekday(t)][t.Hour()]++
		}
	}
	return grid
}

// ContactStats is one row of the per-contact ranking.
type ContactStats struct {
	ChatJID       string
	ContactName   string
	TotalMessages int
	SentByMe      int
	Received      int
	LastMessage   time.Time
	BalanceScore  float64
}

// TopContacts ranks non-group chats by message count, descending.
// The balance score is sent/(total+1) rounded to two decimals; the +1
// keeps the ratio defined for any chat and damps tiny samples.
func (a *Analyzer) TopContacts(limit int) []ContactStats {
	byChat := make(map[string]*ContactStats)
	var order []string

	for i := range a.messages {
		m := &a.messages[i]
		if m.ChatJID == "" || m.IsGroup() {
			continue
		}
		cs, ok := byChat[m.ChatJID]
		if !ok {
			cs = &ContactStats{ChatJID: m.ChatJID}
			byChat[m.ChatJID] = cs
			order = append(order, m.ChatJID)
		}
		cs.TotalMessages++
		if m.FromMe {
			cs.SentByMe++
		}
		if m.HasTimestamp() && m.Timestamp.After(cs.LastMessage) {
			cs.LastMessage = m.Timestamp
		}
	}

	out := make([]ContactStats, 0, len(order))
	for _, jid := range order {
		cs := byChat[jid]
		cs.Received = cs.TotalMessages - cs.SentByMe
		cs.ContactName = a.ContactName(jid)
		cs.BalanceScore = round2(float64(cs.SentByMe) / float64(cs.TotalMessages+1))
		out = append(out, *cs)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalMessages > out[j].TotalMessages
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GroupStats is one row of the per-group ranking.
type GroupStats struct {
	GroupJID      string
	GroupName     string
	TotalMessages int
	FirstMessage  time.Time
	LastMessage   time.Time
}

// GroupStatistics ranks group chats by message count, descending. Group
// names come from the group table, falling back to the JID local part.
func (a *Analyzer) GroupStatistics() []GroupStats {
	byChat := make(map[string]*GroupStats)
	var order []string

	for i := range a.messages {
		m := &a.messages[i]
		if m.ChatJID == "" || !m.IsGroup() {
			continue
		}
		gs, ok := byChat[m.ChatJID]
		if !ok {
			gs = &GroupStats{GroupJID: m.ChatJID}
			byChat[m.ChatJID] = gs
			order = append(order, m.ChatJID)
		}
		gs.TotalMessages++
		if m.HasTimestamp() {
			if gs.FirstMessage.IsZero() || m.Timestamp.Before(gs.FirstMessage) {
				gs.FirstMessage = m.Timestamp
			}
			if m.Timestamp.After(gs.LastMessage) {
				gs.LastMessage = m.Timestamp
			}
		}
	}

	out := make([]GroupStats, 0, len(order))
	for _, jid := range order {
		gs := byChat[jid]
		gs.GroupName = a.groupName(jid)
		out = append(out, *gs)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalMessages > out[j].TotalMessages
	})
	return out
}

func (a *Analyzer) groupName(jid string) string {
	if g, ok := a.groups[jid]; ok && g.Name != "" {
		return g.Name
	}
	return wajid.LocalPart(jid)
}

// MediaStats holds per-category media totals.
type MediaStats struct {
	TotalImages    int
	TotalVideos    int
	TotalAudio     int
	TotalDocuments int
	TotalGIFs      int
	TotalStickers  int
}

// MediaStatistics summarizes media usage from the type distribution.
func (a *Analyzer) MediaStatistics() MediaStats {
	dist := a.MessageTypeDistribution()
	return MediaStats{
		TotalImages:    dist[CategoryImage],
		TotalVideos:    dist[CategoryVideo],
		TotalAudio:     dist[CategoryAudio],
		TotalDocuments: dist[CategoryDocument],
		TotalGIFs:      dist[CategoryGIF],
		TotalStickers:  dist[CategorySticker],
	}
}

// MediaSenderStats is one row of the media-sender ranking.
type MediaSenderStats struct {
	ChatJID     string
	ContactName string
	TotalMedia  int
	Images      int
	Audio       int
	Videos      int
}

// TopMediaSenders ranks chats by how many media messages they hold,
// descending, with image/audio/video sub-counts.
func (a *Analyzer) TopMediaSenders(limit int) []MediaSenderStats {
	byChat := make(map[string]*MediaSenderStats)
	var order []string

	for i := range a.messages {
		m := &a.messages[i]
		if m.ChatJID == "" || m.MediaType <= 0 {
			continue
		}
		ms, ok := byChat[m.ChatJID]
		if !ok {
			ms = &MediaSenderStats{ChatJID: m.ChatJID}
			byChat[m.ChatJID] = ms
			order = append(order, m.ChatJID)
		}
		ms.TotalMedia++
		switch m.MediaType {
		case mediaCodeImage:
			ms.Images++
		case mediaCodeAudio:
			ms.Audio++
		case mediaCodeVideo:
			ms.Videos++
		}
	}

	out := make([]MediaSenderStats, 0, len(order))
	for _, jid := range order {
		ms := byChat[jid]
		ms.ContactName = a.ContactName(jid)
		out = append(out, *ms)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalMedia > out[j].TotalMedia
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// maxResponseMinutes is the cutoff above which an outbound message is no
// longer considered a reply to the preceding inbound one.
const maxResponseMinutes = 1440

// ResponseTimeStats summarizes inferred reply delays, in minutes.
type ResponseTimeStats struct {
	AverageMinutes float64
	MedianMinutes  float64
	MinMinutes     float64
	MaxMinutes     float64
	SampleSize     int
}

// ResponseTimeAnalysis infers reply delays from conversational turn-taking:
// within each chat, every inbound message immediately followed by an
// outbound one contributes the delta in minutes, provided it falls inside
// (0, 1440). Returns nil when no pair qualifies, so callers can tell
// "no data" apart from a zero average.
func (a *Analyzer) ResponseTimeAnalysis() *ResponseTimeStats {
	byChat := a.messagesByChat()
	var deltas []float64

	for _, jid := range a.chatOrder() {
		idx := a.sortedByTime(byChat[jid])
		for i := 1; i < len(idx); i++ {
			prev, curr := &a.messages[idx[i-1]], &a.messages[idx[i]]
			if !prev.HasTimestamp() || !curr.HasTimestamp() {
				continue
			}
			if prev.FromMe || !curr.FromMe {
				continue
			}
			delta := curr.Timestamp.Sub(prev.Timestamp).Minutes()
			if delta > 0 && delta < maxResponseMinutes {
				deltas = append(deltas, delta)
			}
		}
	}

	if len(deltas) == 0 {
		return nil
	}

	stats := &ResponseTimeStats{
		AverageMinutes: mean(deltas),
		MedianMinutes:  median(deltas),
		MinMinutes:     deltas[0],
		MaxMinutes:     deltas[0],
		SampleSize:     len(deltas),
	}
	for _, d := range deltas {
		if d < stats.MinMinutes {
			stats.MinMinutes = d
		}
		if d > stats.MaxMinutes {
			stats.MaxMinutes = d
		}
	}
	return stats
}

// deletedStatus is the provider's status code for a deleted message.
const deletedStatus = 13

// DeletedMessagesCount counts messages flagged as deleted.
func (a *Analyzer) DeletedMessagesCount() int {
	count := 0
	for i := range a.messages {
		if a.messages[i].Status == deletedStatus {
			count++
		}
	}
	return count
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
