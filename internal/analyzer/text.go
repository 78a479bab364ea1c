package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
)

// wordPattern matches word tokens, keeping the Turkish alphabet intact.
var wordPattern = regexp.MustCompile(`[0-9A-Za-z_ğüşıöçĞÜŞİÖÇ]+`)

// stopWords holds the Turkish function words plus the common English ones
// that would otherwise dominate every frequency table.
var stopWords = map[string]struct{}{
	"bir": {}, "bu": {}, "şu": {}, "ve": {}, "veya": {}, "ama": {}, "fakat": {},
	"için": {}, "ile": {}, "mi": {}, "mu": {}, "mı": {}, "mü": {}, "da": {},
	"de": {}, "ta": {}, "te": {}, "ki": {}, "ne": {}, "var": {}, "yok": {},
	"ben": {}, "sen": {}, "o": {}, "biz": {}, "siz": {}, "onlar": {},
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "been": {}, "be": {}, "have": {},
	"has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {},
}

// ExtractTextContent collects the text of every message that has one.
// Invalid UTF-8 bytes are dropped rather than failing the run.
func (a *Analyzer) ExtractTextContent() []string {
	var texts []string
	for i := range a.messages {
		if a.messages[i].HasText {
			texts = append(texts, strings.ToValidUTF8(a.messages[i].Text, ""))
		}
	}
	return texts
}

// WordCount is one (word, count) pair of the frequency table.
type WordCount struct {
	Word  string
	Count int
}

// WordFrequency returns the most used words across all message text,
// descending by count. Tokens of three letters or more survive; stop words
// do not. Ties keep first-encounter order.
func (a *Analyzer) WordFrequency(limit int) []WordCount {
	allText := strings.ToLower(strings.Join(a.ExtractTextContent(), " "))

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order int

	for _, word := range wordPattern.FindAllString(allText, -1) {
		if utf8.RuneCountInString(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, ok := counts[word]; !ok {
			firstSeen[word] = order
			order++
		}
		counts[word]++
	}

	out := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, WordCount{Word: word, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Word] < firstSeen[out[j].Word]
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// EmojiCount is one (emoji, count) pair of the frequency table.
type EmojiCount struct {
	Emoji string
	Count int
}

// EmojiFrequency returns the most used emoji across all message text,
// descending by count. Ties keep first-encounter order.
func (a *Analyzer) EmojiFrequency(limit int) []EmojiCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order int

	for _, text := range a.ExtractTextContent() {
		for _, r := range text {
			ch := string(r)
			if _, err := gomoji.GetInfo(ch); err != nil {
				continue
			}
			if _, ok := counts[ch]; !ok {
				firstSeen[ch] = order
				order++
			}
			counts[ch]++
		}
	}

	out := make([]EmojiCount, 0, len(counts))
	for e, count := range counts {
		out = append(out, EmojiCount{Emoji: e, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Emoji] < firstSeen[out[j].Emoji]
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// LengthStats summarizes message text lengths, in characters.
type LengthStats struct {
	AverageLength float64
	MedianLength  float64
	MaxLength     int
	MinLength     int
}

// MessageLengthStats computes length statistics over all message text.
// Returns nil when the dataset holds no text at all.
func (a *Analyzer) MessageLengthStats() *LengthStats {
	texts := a.ExtractTextContent()
	if len(texts) == 0 {
		return nil
	}

	lengths := make([]float64, len(texts))
	stats := &LengthStats{MinLength: utf8.RuneCountInString(texts[0])}
	for i, text := range texts {
		n := utf8.RuneCountInString(text)
		lengths[i] = float64(n)
		if n > stats.MaxLength {
			stats.MaxLength = n
		}
		if n < stats.MinLength {
			stats.MinLength = n
		}
	}
	stats.AverageLength = mean(lengths)
	stats.MedianLength = median(lengths)
	return stats
}
