package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msgWithText(id int64, text string) Message {
	return Message{ID: id, ChatJID: "u@s.whatsapp.net", Text: text, HasText: true}
}

func TestExtractTextContent(t *testing.T) {
	msgs := []Message{
		msgWithText(1, "merhaba"),
		{ID: 2, ChatJID: "u@s.whatsapp.net", MediaType: 1}, // media only, no text
		msgWithText(3, "g\xffünaydın"),                     // invalid byte dropped
	}
	a := New(Dataset{Messages: msgs})

	texts := a.ExtractTextContent()
	require.Len(t, texts, 2)
	assert.Equal(t, "merhaba", texts[0])
	assert.Equal(t, "günaydın", texts[1])
}

func TestWordFrequency(t *testing.T) {
	a := New(Dataset{Messages: []Message{msgWithText(1, "Bir bir test test test")}})

	freq := a.WordFrequency(50)
	require.NotEmpty(t, freq)
	assert.Equal(t, WordCount{Word: "test", Count: 3}, freq[0])
	for _, wc := range freq {
		assert.NotEqual(t, "bir", wc.Word)
	}
}

func TestWordFrequencyFiltering(t *testing.T) {
	a := New(Dataset{Messages: []Message{
		msgWithText(1, "ev su ama Çiçekler çiçekler yarın, yarın; yarın!"),
	}})

	freq := a.WordFrequency(50)
	require.Len(t, freq, 2)
	// Short tokens ("ev", "su") and stop words ("ama") vanish; case folds.
	assert.Equal(t, WordCount{Word: "yarın", Count: 3}, freq[0])
	assert.Equal(t, WordCount{Word: "çiçekler", Count: 2}, freq[1])
}

func TestWordFrequencyTiesKeepFirstEncounter(t *testing.T) {
	a := New(Dataset{Messages: []Message{msgWithText(1, "elma armut elma armut kiraz")}})

	freq := a.WordFrequency(50)
	require.Len(t, freq, 3)
	assert.Equal(t, "elma", freq[0].Word)
	assert.Equal(t, "armut", freq[1].Word)
	assert.Equal(t, "kiraz", freq[2].Word)
}

func TestWordFrequencyLimit(t *testing.T) {
	a := New(Dataset{Messages: []Message{msgWithText(1, "elma elma armut armut kiraz")}})
	assert.Len(t, a.WordFrequency(2), 2)
}

func TestEmojiFrequency(t *testing.T) {
	a := New(Dataset{Messages: []Message{
		msgWithText(1, "bugün harika 😂😂❤️"),
		msgWithText(2, "evet 😂"),
	}})

	freq := a.EmojiFrequency(30)
	require.NotEmpty(t, freq)
	assert.Equal(t, "😂", freq[0].Emoji)
	assert.Equal(t, 3, freq[0].Count)
}

func TestEmojiFrequencyEmpty(t *testing.T) {
	a := New(Dataset{Messages: []Message{msgWithText(1, "sadece yazı")}})
	assert.Empty(t, a.EmojiFrequency(30))
}

func TestMessageLengthStats(t *testing.T) {
	a := New(Dataset{Messages: []Message{
		msgWithText(1, "ab"),       // 2
		msgWithText(2, "abcd"),     // 4
		msgWithText(3, "abcdefgh"), // 8
	}})

	stats := a.MessageLengthStats()
	require.NotNil(t, stats)
	assert.InDelta(t, 14.0/3, stats.AverageLength, 1e-9)
	assert.Equal(t, 4.0, stats.MedianLength)
	assert.Equal(t, 8, stats.MaxLength)
	assert.Equal(t, 2, stats.MinLength)
}

func TestMessageLengthStatsEmpty(t *testing.T) {
	a := New(Dataset{})
	assert.Nil(t, a.MessageLengthStats())
}
