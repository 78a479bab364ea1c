package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/analyzer"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/config"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/logger"
)

func fixtureAnalyzer() *analyzer.Analyzer {
	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	msg := func(offset int, chat, text string, fromMe bool) analyzer.Message {
		return analyzer.Message{
			ID:        int64(offset),
			ChatJID:   chat,
			FromMe:    fromMe,
			Timestamp: base.Add(time.Duration(offset) * time.Minute),
			Text:      text,
			HasText:   text != "",
		}
	}
	ds := analyzer.Dataset{
		Messages: []analyzer.Message{
			msg(0, "905551234567@s.whatsapp.net", "Merhaba dünya nasılsın", false),
			msg(5, "905551234567@s.whatsapp.net", "İyiyim teşekkürler 😂", true),
			msg(10, "905551234567@s.whatsapp.net", "Görüşürüz yarın", true),
			msg(20, "1234-5678@g.us", "Grup mesajı burada", false),
			{
				ID:        100,
				ChatJID:   "905551234567@s.whatsapp.net",
				FromMe:    false,
				Timestamp: base.Add(30 * time.Minute),
				MediaType: 1, // image
			},
		},
		Contacts: []analyzer.Contact{
			{JID: "905551234567@s.whatsapp.net", DisplayName: "Ada"},
		},
		Groups: []analyzer.Group{
			{JID: "1234-5678@g.us", Name: "Aile"},
		},
	}
	a := analyzer.New(ds)
	a.SeedRandom(1)
	return a
}

func TestGenerate(t *testing.T) {
	cfg := config.Default()
	cfg.OutputFile = filepath.Join(t.TempDir(), "report.html")
	log := logger.New("test", "ERROR")

	gen := NewGenerator(fixtureAnalyzer(), cfg, log)
	path, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, cfg.OutputFile, path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(body)

	assert.Contains(t, html, "WhatsApp Analiz Raporu")
	assert.Contains(t, html, "Ada")
	assert.Contains(t, html, "Aile")
	assert.Contains(t, html, "Genel İstatistikler")
	// Chart data lands in the inline script.
	assert.Contains(t, html, "const hourly =")
	// Turkish day labels survive into the heatmap.
	assert.Contains(t, html, "Pazartesi")
}

func TestGenerateBadPath(t *testing.T) {
	cfg := config.Default()
	cfg.OutputFile = filepath.Join(t.TempDir(), "missing", "report.html")
	log := logger.New("test", "ERROR")

	_, err := NewGenerator(fixtureAnalyzer(), cfg, log).Generate()
	assert.Error(t, err)
}

func TestBuildData(t *testing.T) {
	cfg := config.Default()
	log := logger.New("test", "ERROR")
	gen := NewGenerator(fixtureAnalyzer(), cfg, log)

	data := gen.buildData()
	assert.NotEmpty(t, data.RunID)
	assert.Equal(t, 5, data.Stats.TotalMessages)
	assert.Len(t, data.Hourly, 24)
	assert.Len(t, data.Heatmap, 7)
	assert.Len(t, data.DayNames, 7)
	assert.Positive(t, data.HeatMax)

	// Distribution lists only categories that occur.
	var labels []string
	for _, d := range data.Distribution {
		labels = append(labels, d.Label)
	}
	assert.ElementsMatch(t, []string{"Text", "Image"}, labels)

	// One conversation view per top contact, capped at five.
	require.Len(t, data.Conversations, 1)
	require.NotNil(t, data.Conversations[0].Details)
	assert.Equal(t, "Ada", data.Conversations[0].Details.ContactName)
	assert.True(t, strings.HasSuffix(data.Conversations[0].Details.ChatJID, "@s.whatsapp.net"))
}
