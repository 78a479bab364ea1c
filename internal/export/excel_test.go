package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/analyzer"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/config"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/logger"
)

func TestWrite(t *testing.T) {
	base := time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	ds := analyzer.Dataset{
		Messages: []analyzer.Message{
			{ID: 1, ChatJID: "905551234567@s.whatsapp.net", Timestamp: base, Text: "Merhaba dünya nasılsın", HasText: true},
			{ID: 2, ChatJID: "905551234567@s.whatsapp.net", FromMe: true, Timestamp: base.Add(time.Minute), Text: "İyiyim teşekkürler", HasText: true},
			{ID: 3, ChatJID: "1234-5678@g.us", Timestamp: base.Add(2 * time.Minute), MediaType: 1},
		},
		Contacts: []analyzer.Contact{
			{JID: "905551234567@s.whatsapp.net", DisplayName: "Ada"},
		},
		Groups: []analyzer.Group{
			{JID: "1234-5678@g.us", Name: "Aile"},
		},
	}

	cfg := config.Default()
	cfg.XLSXFile = filepath.Join(t.TempDir(), "stats.xlsx")
	log := logger.New("test", "ERROR")

	w := NewWriter(analyzer.New(ds), cfg, log)
	require.NoError(t, w.Write())

	f, err := excelize.OpenFile(cfg.XLSXFile)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Genel", "Kişiler", "Gruplar", "Medya", "Kelimeler"},
		f.GetSheetList())

	// Headline row of the overview sheet.
	metric, err := f.GetCellValue("Genel", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Toplam Mesaj", metric)
	total, err := f.GetCellValue("Genel", "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", total)

	// Contact ranking resolves display names.
	name, err := f.GetCellValue("Kişiler", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)

	group, err := f.GetCellValue("Gruplar", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Aile", group)
}

func TestWriteBadPath(t *testing.T) {
	cfg := config.Default()
	cfg.XLSXFile = filepath.Join(t.TempDir(), "missing", "stats.xlsx")
	log := logger.New("test", "ERROR")

	w := NewWriter(analyzer.New(analyzer.Dataset{}), cfg, log)
	assert.Error(t, w.Write())
}
