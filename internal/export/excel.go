package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/analyzer"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/config"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/logger"
)

const timeLayout = "2006-01-02 15:04:05"

// Writer exports the computed statistics as an XLSX workbook, one sheet
// per result group.
type Writer struct {
	analyzer *analyzer.Analyzer
	cfg      *config.Config
	log      *logger.Logger
}

// NewWriter creates a spreadsheet exporter.
func NewWriter(a *analyzer.Analyzer, cfg *config.Config, log *logger.Logger) *Writer {
	return &Writer{analyzer: a, cfg: cfg, log: log}
}

// Write builds the workbook and saves it to the configured path.
func (w *Writer) Write() error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.overviewSheet(f); err != nil {
		return err
	}
	if err := w.contactsSheet(f); err != nil {
		return err
	}
	if err := w.groupsSheet(f); err != nil {
		return err
	}
	if err := w.mediaSheet(f); err != nil {
		return err
	}
	if err := w.wordsSheet(f); err != nil {
		return err
	}

	// excelize seeds every workbook with "Sheet1"; drop it once the real
	// sheets exist.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SaveAs(w.cfg.XLSXFile); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.log.Infof("Workbook written to %s", w.cfg.XLSXFile)
	return nil
}

func (w *Writer) overviewSheet(f *excelize.File) error {
	const sheet = "Genel"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	stats := w.analyzer.GeneralStatistics()
	rows := [][]interface{}{
		{"Metrik", "Değer"},
		{"Toplam Mesaj", stats.TotalMessages},
		{"Toplam Sohbet", stats.TotalChats},
		{"Grup Sayısı", stats.TotalGroups},
		{"Kişisel Sohbet", stats.TotalPersonalChats},
		{"Toplam Medya", stats.TotalMedia},
		{"Gönderilen", stats.SentMessages},
		{"Alınan", stats.ReceivedMessages},
		{"Silinen Mesaj", w.analyzer.DeletedMessagesCount()},
	}
	if !stats.FirstMessage.IsZero() {
		rows = append(rows,
			[]interface{}{"İlk Mesaj", stats.FirstMessage.Format(timeLayout)},
			[]interface{}{"Son Mesaj", stats.LastMessage.Format(timeLayout)},
			[]interface{}{"Gün Aralığı", stats.DateRangeDays},
			[]interface{}{"En Yoğun Gün", stats.MostActiveDay},
		)
	}
	return writeRows(f, sheet, rows)
}

func (w *Writer) contactsSheet(f *excelize.File) error {
	const sheet = "Kişiler"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	rows := [][]interface{}{
		{"Kişi", "Toplam", "Gönderilen", "Alınan", "Denge", "Son Mesaj"},
	}
	for _, c := range w.analyzer.TopContacts(w.cfg.Limits.TopContacts) {
		rows = append(rows, []interface{}{
			c.ContactName, c.TotalMessages, c.SentByMe, c.Received,
			c.BalanceScore, formatTime(c.LastMessage),
		})
	}
	return writeRows(f, sheet, rows)
}

func (w *Writer) groupsSheet(f *excelize.File) error {
	const sheet = "Gruplar"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	rows := [][]interface{}{
		{"Grup", "Mesaj", "İlk Mesaj", "Son Mesaj"},
	}
	for _, g := range w.analyzer.GroupStatistics() {
		rows = append(rows, []interface{}{
			g.GroupName, g.TotalMessages,
			formatTime(g.FirstMessage), formatTime(g.LastMessage),
		})
	}
	return writeRows(f, sheet, rows)
}

func (w *Writer) mediaSheet(f *excelize.File) error {
	const sheet = "Medya"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	rows := [][]interface{}{
		{"Kişi", "Toplam Medya", "Fotoğraf", "Ses", "Video"},
	}
	for _, s := range w.analyzer.TopMediaSenders(w.cfg.Limits.MediaSenders) {
		rows = append(rows, []interface{}{
			s.ContactName, s.TotalMedia, s.Images, s.Audio, s.Videos,
		})
	}
	return writeRows(f, sheet, rows)
}

func (w *Writer) wordsSheet(f *excelize.File) error {
	const sheet = "Kelimeler"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	rows := [][]interface{}{
		{"Kelime", "Frekans", "", "Emoji", "Frekans"},
	}
	words := w.analyzer.WordFrequency(w.cfg.Limits.Words)
	emojis := w.analyzer.EmojiFrequency(w.cfg.Limits.Emojis)
	n := len(words)
	if len(emojis) > n {
		n = len(emojis)
	}
	for i := 0; i < n; i++ {
		row := make([]interface{}, 5)
		if i < len(words) {
			row[0], row[1] = words[i].Word, words[i].Count
		}
		if i < len(emojis) {
			row[3], row[4] = emojis[i].Emoji, emojis[i].Count
		}
		rows = append(rows, row)
	}
	return writeRows(f, sheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(timeLayout)
}
