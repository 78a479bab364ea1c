package app

import (
	"fmt"

	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/analyzer"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/export"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/config"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/logger"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/reader"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/report"
)

// App is the main application orchestrator.
type App struct {
	Config   *config.Config
	Log      *logger.Logger
	Reader   *reader.Reader
	Analyzer *analyzer.Analyzer
}

// New opens the databases and loads the full dataset into the analyzer.
func New(cfg *config.Config) (*App, error) {
	log := logger.New("analyzer", cfg.LogLevel)
	log.Infof("Initializing WhatsApp analyzer...")

	r, err := reader.Open(cfg.MsgstorePath, cfg.WaDBPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open message store: %w", err)
	}

	ds, err := r.Dataset()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	log.Infof("Loaded %d messages, %d contacts, %d groups",
		len(ds.Messages), len(ds.Contacts), len(ds.Groups))

	return &App{
		Config:   cfg,
		Log:      log,
		Reader:   r,
		Analyzer: analyzer.New(ds),
	}, nil
}

// Run computes the statistics and writes the configured outputs.
func (a *App) Run() error {
	defer a.Reader.Close()

	a.logQuickStats()

	a.Log.Infof("Generating HTML report...")
	gen := report.NewGenerator(a.Analyzer, a.Config, a.Log)
	path, err := gen.Generate()
	if err != nil {
		return err
	}
	a.Log.Infof("Analysis complete: %s", path)

	if a.Config.XLSXFile != "" {
		a.Log.Infof("Exporting spreadsheet...")
		w := export.NewWriter(a.Analyzer, a.Config, a.Log)
		if err := w.Write(); err != nil {
			return err
		}
	}

	return nil
}

// logQuickStats prints the headline numbers so a terminal run is useful
// even before the report is opened.
func (a *App) logQuickStats() {
	stats := a.Analyzer.GeneralStatistics()
	a.Log.Infof("Total messages: %d (%d sent, %d received)",
		stats.TotalMessages, stats.SentMessages, stats.ReceivedMessages)
	a.Log.Infof("Chats: %d (%d groups, %d personal)",
		stats.TotalChats, stats.TotalGroups, stats.TotalPersonalChats)
	if !stats.FirstMessage.IsZero() {
		a.Log.Infof("Date range: %s to %s (%d days)",
			stats.FirstMessage.Format("2006-01-02"),
			stats.LastMessage.Format("2006-01-02"),
			stats.DateRangeDays)
	}
	if deleted := a.Analyzer.DeletedMessagesCount(); deleted > 0 {
		a.Log.Infof("Deleted messages: %d", deleted)
	}
}
