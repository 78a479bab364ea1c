package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/analyzer"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/config"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/logger"
)

// Generator renders the computed statistics into one self-contained HTML
// document. All heavy lifting happens in the analyzer; this layer only
// formats values and feeds the chart scripts.
type Generator struct {
	analyzer *analyzer.Analyzer
	cfg      *config.Config
	log      *logger.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(a *analyzer.Analyzer, cfg *config.Config, log *logger.Logger) *Generator {
	return &Generator{analyzer: a, cfg: cfg, log: log}
}

// CategoryCount is one slice of the type-distribution pie.
type CategoryCount struct {
	Label string
	Count int
}

// ConversationView couples a chat summary with its recent messages for the
// conversation viewer section.
type ConversationView struct {
	Details  *analyzer.ConversationDetails
	Messages []analyzer.Message
}

// Data is everything the HTML template consumes.
type Data struct {
	RunID       string
	GeneratedAt time.Time

	Stats        analyzer.GeneralStats
	Distribution []CategoryCount
	Monthly      []analyzer.PeriodCount
	Hourly       []int
	Days         []analyzer.PeriodCount
	DayNames     []string
	HourLabels   []int
	Heatmap      [][]int
	HeatMax      int

	TopContacts  []analyzer.ContactStats
	Groups       []analyzer.GroupStats
	MediaStats   analyzer.MediaStats
	MediaSenders []analyzer.MediaSenderStats

	Words        []analyzer.WordCount
	Emojis       []analyzer.EmojiCount
	LengthStats  *analyzer.LengthStats
	ResponseTime *analyzer.ResponseTimeStats
	DeletedCount int

	Longest []analyzer.LongMessage
	Recent  []analyzer.MessageSample
	First   []analyzer.MessageSample
	Samples []analyzer.MessageSample

	Conversations []ConversationView
}

// Generate writes the report and returns its path.
func (g *Generator) Generate() (string, error) {
	data := g.buildData()

	tmpl, err := template.New("report").Funcs(templateFuncs(g.analyzer)).Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse report template: %w", err)
	}

	out, err := os.Create(g.cfg.OutputFile)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer out.Close()

	if err := tmpl.Execute(out, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	g.log.Infof("Report written to %s", g.cfg.OutputFile)
	return g.cfg.OutputFile, nil
}

func (g *Generator) buildData() *Data {
	a := g.analyzer
	limits := g.cfg.Limits

	dist := a.MessageTypeDistribution()
	var distribution []CategoryCount
	for _, c := range analyzer.Categories {
		if dist[c] > 0 {
			distribution = append(distribution, CategoryCount{Label: c.String(), Count: dist[c]})
		}
	}

	hourly := a.MessagesByHour()
	grid := a.ActivityHeatmap()
	heatmap := make([][]int, 7)
	heatMax := 0
	for d := 0; d < 7; d++ {
		heatmap[d] = grid[d][:]
		for _, n := range grid[d] {
			if n > heatMax {
				heatMax = n
			}
		}
	}
	names := analyzer.DayNames()
	hourLabels := make([]int, 24)
	for h := range hourLabels {
		hourLabels[h] = h
	}

	topContacts := a.TopContacts(limits.TopContacts)
	var conversations []ConversationView
	for i, cs := range topContacts {
		if i >= 5 {
			break // viewer covers the five busiest chats only
		}
		conversations = append(conversations, ConversationView{
			Details:  a.ConversationDetailsFor(cs.ChatJID),
			Messages: a.ConversationWithContact(cs.ChatJID, limits.Conversation),
		})
	}

	return &Data{
		RunID:         uuid.NewString(),
		GeneratedAt:   time.Now(),
		Stats:         a.GeneralStatistics(),
		Distribution:  distribution,
		Monthly:       a.MessagesByMonth(),
		Hourly:        hourly[:],
		Days:          a.MessagesByDayOfWeek(),
		DayNames:      names[:],
		HourLabels:    hourLabels,
		Heatmap:       heatmap,
		HeatMax:       heatMax,
		TopContacts:   topContacts,
		Groups:        a.GroupStatistics(),
		MediaStats:    a.MediaStatistics(),
		MediaSenders:  a.TopMediaSenders(limits.MediaSenders),
		Words:         a.WordFrequency(limits.Words),
		Emojis:        a.EmojiFrequency(limits.Emojis),
		LengthStats:   a.MessageLengthStats(),
		ResponseTime:  a.ResponseTimeAnalysis(),
		DeletedCount:  a.DeletedMessagesCount(),
		Longest:       a.LongestMessages(limits.Longest),
		Recent:        a.RecentMessages(limits.PerContact),
		First:         a.FirstMessages(limits.PerContact),
		Samples:       a.RandomMessageSamples(limits.Samples),
		Conversations: conversations,
	}
}

func templateFuncs(a *analyzer.Analyzer) template.FuncMap {
	return template.FuncMap{
		"js": func(v interface{}) template.JS {
			b, err := json.Marshal(v)
			if err != nil {
				return template.JS("null")
			}
			return template.JS(b)
		},
		"ftime": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("2006-01-02 15:04:05")
		},
		"fdate": func(t time.Time) string {
			if t.IsZero() {
				return "-"
			}
			return t.Format("2006-01-02")
		},
		"f1": func(v float64) string {
			return fmt.Sprintf("%.1f", v)
		},
		"f2": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"inc": func(i int) int {
			return i + 1
		},
		"heat": func(n, max int) string {
			if n == 0 || max == 0 {
				return "0"
			}
			return fmt.Sprintf("%.2f", 0.1+0.9*float64(n)/float64(max))
		},
		"name": func(jid string) string {
			return a.ContactName(jid)
		},
		"direction": func(fromMe bool) string {
			if fromMe {
				return "Gönderilen"
			}
			return "Alınan"
		},
	}
}
