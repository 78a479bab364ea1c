package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel string `json:"log_level"`

	// Input databases
	MsgstorePath string `json:"msgstore_path"`
	WaDBPath     string `json:"wa_db_path"`

	// Output
	OutputFile string `json:"output_file"`
	XLSXFile   string `json:"xlsx_file"` // empty disables the spreadsheet export

	// Result limits
	Limits Limits `json:"limits"`
}

// Limits controls how many rows each ranked result keeps.
type Limits struct {
	TopContacts  int `json:"top_contacts"`
	MediaSenders int `json:"media_senders"`
	Words        int `json:"words"`
	Emojis       int `json:"emojis"`
	Longest      int `json:"longest_messages"`
	Samples      int `json:"random_samples"`
	Conversation int `json:"conversation_messages"`
	PerContact   int `json:"per_contact_messages"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		LogLevel:   "INFO",
		OutputFile: "report.html",
		Limits: Limits{
			TopContacts:  20,
			MediaSenders: 10,
			Words:        50,
			Emojis:       30,
			Longest:      10,
			Samples:      20,
			Conversation: 100,
			PerContact:   50,
		},
	}
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load loads configuration from an optional JSON file, a .env file if one
// exists in the working directory, and environment variable overrides.
func Load(configPath string) *Config {
	// Missing .env is fine, godotenv only errors when the file is unreadable.
	_ = godotenv.Load()

	var cfg *Config
	var err error

	if configPath != "" {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			cfg = Default()
		}
	} else {
		cfg = Default()
	}

	// Environment variable overrides
	if v := os.Getenv("WA_ANALYZER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WA_ANALYZER_MSGSTORE"); v != "" {
		cfg.MsgstorePath = v
	}
	if v := os.Getenv("WA_ANALYZER_WA_DB"); v != "" {
		cfg.WaDBPath = v
	}
	if v := os.Getenv("WA_ANALYZER_OUTPUT"); v != "" {
		cfg.OutputFile = v
	}
	if v := os.Getenv("WA_ANALYZER_XLSX"); v != "" {
		cfg.XLSXFile = v
	}
	if v := os.Getenv("WA_ANALYZER_TOP_CONTACTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Limits.TopContacts = n
		}
	}

	return cfg
}
