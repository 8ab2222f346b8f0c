package config

import (
	"errors"
	"fmt"
	"os"
)

const (
	defaultAPIBaseURL   = "https://api.iptimeline.app/v1"
	defaultShareBaseURL = "https://iptimeline.app"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	APIBaseURL   string
	APIKey       string
	CollectionID string
	DBPath       string
	ShareBaseURL string
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		APIBaseURL:   os.Getenv("TIMELINE_API_BASE_URL"),
		APIKey:       os.Getenv("TIMELINE_API_KEY"),
		CollectionID: os.Getenv("TIMELINE_COLLECTION_ID"),
		DBPath:       os.Getenv("TIMELINE_DB_PATH"),
		ShareBaseURL: os.Getenv("TIMELINE_SHARE_BASE_URL"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "timeline.db"
	}
	if cfg.ShareBaseURL == "" {
		cfg.ShareBaseURL = defaultShareBaseURL
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.CollectionID == "" {
		return errors.New("TIMELINE_COLLECTION_ID is required")
	}
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	return nil
}
