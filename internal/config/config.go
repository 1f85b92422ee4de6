package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"docpipe/internal/logger"
)

type Config struct {
	// Firestore Configuration (record store)
	FirestoreProject    string
	FirestoreDatabase   string
	FirestoreCollection string

	// Tesseract Configuration
	TessdataDir string
	TessdataURL string

	// Pipeline Tunables
	MeaningfulLetterThreshold int
	OCRScale                  float64
	OCRPageCap                int
	DefaultLanguage           string
	DetectSampleMin           int
	DetectMinLength           int
	FetchTimeoutSeconds       int

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		FirestoreProject:    getEnv("FIRESTORE_PROJECT", ""),
		FirestoreDatabase:   getEnv("FIRESTORE_DATABASE", "(default)"),
		FirestoreCollection: getEnv("FIRESTORE_COLLECTION", "documents"),

		TessdataDir: getEnv("TESSDATA_DIR", defaultTessdataDir()),
		TessdataURL: getEnv("TESSDATA_URL", "https://raw.githubusercontent.com/tesseract-ocr/tessdata_fast/main"),

		MeaningfulLetterThreshold: getEnvInt("MEANINGFUL_LETTER_THRESHOLD", 40),
		OCRScale:                  getEnvFloat("OCR_SCALE", 2.0),
		OCRPageCap:                getEnvInt("OCR_PAGE_CAP", 50),
		DefaultLanguage:           getEnv("DEFAULT_LANGUAGE", "eng"),
		DetectSampleMin:           getEnvInt("DETECT_SAMPLE_MIN", 30),
		DetectMinLength:           getEnvInt("DETECT_MIN_LENGTH", 20),
		FetchTimeoutSeconds:       getEnvInt("FETCH_TIMEOUT_SECONDS", 60),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.MeaningfulLetterThreshold < 1 {
		return fmt.Errorf("MEANINGFUL_LETTER_THRESHOLD must be positive")
	}
	if c.OCRScale <= 0 {
		return fmt.Errorf("OCR_SCALE must be positive")
	}
	if c.OCRPageCap < 1 {
		return fmt.Errorf("OCR_PAGE_CAP must be positive")
	}
	if len(c.DefaultLanguage) != 3 {
		return fmt.Errorf("DEFAULT_LANGUAGE must be a 3-letter code, got %q", c.DefaultLanguage)
	}
	return nil
}

// HasStore reports whether a Firestore record store is configured.
// Without one, the CLI can still extract from local files and URLs.
func (c *Config) HasStore() bool {
	return c.FirestoreProject != ""
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func defaultTessdataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "docpipe-tessdata")
	}
	return filepath.Join(home, ".docpipe", "tessdata")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
