package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Server Configuration
	ServerPort string

	// Database Configuration (empty path disables generation history)
	DatabasePath string

	// LLM Configuration
	LLMProvider string // "openai" or "groq"
	OpenAIKey   string
	GroqKey     string
	LLMBaseURL  string
	Model       string

	// Pipeline Configuration
	SenderName         string
	SummaryTemperature float64
	MessageTemperature float64
	MaxBackgroundChars int
}

// LoadConfig reads the configuration from the environment. It is called once
// at startup and the result is handed to every component that needs it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:         getEnv("PORT", "8080"),
		DatabasePath:       os.Getenv("DB_PATH"),
		LLMProvider:        getEnv("LLM_PROVIDER", "groq"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		GroqKey:            os.Getenv("GROQ_API_KEY"),
		LLMBaseURL:         getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Model:              getEnv("LLM_MODEL", "llama3-8b-8192"),
		SenderName:         getEnv("SENDER_NAME", "Sumana"),
		SummaryTemperature: getEnvFloat("SUMMARY_TEMPERATURE", 0.3),
		MessageTemperature: getEnvFloat("MESSAGE_TEMPERATURE", 0.7),
		MaxBackgroundChars: getEnvInt("MAX_BACKGROUND_CHARS", 4000),
	}
	if _, ok := os.LookupEnv("DB_PATH"); !ok {
		cfg.DatabasePath = "outreach.db"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the deployment defaults without touching the environment.
func Default() *Config {
	return &Config{
		ServerPort:         "8080",
		LLMProvider:        "groq",
		LLMBaseURL:         "https://api.groq.com/openai/v1",
		Model:              "llama3-8b-8192",
		SenderName:         "Sumana",
		SummaryTemperature: 0.3,
		MessageTemperature: 0.7,
		MaxBackgroundChars: 4000,
	}
}

// Validate checks the values that would otherwise fail later in a request.
// A missing API key is allowed here; the LLM service refuses to call out
// without one.
func (c *Config) Validate() error {
	if c.LLMProvider != "openai" && c.LLMProvider != "groq" {
		return fmt.Errorf("invalid LLM_PROVIDER %q: must be 'openai' or 'groq'", c.LLMProvider)
	}
	if c.SummaryTemperature < 0 || c.SummaryTemperature > 1 {
		return fmt.Errorf("SUMMARY_TEMPERATURE must be within [0,1], got %v", c.SummaryTemperature)
	}
	if c.MessageTemperature < 0 || c.MessageTemperature > 1 {
		return fmt.Errorf("MESSAGE_TEMPERATURE must be within [0,1], got %v", c.MessageTemperature)
	}
	if c.MaxBackgroundChars <= 0 {
		return fmt.Errorf("MAX_BACKGROUND_CHARS must be positive, got %d", c.MaxBackgroundChars)
	}
	if c.SenderName == "" {
		return fmt.Errorf("SENDER_NAME must not be empty")
	}
	return nil
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	if c.LLMProvider == "openai" {
		return c.OpenAIKey
	}
	return c.GroqKey
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
