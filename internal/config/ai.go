package config

import (
	"strings"
	"time"
)

// AIConfig holds settings for the text-generation proxy used to score answers
type AIConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	APIKey       string        `mapstructure:"api_key"` // optional, sent as bearer token
	Model        string        `mapstructure:"model"`
	Temperature  float64       `mapstructure:"temperature"`
	MaxTokens    int           `mapstructure:"max_tokens"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
}

// IsEnabled returns true if a proxy endpoint is configured
func (c *AIConfig) IsEnabled() bool {
	return c.BaseURL != ""
}

// ProxyEndpoint returns the full URL of the generation proxy
func (c *AIConfig) ProxyEndpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + "/gemini-proxy"
}

func defaultAI() AIConfig {
	return AIConfig{
		Model:        "gemini-2.0-flash",
		Temperature:  0.3,
		MaxTokens:    2048,
		Timeout:      30 * time.Second,
		MaxRetries:   2,
		RetryBackoff: 500 * time.Millisecond,
	}
}
