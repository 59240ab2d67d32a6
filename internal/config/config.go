package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Redis     RedisConfig     `mapstructure:"redis"`
	AI        AIConfig        `mapstructure:"ai"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Practice  PracticeConfig  `mapstructure:"practice"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
	Corpus    CorpusConfig    `mapstructure:"corpus"`
}

type ServerConfig struct {
	Port        int      `mapstructure:"port"`
	Mode        string   `mapstructure:"mode"` // debug or release
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type PracticeConfig struct {
	MinAnswerWords       int           `mapstructure:"min_answer_words"`
	DefaultQuestionCount int           `mapstructure:"default_question_count"`
	MaxQuestionCount     int           `mapstructure:"max_question_count"`
	RunTTL               time.Duration `mapstructure:"run_ttl"`
}

type RateLimitConfig struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	File string `mapstructure:"file"` // empty disables the rotating file sink
}

type CorpusConfig struct {
	ExtraFile string `mapstructure:"extra_file"`
}

// Load reads config.yaml from dir (if present), then .env, then the environment
func Load(dir string) (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("COACH")
	v.AutomaticEnv()

	setDefaults(v)

	// Unprefixed names used by the deployment manifests
	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("redis.addr", "REDIS_URI")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("ai.base_url", "AI_PROXY_URL")
	v.BindEnv("ai.api_key", "AI_API_KEY")
	v.BindEnv("ai.model", "AI_MODEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Remove redis:// prefix if present
	cfg.Redis.Addr = strings.TrimPrefix(cfg.Redis.Addr, "redis://")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	ai := defaultAI()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "practicecoach")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", ai.Model)
	v.SetDefault("ai.temperature", ai.Temperature)
	v.SetDefault("ai.max_tokens", ai.MaxTokens)
	v.SetDefault("ai.timeout", ai.Timeout)
	v.SetDefault("ai.max_retries", ai.MaxRetries)
	v.SetDefault("ai.retry_backoff", ai.RetryBackoff)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)
	v.SetDefault("practice.min_answer_words", 20)
	v.SetDefault("practice.default_question_count", 5)
	v.SetDefault("practice.max_question_count", 50)
	v.SetDefault("practice.run_ttl", 6*time.Hour)
	v.SetDefault("rate_limit.requests", 30)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("log.file", "")
	v.SetDefault("corpus.extra_file", "")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo uri is required")
	}
	if c.AI.MaxRetries < 0 {
		return fmt.Errorf("ai.max_retries must not be negative")
	}
	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		return fmt.Errorf("ai.temperature must be within [0,2], got %.2f", c.AI.Temperature)
	}
	if c.Practice.MinAnswerWords < 1 {
		return fmt.Errorf("practice.min_answer_words must be at least 1")
	}
	if c.Practice.DefaultQuestionCount < 1 || c.Practice.DefaultQuestionCount > c.Practice.MaxQuestionCount {
		return fmt.Errorf("practice.default_question_count must be within [1,%d]", c.Practice.MaxQuestionCount)
	}
	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit requires positive requests and window")
	}
	if c.Server.Mode == "release" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("jwt secret is too short (%d chars), must be at least 32 characters in release mode", len(c.Auth.JWTSecret))
	}
	if c.Auth.JWTSecret == "" {
		c.Auth.JWTSecret = devJWTSecret
	}
	return nil
}

// IsDebug reports whether the server runs in debug mode
func (c *Config) IsDebug() bool {
	return c.Server.Mode == "debug"
}
