package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads .env, configs/config.yaml and the environment, in that order of
// increasing precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom("./configs", ".")
}

func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// APP_PORT, AI_GEMINI_API_KEY, ...
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideFromLegacyEnv(&cfg)
	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that the
// yaml file leaves out.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "EzyVoyage AI")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 5000)
	v.SetDefault("app.client_url", "http://localhost:5173")
	v.SetDefault("app.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.url", "")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.key_prefix", "ezyvoyage:")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 7*24*time.Hour)

	v.SetDefault("oauth.google.client_id", "")
	v.SetDefault("oauth.google.client_secret", "")
	v.SetDefault("oauth.google.redirect_url", "http://localhost:5000/api/auth/google/callback")
	v.SetDefault("oauth.google.state_ttl", 10*time.Minute)

	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.max_retries", 0)
	v.SetDefault("ai.retry_backoff", 500*time.Millisecond)
	v.SetDefault("ai.gemini.api_key", "")
	v.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	v.SetDefault("ai.gemini.embedding_model", "text-embedding-004")
	v.SetDefault("ai.openai.api_key", "")
	v.SetDefault("ai.openai.base_url", "")
	v.SetDefault("ai.openai.model", "gpt-4o-mini")
	v.SetDefault("ai.openai.embedding_model", "text-embedding-3-small")
	v.SetDefault("ai.breaker.max_requests", 3)
	v.SetDefault("ai.breaker.interval", 60*time.Second)
	v.SetDefault("ai.breaker.timeout", 30*time.Second)
	v.SetDefault("ai.breaker.failure_threshold", 5)

	v.SetDefault("places.base_url", "https://api.foursquare.com")
	v.SetDefault("places.api_key", "")
	v.SetDefault("places.timeout", 10*time.Second)

	v.SetDefault("photos.base_url", "https://api.unsplash.com")
	v.SetDefault("photos.access_key", "")
	v.SetDefault("photos.timeout", 10*time.Second)
	v.SetDefault("photos.destination_count", 5)

	v.SetDefault("recommendations.trips_per_mode", 8)
	v.SetDefault("recommendations.delay", time.Second)
	v.SetDefault("recommendations.concurrency", 1)
	v.SetDefault("recommendations.fallback_on_failure", false)

	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.from_name", "EzyVoyage AI")
	v.SetDefault("mail.use_ssl", false)
	v.SetDefault("mail.require_tls", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// overrideFromLegacyEnv maps the variable names used by existing deployments
// onto empty config values.
func overrideFromLegacyEnv(cfg *Config) {
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.App.ClientURL, "CLIENT_URL")
	setString(&cfg.Database.URL, "POSTGRES_URL", "DATABASE_URL")
	setString(&cfg.Redis.URL, "REDIS_URL")
	setString(&cfg.AI.Gemini.APIKey, "GOOGLE_API_KEY", "GEMINI_API_KEY")
	setString(&cfg.AI.OpenAI.APIKey, "OPENAI_API_KEY")
	setString(&cfg.Places.APIKey, "FOURSQUARE_API_KEY")
	setString(&cfg.Photos.AccessKey, "UNSPLASH_ACCESS_KEY")
	setString(&cfg.OAuth.Google.ClientID, "GOOGLE_CLIENT_ID")
	setString(&cfg.OAuth.Google.ClientSecret, "GOOGLE_CLIENT_SECRET")
	setString(&cfg.Mail.Host, "EMAIL_HOST")
	setString(&cfg.Mail.Username, "EMAIL_USER")
	setString(&cfg.Mail.Password, "EMAIL_PASS")

	if port, ok := envInt("PORT"); ok && os.Getenv("APP_PORT") == "" {
		cfg.App.Port = port
	}
	if port, ok := envInt("EMAIL_PORT"); ok && os.Getenv("MAIL_PORT") == "" {
		cfg.Mail.Port = port
	}
}

func setString(dst *string, names ...string) {
	if *dst != "" {
		return
	}
	for _, name := range names {
		if val := os.Getenv(name); val != "" {
			*dst = val
			return
		}
	}
}

func envInt(name string) (int, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func applyDefaults(cfg *Config) {
	if cfg.Mail.From == "" {
		cfg.Mail.From = cfg.Mail.Username
	}
	if !cfg.Mail.Enabled && cfg.Mail.Username != "" && cfg.Mail.Password != "" {
		cfg.Mail.Enabled = true
	}
	if cfg.Recommendations.Concurrency < 1 {
		cfg.Recommendations.Concurrency = 1
	}
	if cfg.Photos.DestinationCount < 0 {
		cfg.Photos.DestinationCount = 0
	}
	if cfg.AI.MaxRetries < 0 {
		cfg.AI.MaxRetries = 0
	}
	cfg.App.ClientURL = strings.TrimRight(cfg.App.ClientURL, "/")
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))
}

func validateConfig(cfg *Config) error {
	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		return fmt.Errorf("app.port out of range: %d", cfg.App.Port)
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	switch cfg.AI.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("ai.provider must be gemini or openai, got %q", cfg.AI.Provider)
	}
	if cfg.Recommendations.TripsPerMode <= 0 {
		return errors.New("recommendations.trips_per_mode must be positive")
	}
	if cfg.Recommendations.Delay < 0 {
		return errors.New("recommendations.delay must not be negative")
	}
	return nil
}
