package config

import "time"

type Config struct {
	App             AppConfig             `mapstructure:"app"`
	Database        DatabaseConfig        `mapstructure:"database"`
	Redis           RedisConfig           `mapstructure:"redis"`
	Auth            AuthConfig            `mapstructure:"auth"`
	OAuth           OAuthConfig           `mapstructure:"oauth"`
	AI              AIConfig              `mapstructure:"ai"`
	Places          PlacesConfig          `mapstructure:"places"`
	Photos          PhotosConfig          `mapstructure:"photos"`
	Recommendations RecommendationsConfig `mapstructure:"recommendations"`
	Mail            MailConfig            `mapstructure:"mail"`
	Logging         LoggingConfig         `mapstructure:"logging"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name"`
	Environment     string        `mapstructure:"environment"`
	Port            int           `mapstructure:"port"`
	ClientURL       string        `mapstructure:"client_url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL          string `mapstructure:"url"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// RedisConfig is optional; an empty URL keeps tokens in process memory.
type RedisConfig struct {
	URL       string `mapstructure:"url"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type OAuthConfig struct {
	Google GoogleOAuthConfig `mapstructure:"google"`
}

type GoogleOAuthConfig struct {
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	RedirectURL  string        `mapstructure:"redirect_url"`
	StateTTL     time.Duration `mapstructure:"state_ttl"`
}

func (g GoogleOAuthConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

type AIConfig struct {
	Provider     string        `mapstructure:"provider"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	Gemini       GeminiConfig  `mapstructure:"gemini"`
	OpenAI       OpenAIConfig  `mapstructure:"openai"`
	Breaker      BreakerConfig `mapstructure:"breaker"`
}

type GeminiConfig struct {
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding_model"`
}

type OpenAIConfig struct {
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	EmbeddingModel string `mapstructure:"embedding_model"`
}

type BreakerConfig struct {
	MaxRequests      uint32        `mapstructure:"max_requests"`
	Interval         time.Duration `mapstructure:"interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
	FailureThreshold uint32        `mapstructure:"failure_threshold"`
}

type PlacesConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PhotosConfig struct {
	BaseURL          string        `mapstructure:"base_url"`
	AccessKey        string        `mapstructure:"access_key"`
	Timeout          time.Duration `mapstructure:"timeout"`
	DestinationCount int           `mapstructure:"destination_count"`
}

type RecommendationsConfig struct {
	TripsPerMode      int           `mapstructure:"trips_per_mode"`
	Delay             time.Duration `mapstructure:"delay"`
	Concurrency       int           `mapstructure:"concurrency"`
	FallbackOnFailure bool          `mapstructure:"fallback_on_failure"`
}

type MailConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	From       string `mapstructure:"from"`
	FromName   string `mapstructure:"from_name"`
	UseSSL     bool   `mapstructure:"use_ssl"`
	RequireTLS bool   `mapstructure:"require_tls"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
