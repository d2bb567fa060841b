package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Env        string
	Port       string
	LogLevel   string
	LogFormat  string
	CORSOrigin []string

	Restaurant string
	Handoff    HandoffConfig
	Session    SessionConfig
	LLM        LLMConfig
	Catalog    CatalogConfig
	DB         DBConfig
	R2         R2Config
}

type HandoffConfig struct {
	BaseURL     string
	Destination string
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type LLMConfig struct {
	Provider      string // gemini | openai
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	Timeout       time.Duration
}

type CatalogConfig struct {
	Source string // builtin | postgres | r2
}

type DBConfig struct {
	URL string
}

type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	CatalogKey    string
}

const (
	SourceBuiltin  = "builtin"
	SourcePostgres = "postgres"
	SourceR2       = "r2"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Load reads the process environment, pulling in a .env file outside production.
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")
	if env != "production" {
		_ = godotenv.Load()
	}

	ttl, err := getDuration("SESSION_TTL", 2*time.Hour)
	if err != nil {
		return nil, err
	}
	timeout, err := getDuration("LLM_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:        env,
		Port:       getEnv("PORT", "8000"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "text"),
		CORSOrigin: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		Restaurant: getEnv("RESTAURANT_NAME", "Lumière Dining"),
		Handoff: HandoffConfig{
			BaseURL:     getEnv("HANDOFF_BASE_URL", "https://wa.me"),
			Destination: getEnv("HANDOFF_DESTINATION", "918200842466"),
		},
		Session: SessionConfig{
			Secret: os.Getenv("SESSION_SECRET"),
			TTL:    ttl,
		},
		LLM: LLMConfig{
			Provider:      strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
			GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
			GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
			Timeout:       timeout,
		},
		Catalog: CatalogConfig{
			Source: strings.ToLower(getEnv("CATALOG_SOURCE", SourceBuiltin)),
		},
		DB: DBConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		R2: R2Config{
			Endpoint:      os.Getenv("R2_ENDPOINT"),
			AccessKey:     os.Getenv("R2_ACCESS_KEY"),
			SecretKey:     os.Getenv("R2_SECRET_KEY"),
			Bucket:        os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL: os.Getenv("R2_PUBLIC_BASE_URL"),
			CatalogKey:    getEnv("R2_CATALOG_KEY", "catalog.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.Handoff.Destination == "" {
		return errors.New("HANDOFF_DESTINATION is required")
	}
	for _, r := range c.Handoff.Destination {
		if r < '0' || r > '9' {
			return errors.Errorf("HANDOFF_DESTINATION must be digits only with country code, got %q", c.Handoff.Destination)
		}
	}

	if c.IsProduction() && c.Session.Secret == "" {
		return errors.New("SESSION_SECRET is required in production")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}

	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return errors.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	switch c.Catalog.Source {
	case SourceBuiltin:
	case SourcePostgres:
		if c.DB.URL == "" {
			return errors.New("DATABASE_URL is required for CATALOG_SOURCE=postgres")
		}
	case SourceR2:
		if !c.R2.Configured() {
			return errors.New("R2_ENDPOINT, R2_ACCESS_KEY, R2_SECRET_KEY and R2_BUCKET_NAME are required for CATALOG_SOURCE=r2")
		}
	default:
		return errors.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Configured reports whether enough is set to talk to the bucket.
func (r R2Config) Configured() bool {
	return r.Endpoint != "" && r.AccessKey != "" && r.SecretKey != "" && r.Bucket != ""
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	// bare numbers are seconds
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Errorf("%s: invalid duration %q", key, v)
	}
	return time.Duration(n) * time.Second, nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
