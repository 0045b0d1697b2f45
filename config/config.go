package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Gateway auth
	Gateway GatewayConfig

	// Commerce backend services
	Backend BackendConfig

	// LLM
	Gemini GeminiConfig

	// RAG
	Qdrant QdrantConfig
	Voyage VoyageConfig

	// Intent classification
	Classifier ClassifierConfig

	// Business policies
	Policy PolicyConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GatewayConfig configures the auth gate: static API keys for
// service-to-service calls, HS256 tokens for end users.
type GatewayConfig struct {
	APIKeys         map[string]string
	RoleMap         map[string][]string
	JWTSecret       string
	JWTTTL          time.Duration
	RateLimitPerMin int
}

// BackendConfig selects the commerce data source. Mode "stub" serves
// the built-in dataset; mode "http" proxies the Java commerce services.
type BackendConfig struct {
	Mode    string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
}

// ClassifierConfig selects the intent classification strategy.
type ClassifierConfig struct {
	Mode string // "keyword" | "llm"
}

// PolicyConfig holds the default business policies, used when the
// policy documents cannot be retrieved.
type PolicyConfig struct {
	CancellableStatuses  []string
	RefundProcessingDays int
	ReturnWindowDays     int
	RestockingFeePercent float64
	ReturnType           string
	EnforceReturnWindow  bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gateway auth
	cfg.Gateway.APIKeys = viper.GetStringMapString("gateway.api_keys")
	cfg.Gateway.RoleMap = viper.GetStringMapStringSlice("gateway.role_map")
	cfg.Gateway.JWTSecret = viper.GetString("gateway.jwt_secret")
	cfg.Gateway.JWTTTL = viper.GetDuration("gateway.jwt_ttl")
	cfg.Gateway.RateLimitPerMin = viper.GetInt("gateway.rate_limit_per_min")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Gateway.JWTSecret = secret
	}

	// Commerce backend
	cfg.Backend.Mode = viper.GetString("backend.mode")
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	if cfg.Backend.Mode == "http" && cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url is required when backend.mode is http")
	}

	// LLM
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// RAG
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Classifier
	cfg.Classifier.Mode = viper.GetString("classifier.mode")
	if cfg.Classifier.Mode != "keyword" && cfg.Classifier.Mode != "llm" {
		return nil, fmt.Errorf("classifier.mode must be keyword or llm, got %q", cfg.Classifier.Mode)
	}

	// Policies
	cfg.Policy.CancellableStatuses = viper.GetStringSlice("policy.cancellable_statuses")
	cfg.Policy.RefundProcessingDays = viper.GetInt("policy.refund_processing_days")
	cfg.Policy.ReturnWindowDays = viper.GetInt("policy.return_window_days")
	cfg.Policy.RestockingFeePercent = viper.GetFloat64("policy.restocking_fee_percent")
	cfg.Policy.ReturnType = viper.GetString("policy.return_type")
	cfg.Policy.EnforceReturnWindow = viper.GetBool("policy.enforce_return_window")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gateway.jwt_secret", "super-secret-key")
	viper.SetDefault("gateway.jwt_ttl", "60m")
	viper.SetDefault("gateway.rate_limit_per_min", 60)
	viper.SetDefault("gateway.api_keys", map[string]string{
		"internal-ai-service": "AI_INTERNAL_KEY_12345",
		"csr-portal":          "CSR_KEY_67890",
		"mobile-app":          "MOBILE_KEY_24680",
	})
	viper.SetDefault("gateway.role_map", map[string][]string{
		"internal-ai-service": {"AI_AGENT"},
		"csr-portal":          {"CSR", "ADMIN"},
		"mobile-app":          {"CUSTOMER"},
	})

	viper.SetDefault("backend.mode", "stub")

	viper.SetDefault("gemini.model", "gemini-2.5-flash")

	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "policies")
	viper.SetDefault("qdrant.vector_size", 1024)

	viper.SetDefault("classifier.mode", "keyword")

	viper.SetDefault("policy.cancellable_statuses", []string{"ORDER_PLACED", "PROCESSING"})
	viper.SetDefault("policy.refund_processing_days", 5)
	viper.SetDefault("policy.return_window_days", 10)
	viper.SetDefault("policy.restocking_fee_percent", 5)
	viper.SetDefault("policy.return_type", "REFUND")
	viper.SetDefault("policy.enforce_return_window", false)
}
