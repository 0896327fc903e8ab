package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Upstream services
	Watsonx        WatsonxConfig
	GoogleCalendar GoogleCalendarConfig
	Voyage         VoyageConfig
	Qdrant         QdrantConfig

	// Domain behavior
	Knowledge  KnowledgeConfig
	Scheduling SchedulingConfig
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

// WatsonxConfig configures the IBM watsonx text-generation gateway.
type WatsonxConfig struct {
	Region    string
	APIKey    string
	ProjectID string
	ModelID   string
	BaseURL   string // overrides the region-derived URL when set
}

type GoogleCalendarConfig struct {
	CredentialsPath string
}

type VoyageConfig struct {
	APIKey string
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

// KnowledgeConfig tunes the document knowledge base pipeline.
type KnowledgeConfig struct {
	ChunkSize       int
	ChunkOverlap    int
	TopK            int
	AnswerCacheSize int
}

// SchedulingConfig holds meeting-scheduling behavior knobs.
type SchedulingConfig struct {
	Timezone          string
	WorkingHoursStart string // HH:MM
	WorkingHoursEnd   string // HH:MM
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Watsonx.Region = viper.GetString("watsonx.region")
	cfg.Watsonx.APIKey = viper.GetString("watsonx.api_key")
	cfg.Watsonx.ProjectID = viper.GetString("watsonx.project_id")
	cfg.Watsonx.ModelID = viper.GetString("watsonx.model_id")
	cfg.Watsonx.BaseURL = viper.GetString("watsonx.base_url")
	if key := viper.GetString("watsonx_api_key"); key != "" {
		cfg.Watsonx.APIKey = key
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Knowledge.ChunkSize = viper.GetInt("knowledge.chunk_size")
	cfg.Knowledge.ChunkOverlap = viper.GetInt("knowledge.chunk_overlap")
	cfg.Knowledge.TopK = viper.GetInt("knowledge.top_k")
	cfg.Knowledge.AnswerCacheSize = viper.GetInt("knowledge.answer_cache_size")

	cfg.Scheduling.Timezone = viper.GetString("scheduling.timezone")
	cfg.Scheduling.WorkingHoursStart = viper.GetString("scheduling.working_hours_start")
	cfg.Scheduling.WorkingHoursEnd = viper.GetString("scheduling.working_hours_end")

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

	viper.SetDefault("watsonx.region", "us-south")

	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "company_documents")
	viper.SetDefault("qdrant.vector_size", 1024)

	viper.SetDefault("knowledge.chunk_size", 500)
	viper.SetDefault("knowledge.chunk_overlap", 100)
	viper.SetDefault("knowledge.top_k", 5)
	viper.SetDefault("knowledge.answer_cache_size", 128)

	viper.SetDefault("scheduling.timezone", "UTC")
	viper.SetDefault("scheduling.working_hours_start", "09:00")
	viper.SetDefault("scheduling.working_hours_end", "17:00")
}
