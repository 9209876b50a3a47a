// Package config provides configuration loading, validation, and defaults.
// Values come from a YAML file overridden by BOT_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// TaskConfig controls one scheduled background task.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// Config defines the application configuration parameters.
type Config struct {
	LineChannelAccessToken string `mapstructure:"line_channel_access_token" validate:"required"`
	LineChannelSecret      string `mapstructure:"line_channel_secret"       validate:"required"`

	SystemMessage      string `mapstructure:"system_message"`
	ModelEngine        string `mapstructure:"openai_model_engine"`
	MemoryMessageCount int    `mapstructure:"memory_message_count" validate:"min=1"`

	UseDocumentStore bool   `mapstructure:"use_document_store"`
	FileStoragePath  string `mapstructure:"file_storage_path"`
	DBPath           string `mapstructure:"db_path"`

	ServerAddr          string        `mapstructure:"server_addr"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout" validate:"min=1s,max=10m"`
	TranscriptChunkStep int           `mapstructure:"transcript_chunk_step" validate:"min=1"`

	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogJSON  bool   `mapstructure:"log_json"`

	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// Load reads configuration from the YAML file at path, applies defaults and
// BOT_* environment variable overrides, and validates the result. A missing
// config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is okay, defaults and env apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults registers a default for every key so AutomaticEnv overrides
// apply even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("line_channel_access_token", "")
	v.SetDefault("line_channel_secret", "")

	v.SetDefault("system_message", "你是一個樂於助人的助理")
	v.SetDefault("openai_model_engine", "gpt-3.5-turbo")
	v.SetDefault("memory_message_count", 2)

	v.SetDefault("use_document_store", false)
	v.SetDefault("file_storage_path", "db.json")
	v.SetDefault("db_path", "storage.db")

	v.SetDefault("server_addr", ":8080")
	v.SetDefault("request_timeout", time.Minute)
	v.SetDefault("transcript_chunk_step", 4)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
}
