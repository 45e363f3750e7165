package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Sonarr  Sonarr  `json:"sonarr" yaml:"sonarr" mapstructure:"sonarr"`
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
	Manager Manager `json:"manager" yaml:"manager" mapstructure:"manager"`
}

// Sonarr configures the HTTP client behavior shared by every Sonarr connection
type Sonarr struct {
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Manager houses configuration related to season pack orchestration
type Manager struct {
	SeasonPacing           time.Duration `json:"seasonPacing" yaml:"seasonPacing" mapstructure:"seasonPacing"`
	DisconnectPollInterval time.Duration `json:"disconnectPollInterval" yaml:"disconnectPollInterval" mapstructure:"disconnectPollInterval"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
