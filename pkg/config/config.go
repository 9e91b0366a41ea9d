package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Feed     FeedConfig     `mapstructure:"feed"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type UploadConfig struct {
	Dir          string `mapstructure:"dir"`
	MaxImageSize int64  `mapstructure:"max_image_size"`
}

type FeedConfig struct {
	// Posts per page on the index, group, profile and follow-feed views.
	PageSize int `mapstructure:"page_size"`
	// How long cached list responses stay valid.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

var GlobalConfig Config

func Init() error {
	return load("config")
}

// InitTest loads the test configuration (config/config.test.yaml).
func InitTest() error {
	return load("config.test")
}

func load(name string) error {
	// Resolve the project root relative to this source file.
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(filepath.Dir(filepath.Dir(b)))

	viper.SetConfigName(name)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join(basepath, "config"))

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := viper.Unmarshal(&GlobalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults()
	return nil
}

func applyDefaults() {
	if GlobalConfig.Server.Addr == "" {
		GlobalConfig.Server.Addr = ":8080"
	}
	if GlobalConfig.Feed.PageSize <= 0 {
		GlobalConfig.Feed.PageSize = 10
	}
	if GlobalConfig.Feed.CacheTTL <= 0 {
		GlobalConfig.Feed.CacheTTL = 20 * time.Second
	}
	if GlobalConfig.Upload.Dir == "" {
		GlobalConfig.Upload.Dir = "media"
	}
	if GlobalConfig.Upload.MaxImageSize <= 0 {
		GlobalConfig.Upload.MaxImageSize = 10 * 1024 * 1024
	}
}
