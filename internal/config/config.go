package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr                string        `mapstructure:"addr" yaml:"addr"`
	OwnerUsername       string        `mapstructure:"owner_username" yaml:"owner_username"`
	LogLevel            string        `mapstructure:"log_level" yaml:"log_level"`
	StaticDir           string        `mapstructure:"static_dir" yaml:"static_dir"`
	NameColors          []string      `mapstructure:"name_colors" yaml:"name_colors"`
	ReadHeaderTimeout   time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout     time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxMessageBytes     int64         `mapstructure:"max_message_bytes" yaml:"max_message_bytes"`
	WSMessagesPerMinute int           `mapstructure:"ws_messages_per_minute" yaml:"ws_messages_per_minute"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:                ":8080",
		OwnerUsername:       "Finest",
		LogLevel:            "info",
		StaticDir:           "public",
		ReadHeaderTimeout:   5 * time.Second,
		ShutdownTimeout:     5 * time.Second,
		MaxMessageBytes:     1 << 20,
		WSMessagesPerMinute: 0,
	}
}
