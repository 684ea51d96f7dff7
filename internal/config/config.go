// Package config loads apassphrase settings from a YAML file and the
// environment.
package config

import (
	"net"
	"strconv"
	"time"
)

// DefaultBackend is the public apassphrase backend.
const DefaultBackend = "https://api-apassphrase.herokuapp.com/"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Remote     RemoteConfig     `yaml:"remote"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds backend HTTP server settings.
type ServerConfig struct {
	Host          string        `yaml:"host"           env:"APASSPHRASE_HOST"           env-default:"0.0.0.0"`
	Port          int           `yaml:"port"           env:"APASSPHRASE_PORT"           env-default:"8080"`
	ReadTimeout   time.Duration `yaml:"read_timeout"   env:"APASSPHRASE_READ_TIMEOUT"   env-default:"10s"`
	WriteTimeout  time.Duration `yaml:"write_timeout"  env:"APASSPHRASE_WRITE_TIMEOUT"  env-default:"10s"`
	AllowedOrigin string        `yaml:"allowed_origin" env:"APASSPHRASE_ALLOWED_ORIGIN" env-default:"*"`
}

// RemoteConfig points the client at a backend serving pre-generated phrases.
type RemoteConfig struct {
	Enabled bool          `yaml:"enabled" env:"APASSPHRASE_REMOTE"  env-default:"false"`
	BaseURL string        `yaml:"base_url" env:"APASSPHRASE_BACKEND" env-default:"https://api-apassphrase.herokuapp.com/"`
	Timeout time.Duration `yaml:"timeout" env:"APASSPHRASE_TIMEOUT" env-default:"5s"`
}

// DictionaryConfig selects where dictionaries are read from. An empty Dir
// means the built-in dictionaries.
type DictionaryConfig struct {
	Dir string `yaml:"dir" env:"APASSPHRASE_DICTIONARIES"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"APASSPHRASE_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"APASSPHRASE_LOG_FORMAT" env-default:"text"`
}

// Addr returns the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
