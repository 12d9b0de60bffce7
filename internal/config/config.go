package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is matched by every ValidationError.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level landing server configuration, usually sites.yaml.
type Config struct {
	LogLevel   string        `yaml:"log_level" koanf:"log_level"`
	ContentDir string        `yaml:"content_dir" koanf:"content_dir"`
	Server     ServerConfig  `yaml:"server" koanf:"server"`
	Session    SessionConfig `yaml:"session" koanf:"session"`
	Sites      []SiteConfig  `yaml:"sites" koanf:"sites"`
}

// ServerConfig holds listener settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr" koanf:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout" koanf:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout" koanf:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
	DevMode         bool          `yaml:"dev_mode" koanf:"dev_mode"`
}

// SessionConfig controls the visitor session cookie.
type SessionConfig struct {
	CookieName  string        `yaml:"cookie_name" koanf:"cookie_name"`
	HashKey     string        `yaml:"hash_key" koanf:"hash_key"`
	BlockKey    string        `yaml:"block_key" koanf:"block_key"`
	Secure      bool          `yaml:"secure" koanf:"secure"`
	IdleTimeout time.Duration `yaml:"idle_timeout" koanf:"idle_timeout"`
	Lifetime    time.Duration `yaml:"lifetime" koanf:"lifetime"`
}

// SiteConfig describes one company landing site.
type SiteConfig struct {
	ID                string   `yaml:"id" koanf:"id"`
	Name              string   `yaml:"name" koanf:"name"`
	Dir               string   `yaml:"dir" koanf:"dir"`
	Hosts             []string `yaml:"hosts" koanf:"hosts"`
	PrimaryLocale     string   `yaml:"primary_locale" koanf:"primary_locale"`
	SecondaryLocale   string   `yaml:"secondary_locale" koanf:"secondary_locale"`
	Default           bool     `yaml:"default" koanf:"default"`
	Theme             string   `yaml:"theme" koanf:"theme"`
	SectionOrder      []string `yaml:"section_order" koanf:"section_order"`
	ChatEmbedURL      string   `yaml:"chat_embed_url" koanf:"chat_embed_url"`
	URL               string   `yaml:"url" koanf:"url"`
	NegotiateLanguage bool     `yaml:"negotiate_language" koanf:"negotiate_language"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Session: SessionConfig{
			CookieName:  "landing_session",
			IdleTimeout: 2 * time.Hour,
			Lifetime:    24 * time.Hour,
		},
	}
}

// DefaultSites lists the sites bundled with the binary.
func DefaultSites() []SiteConfig {
	return []SiteConfig{
		{
			ID:              "aigrowth",
			Name:            "AI增长",
			Hosts:           []string{"aizengzhang.work", "www.aizengzhang.work", "localhost"},
			PrimaryLocale:   "zh",
			SecondaryLocale: "en",
			Default:         true,
			Theme:           "growth",
			URL:             "https://aizengzhang.work",
		},
		{
			ID:              "huirong",
			Name:            "汇融未来",
			Hosts:           []string{"huirong.work", "www.huirong.work"},
			PrimaryLocale:   "zh",
			SecondaryLocale: "en",
			Theme:           "trust",
			URL:             "https://huirong.work",
		},
	}
}

// ValidationError lists every missing or invalid field.
type ValidationError struct {
	fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Unwrap lets errors.Is match ErrInvalid.
func (e *ValidationError) Unwrap() error { return ErrInvalid }
