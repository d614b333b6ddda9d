package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvListenAddr   = "GENERATOR_LISTEN_ADDR"
	EnvDBDSN        = "GENERATOR_DB_DSN"
	EnvLogLevel     = "GENERATOR_LOG_LEVEL"
	EnvAPIKeys      = "GENERATOR_API_KEYS"
	EnvCacheEntries = "GENERATOR_CACHE_MAX_ENTRIES"

	defaultListenAddr   = ":8080"
	defaultLogLevel     = "info"
	defaultCacheEntries = 256
)

type APIKey struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
	Role string `yaml:"role"`
}

type CacheConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

type PreviewConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	ListenAddr string        `yaml:"listen_addr"`
	DBDSN      string        `yaml:"db_dsn"`
	LogLevel   string        `yaml:"log_level"`
	APIKeys    []APIKey      `yaml:"api_keys"`
	Cache      CacheConfig   `yaml:"cache"`
	Preview    PreviewConfig `yaml:"preview"`
}

// Load reads the YAML file at path, then lets variables from envFiles and
// the process environment override it. The process environment wins over
// the files. An empty path skips the YAML step; a missing env file is
// ignored.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Config{Preview: PreviewConfig{Enabled: true}}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	overlay, err := readEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := overlay[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	cfg.setDefaults()
	if _, err := cfg.SlogLevel(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readEnvFiles(files []string) (map[string]string, error) {
	out := map[string]string{}
	for _, name := range files {
		vars, err := godotenv.Read(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		for k, v := range vars {
			out[k] = v
		}
	}
	return out, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvListenAddr); ok && v != "" {
		c.ListenAddr = v
	}
	if v, ok := lookup(EnvDBDSN); ok && v != "" {
		c.DBDSN = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvCacheEntries); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheEntries, err)
		}
		c.Cache.MaxEntries = n
	}
	if v, ok := lookup(EnvAPIKeys); ok && v != "" {
		for _, key := range strings.Split(v, ",") {
			if key = strings.TrimSpace(key); key != "" {
				c.APIKeys = append(c.APIKeys, APIKey{Name: "env", Key: key, Role: "editor"})
			}
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = defaultCacheEntries
	}
}

// SlogLevel parses LogLevel (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
