package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLocale   = "zh-CN"
	DefaultLogLevel = "info"
	DefaultRawDir   = "raw_data"
	DefaultOutDir   = "assets/data"
)

type Config struct {
	HomePath   string
	ConfigPath string
	DBPath     string
	LogPath    string
	// DataDir overrides the embedded catalog bundles when set.
	DataDir  string
	RawDir   string
	OutDir   string
	Locale   string
	LogLevel string
}

// fileConfig mirrors the optional config.yaml in the home directory.
type fileConfig struct {
	DBPath   string `yaml:"db_path"`
	LogPath  string `yaml:"log_path"`
	DataDir  string `yaml:"data_dir"`
	RawDir   string `yaml:"raw_dir"`
	OutDir   string `yaml:"out_dir"`
	Locale   string `yaml:"locale"`
	LogLevel string `yaml:"log_level"`
}

func New(homePath string) (Config, error) {
	if strings.TrimSpace(homePath) == "" {
		return Config{}, fmt.Errorf("home path is required")
	}
	return Config{
		HomePath:   homePath,
		ConfigPath: filepath.Join(homePath, "config.yaml"),
		DBPath:     filepath.Join(homePath, "familyalter.db"),
		LogPath:    filepath.Join(homePath, "familyalter.log"),
		RawDir:     DefaultRawDir,
		OutDir:     DefaultOutDir,
		Locale:     DefaultLocale,
		LogLevel:   DefaultLogLevel,
	}, nil
}

// Load builds the defaults for homePath and overlays a YAML file. An explicit
// configPath must exist; the default <home>/config.yaml is optional.
func Load(homePath, configPath string) (Config, error) {
	cfg, err := New(homePath)
	if err != nil {
		return Config{}, err
	}
	explicit := configPath != ""
	if explicit {
		cfg.ConfigPath = configPath
	}
	raw, err := os.ReadFile(cfg.ConfigPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", cfg.ConfigPath, err)
	}
	cfg.apply(file)
	return cfg, nil
}

func (c *Config) apply(file fileConfig) {
	if file.DBPath != "" {
		c.DBPath = c.underHome(file.DBPath)
	}
	if file.LogPath != "" {
		c.LogPath = c.underHome(file.LogPath)
	}
	if file.DataDir != "" {
		c.DataDir = file.DataDir
	}
	if file.RawDir != "" {
		c.RawDir = file.RawDir
	}
	if file.OutDir != "" {
		c.OutDir = file.OutDir
	}
	if file.Locale != "" {
		c.Locale = file.Locale
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
}

func (c Config) underHome(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.HomePath, path)
}
