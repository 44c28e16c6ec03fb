package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is the YAML file consulted next to the working
// directory when no explicit path is given.
const DefaultConfigFile = "progdash.yaml"

// Config represents the complete application configuration
type Config struct {
	Campus  CampusConfig  `yaml:"campus" envconfig:"CAMPUS"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
}

// CampusConfig pins the dataset to a single campus. The restriction is
// applied once at ingestion and is not a user-adjustable filter.
type CampusConfig struct {
	Target string `yaml:"target" envconfig:"TARGET" default:"Bambang" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stderr" validate:"oneof=stdout stderr file"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/progdash.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports"`
}

// ExportConfig controls the CSV export artifact.
type ExportConfig struct {
	Filename string `yaml:"filename" envconfig:"FILENAME" default:"bambang_filtered.csv" validate:"required"`
	// BOMPrefix adds a UTF-8 BOM so Excel opens the export correctly.
	BOMPrefix bool `yaml:"bom_prefix" envconfig:"BOM_PREFIX" default:"false"`
}

// Load loads configuration from environment variables and an optional
// YAML file. Environment variables (prefix PROGDASH) take precedence
// over file values.
func Load(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first; envconfig also fills the
	// struct-tag defaults.
	if err := envconfig.Process("PROGDASH", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	if configFile == "" {
		configFile = DefaultConfigFile
	}
	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileCfg, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays explicit file values onto the env/default
// config (file takes precedence over struct-tag defaults)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if fileConfig.Campus.Target != "" {
		envConfig.Campus.Target = fileConfig.Campus.Target
	}
	if fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Format != "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if fileConfig.Paths.DataDir != "" {
		envConfig.Paths.DataDir = fileConfig.Paths.DataDir
	}
	if fileConfig.Paths.ReportsDir != "" {
		envConfig.Paths.ReportsDir = fileConfig.Paths.ReportsDir
	}
	if fileConfig.Export.Filename != "" {
		envConfig.Export.Filename = fileConfig.Export.Filename
	}
	if fileConfig.Export.BOMPrefix {
		envConfig.Export.BOMPrefix = true
	}
	return envConfig
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}

// ExportPath returns the full path of the CSV export artifact.
func (c *Config) ExportPath() string {
	if filepath.IsAbs(c.Export.Filename) {
		return c.Export.Filename
	}
	return filepath.Join(c.Paths.ReportsDir, c.Export.Filename)
}
