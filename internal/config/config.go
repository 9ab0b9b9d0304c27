package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. DETECTLANG_OUTPUT_FORMAT.
const EnvPrefix = "DETECTLANG"

// Output formats understood by the report renderer.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type ScanConfig struct {
	Includes   []string `mapstructure:"includes"`
	Excludes   []string `mapstructure:"excludes"`
	MaxDepth   int      `mapstructure:"max_depth"` // 0 means unlimited
	Gitignore  bool     `mapstructure:"gitignore"`
	IgnoreFile string   `mapstructure:"ignore_file"`
	Unknown    bool     `mapstructure:"unknown"` // report files with no known language
}

type Config struct {
	Verbose bool         `mapstructure:"verbose"`
	Output  OutputConfig `mapstructure:"output"`
	Scan    ScanConfig   `mapstructure:"scan"`
}

// LoadOptions says where Load looks for files.
type LoadOptions struct {
	// ConfigFile, when set, is read instead of searching ConfigCandidates and
	// must exist.
	ConfigFile string
	// ConfigCandidates are tried in order; the first that exists is used.
	ConfigCandidates []string
	// EnvFiles are .env files loaded before reading the environment. Missing
	// files are ignored.
	EnvFiles []string
}

// DefaultLoadOptions looks in the working directory first, then the user's
// home directory.
func DefaultLoadOptions() LoadOptions {
	opts := LoadOptions{
		ConfigCandidates: []string{".detectlangrc.yaml"},
		EnvFiles:         []string{".env", ".env.local"},
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		opts.ConfigCandidates = append(opts.ConfigCandidates, filepath.Join(home, ".config", "detectlang", "config.yaml"))
		opts.EnvFiles = append(opts.EnvFiles,
			filepath.Join(home, ".env"),
			filepath.Join(home, ".env.local"),
		)
	}
	return opts
}

// SetDefaults registers every key so that environment overrides are picked up
// by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("output.format", FormatText)
	v.SetDefault("scan.includes", []string{})
	v.SetDefault("scan.excludes", []string{})
	v.SetDefault("scan.max_depth", 0)
	v.SetDefault("scan.gitignore", true)
	v.SetDefault("scan.ignore_file", ".langignore")
	v.SetDefault("scan.unknown", false)
}

// Load reads .env files, the config file (if any) and DETECTLANG_* variables
// into v and decodes the result. Flags bound to v beforehand take precedence.
func Load(v *viper.Viper, opts LoadOptions) (*Config, error) {
	SetDefaults(v)

	if err := loadEnvFiles(opts.EnvFiles); err != nil {
		return nil, err
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		for _, candidate := range opts.ConfigCandidates {
			if _, err := os.Stat(candidate); err == nil {
				configFile = candidate
				break
			}
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the commands cannot act on.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid output format %q (want %s, %s or %s)", c.Output.Format, FormatText, FormatJSON, FormatYAML)
	}
	if c.Scan.MaxDepth < 0 {
		return fmt.Errorf("invalid scan.max_depth %d: must not be negative", c.Scan.MaxDepth)
	}
	return nil
}

func loadEnvFiles(files []string) error {
	for _, envFile := range files {
		if err := godotenv.Load(envFile); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}
	return nil
}
