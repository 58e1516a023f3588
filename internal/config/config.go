// Package config provides configuration management for skillkit using Viper.
//
// Values are resolved, in order of precedence, from explicit flags, the
// SKILLKIT_* environment (plus GITHUB_TOKEN for the token), a config file in
// the working directory or the XDG config dir, and built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/skillkit-dev/skillkit/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "skillkit"

// DefaultReviewAuthor is the bot login whose review comments the fetch
// command keeps by default.
const DefaultReviewAuthor = "coderabbitai[bot]"

// Config represents the top-level configuration structure.
type Config struct {
	Version   int    `mapstructure:"version" yaml:"version"`
	SkillsDir string `mapstructure:"skills_dir" yaml:"skills_dir"`
	Review    Review `mapstructure:"review" yaml:"review"`
}

// Review holds settings for the review-comment fetch command.
type Review struct {
	// Author is the bot login to filter review comments by.
	Author string `mapstructure:"author" yaml:"author"`

	// Repo is an optional owner/name override; when empty the origin
	// remote of the working directory is used.
	Repo string `mapstructure:"repo" yaml:"repo"`
}

// Init initializes Viper with defaults and search paths. Call once at
// startup before reading config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("SKILLKIT")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("skills_dir", "")
	viper.SetDefault("review.author", DefaultReviewAuthor)
}

// Load reads the configuration file. With a non-empty path that exact file
// is read and must exist; with an empty path the search locations are tried
// and defaults are used when nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}

// Token returns the GitHub token, preferring SKILLKIT_TOKEN over the
// conventional GITHUB_TOKEN. Empty when neither is set.
func Token() string {
	if tok := viper.GetString("token"); tok != "" {
		return tok
	}
	return os.Getenv("GITHUB_TOKEN")
}

// WriteDefault writes a commented starter config file, refusing to clobber
// an existing one.
func WriteDefault() (string, error) {
	dir := paths.ConfigDir()
	if err := paths.EnsureDir(dir, 0); err != nil {
		return "", errors.Wrap(err, "creating config directory")
	}

	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, errors.Newf("config file already exists: %s", path)
	}

	content := []byte(`version: 1

# Directory containing the skill corpus. Defaults to ./skills.
skills_dir: ""

review:
  # Bot login whose review comments "skillkit review fetch" keeps.
  author: ` + DefaultReviewAuthor + `
  # Optional owner/name override; detected from the origin remote when empty.
  repo: ""
`)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", errors.Wrap(err, "writing config file")
	}
	return path, nil
}
