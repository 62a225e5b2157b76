package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/masmgr/rust-commits-go/internal/feed"
	"github.com/masmgr/rust-commits-go/internal/github"
)

// Config is the root configuration structure.
type Config struct {
	GitHub  GitHubConfig  `json:"github" yaml:"github"`
	Feed    FeedConfig    `json:"feed" yaml:"feed"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// GitHubConfig holds options for the paginated commits API.
type GitHubConfig struct {
	BaseURL    string `json:"baseURL" yaml:"baseURL"`
	Owner      string `json:"owner" yaml:"owner"`
	Repo       string `json:"repo" yaml:"repo"`
	Author     string `json:"author" yaml:"author"`
	WindowDays int    `json:"windowDays" yaml:"windowDays"` // Default: 168
	PerPage    int    `json:"perPage" yaml:"perPage"`       // Default: 100
	UserAgent  string `json:"userAgent" yaml:"userAgent"`

	// AuthHosts, when set, limits which hosts receive the token once a
	// pagination link leaves the API host. Empty leaves it unrestricted.
	AuthHosts []string `json:"authHosts" yaml:"authHosts"`

	// CredentialsFile is an INI file with a [GITHUB] section holding TOKEN.
	CredentialsFile string `json:"credentialsFile" yaml:"credentialsFile"`
}

// FeedConfig holds options for the aggregated commit feed.
type FeedConfig struct {
	URL string `json:"url" yaml:"url"`
}

// LoggingConfig holds log output options.
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"` // trace, debug, info, warn, error
}

const (
	EnvAPIToken = "GITHUB_API_TOKEN"
	EnvToken    = "GITHUB_TOKEN"

	credentialsSection = "GITHUB"
	credentialsKey     = "TOKEN"
)

var configNames = []string{".rust-commits.json", ".rust-commits.yaml", ".rust-commits.yml"}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			BaseURL:    github.DefaultBaseURL,
			Owner:      github.DefaultOwner,
			Repo:       github.DefaultRepo,
			Author:     github.DefaultAuthor,
			WindowDays: int(github.DefaultWindow / (24 * time.Hour)),
			PerPage:    github.PageSize,
			UserAgent:  github.DefaultUserAgent,
			AuthHosts:  []string{},
		},
		Feed: FeedConfig{
			URL: feed.DefaultURL,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfig()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// findConfig returns the first default config file found in the working
// directory, then the home directory.
func findConfig() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, home)
	} else if envHome := os.Getenv("HOME"); envHome != "" {
		dirs = append(dirs, envHome)
	}

	for _, dir := range dirs {
		for _, name := range configNames {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				return p
			}
		}
	}
	return ""
}

// SaveConfig saves configuration to a file. The format follows the
// extension, as in LoadConfig.
func SaveConfig(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	g := c.GitHub
	if g.WindowDays <= 0 {
		return fmt.Errorf("github.windowDays must be positive, got %d", g.WindowDays)
	}
	if g.PerPage < 1 || g.PerPage > github.PageSize {
		return fmt.Errorf("github.perPage must be between 1 and %d, got %d", github.PageSize, g.PerPage)
	}
	if g.Owner == "" || g.Repo == "" || g.Author == "" {
		return errors.New("github.owner, github.repo and github.author are required")
	}
	if err := validateURL("github.baseURL", g.BaseURL); err != nil {
		return err
	}
	if err := validateURL("feed.url", c.Feed.URL); err != nil {
		return err
	}
	if err := github.ValidateHostPatterns(g.AuthHosts); err != nil {
		return fmt.Errorf("github.authHosts: %w", err)
	}
	if hclog.LevelFromString(c.Logging.Level) == hclog.NoLevel {
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) url, got %q", field, raw)
	}
	return nil
}

// Window returns the listing window as a duration.
func (g GitHubConfig) Window() time.Duration {
	return time.Duration(g.WindowDays) * 24 * time.Hour
}

// FetcherOptions maps the github section onto fetcher options.
func (c *Config) FetcherOptions() github.Options {
	g := c.GitHub
	return github.Options{
		BaseURL:   g.BaseURL,
		Owner:     g.Owner,
		Repo:      g.Repo,
		Author:    g.Author,
		UserAgent: g.UserAgent,
		Window:    g.Window(),
		PageSize:  g.PerPage,
		AuthHosts: g.AuthHosts,
	}
}

// FeedOptions maps the feed section onto feed client options.
func (c *Config) FeedOptions() feed.Options {
	return feed.Options{
		URL:       c.Feed.URL,
		UserAgent: c.GitHub.UserAgent,
	}
}

// ResolveToken picks the API token from, in order: flag, $GITHUB_API_TOKEN,
// $GITHUB_TOKEN, then TOKEN in the [GITHUB] section of the credentials file.
// An empty result means requests go out unauthenticated.
func ResolveToken(flag string, cfg *Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	for _, env := range []string{EnvAPIToken, EnvToken} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v, nil
		}
	}

	if cfg == nil || cfg.GitHub.CredentialsFile == "" {
		return "", nil
	}

	creds, err := ini.Load(cfg.GitHub.CredentialsFile)
	if err != nil {
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}
	return strings.TrimSpace(creds.Section(credentialsSection).Key(credentialsKey).String()), nil
}
