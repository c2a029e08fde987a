package review

import (
	"fmt"
	"strings"
)

// DefaultSuffix is the revision-branch naming token used when review.suffix
// is not configured. A feature branch "login-fix" produces revision branches
// "login-fix_rev_1", "login-fix_rev_2", ...
const DefaultSuffix = "rev"

// Config holds the settings a submission run needs. Resolved once from git
// config at startup and immutable afterwards.
type Config struct {
	// Remote is the git remote the review server lives behind (review.remote)
	Remote string

	// Branch is the base branch reviews target (review.branch)
	Branch string

	// URL is the review server's base URL (review.url)
	URL string

	// Suffix is the revision-branch naming token (review.suffix, optional)
	Suffix string
}

// LoadConfig reads the review configuration from git config. With a non-empty
// alias, keys are read from review.<alias>.* instead of review.*, so one
// repository can carry settings for more than one review server.
//
// Any missing required key is a fatal configuration error carrying the exact
// command that fixes it.
func LoadConfig(gitClient GitClient, alias string) (*Config, error) {
	config := &Config{}

	fields := []struct {
		name  string
		value *string
		hint  string
	}{
		{"remote", &config.Remote, "origin"},
		{"branch", &config.Branch, "main"},
		{"url", &config.URL, "https://review.example.com"},
	}

	for _, field := range fields {
		key := configKey(alias, field.name)
		value, err := gitClient.ConfigGet(key)
		if err != nil {
			return nil, err
		}
		if value == "" {
			return nil, fmt.Errorf("%s is not set.\nSet it with:\n  git config %s %s", key, key, field.hint)
		}
		*field.value = value
	}

	suffix, err := gitClient.ConfigGet(configKey(alias, "suffix"))
	if err != nil {
		return nil, err
	}
	if suffix == "" {
		suffix = DefaultSuffix
	}
	config.Suffix = suffix

	return config, nil
}

// configKey builds a git config key, scoped to an alias if one is given
func configKey(alias string, name string) string {
	if alias == "" {
		return "review." + name
	}
	return "review." + alias + "." + name
}

// TargetRef returns the server's review-intake ref for the base branch
func (c *Config) TargetRef() string {
	return "refs/for/" + c.Branch
}

// ReviewURL builds the URL where the review for a change identifier lives
func (c *Config) ReviewURL(changeID string) string {
	return strings.TrimSuffix(c.URL, "/") + "/#/q/" + changeID
}

// HookURL returns the URL the server serves its commit-msg hook from
func (c *Config) HookURL() string {
	return strings.TrimSuffix(c.URL, "/") + "/tools/hooks/commit-msg"
}
