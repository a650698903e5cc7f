package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the fixed fetch limits.
type Config struct {
	IssueLimit       int `mapstructure:"issue_limit"`        // gh issue list --limit
	PRLimit          int `mapstructure:"pr_limit"`           // gh pr list --limit
	GraphQLPageSize  int `mapstructure:"graphql_page_size"`  // issues(first:) in the linked-branch query
	BranchesPerIssue int `mapstructure:"branches_per_issue"` // linkedBranches(first:)
	ParentFanOut     int `mapstructure:"parent_fan_out"`     // concurrent parent lookups
}

// Load resolves the limits. Nothing is read from disk, flags or the
// environment; every value is a default.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("issue_limit", 200)
	v.SetDefault("pr_limit", 100)
	v.SetDefault("graphql_page_size", 100)
	v.SetDefault("branches_per_issue", 5)
	v.SetDefault("parent_fan_out", 8)

	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	for key, n := range map[string]int{
		"issue_limit":        cfg.IssueLimit,
		"pr_limit":           cfg.PRLimit,
		"graphql_page_size":  cfg.GraphQLPageSize,
		"branches_per_issue": cfg.BranchesPerIssue,
		"parent_fan_out":     cfg.ParentFanOut,
	} {
		if n <= 0 {
			return Config{}, fmt.Errorf("config %s must be positive, got %d", key, n)
		}
	}
	return cfg, nil
}
