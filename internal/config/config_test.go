package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("ISSUE_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		IssueLimit:       200,
		PRLimit:          100,
		GraphQLPageSize:  100,
		BranchesPerIssue: 5,
		ParentFanOut:     8,
	}, cfg)
}

func TestDecode(t *testing.T) {
	v := viper.New()
	v.Set("issue_limit", 50)
	v.Set("pr_limit", "25")
	v.Set("graphql_page_size", 10)
	v.Set("branches_per_issue", 1)
	v.Set("parent_fan_out", 2)

	cfg, err := decode(v)
	require.NoError(t, err)
	assert.Equal(t, Config{
		IssueLimit:       50,
		PRLimit:          25,
		GraphQLPageSize:  10,
		BranchesPerIssue: 1,
		ParentFanOut:     2,
	}, cfg)
}

func TestDecodeRejectsNonPositive(t *testing.T) {
	v := viper.New()
	v.Set("issue_limit", 200)
	v.Set("pr_limit", 100)
	v.Set("graphql_page_size", 100)
	v.Set("branches_per_issue", 5)
	v.Set("parent_fan_out", 0)

	_, err := decode(v)
	assert.ErrorContains(t, err, "parent_fan_out must be positive")
}

func TestDecodeRejectsBadType(t *testing.T) {
	v := viper.New()
	v.Set("issue_limit", "lots")

	_, err := decode(v)
	assert.ErrorContains(t, err, "decoding config")
}
