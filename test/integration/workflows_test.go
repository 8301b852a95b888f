//go:build integration
// +build integration

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWorkflow_ProjectLookup looks up a long-lived public project and
// checks that its slug resolves.
func TestWorkflow_ProjectLookup(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	// 1. Get a project by slug with JSON output
	stdout, stderr, err := runner.Run("projects", "get", "sodium", "--output", "json")
	require.NoError(t, err, "Failed to get project: %s", stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, `"slug": "sodium"`)

	// 2. Resolve the slug to its canonical ID
	stdout, stderr, err = runner.Run("projects", "check", "sodium")
	require.NoError(t, err, "Failed to check project: %s", stderr)
	assert.Contains(t, stdout, "resolves to ID")

	// 3. Fetch several projects in one request
	stdout, stderr, err = runner.Run("projects", "get", "sodium", "lithium", "--output", "json")
	require.NoError(t, err, "Failed to get multiple projects: %s", stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, `"slug": "lithium"`)
}

// TestWorkflow_VersionListing lists versions with filters applied.
func TestWorkflow_VersionListing(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("versions", "list", "sodium",
		"--loaders", "fabric", "--output", "json")
	require.NoError(t, err, "Failed to list versions: %s", stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, `"fabric"`)
}

// TestWorkflow_TagListing exercises the tag endpoints, which need no
// authentication and change rarely.
func TestWorkflow_TagListing(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("tags", "report-types", "--output", "json")
	require.NoError(t, err, "Failed to list report types: %s", stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, "spam")

	stdout, stderr, err = runner.Run("tags", "loaders")
	require.NoError(t, err, "Failed to list loaders: %s", stderr)
	assert.Contains(t, stdout, "fabric")

	stdout, stderr, err = runner.Run("tags", "game-versions", "--output", "json")
	require.NoError(t, err, "Failed to list game versions: %s", stderr)
	AssertJSONOutput(t, stdout)
}

// TestWorkflow_OutputFormats verifies every output format renders.
func TestWorkflow_OutputFormats(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("projects", "get", "sodium", "--output", "json")
	require.NoError(t, err, "JSON output failed: %s", stderr)
	AssertJSONOutput(t, stdout)

	stdout, stderr, err = runner.Run("projects", "get", "sodium", "--output", "yaml")
	require.NoError(t, err, "YAML output failed: %s", stderr)
	AssertYAMLOutput(t, stdout)

	stdout, stderr, err = runner.Run("projects", "get", "sodium", "--output", "table")
	require.NoError(t, err, "Table output failed: %s", stderr)
	assert.Contains(t, stdout, "Sodium")
}

// TestWorkflow_UserLookup fetches a user by ID.
func TestWorkflow_UserLookup(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("users", "get", "TEZXhE2U", "--output", "json")
	require.NoError(t, err, "Failed to get user: %s", stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, `"id": "TEZXhE2U"`)
}

// TestWorkflow_AuthenticatedUser needs a real token and checks the
// token-bound endpoints.
func TestWorkflow_AuthenticatedUser(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)
	config.SkipIfNoToken(t)

	runner := NewCommandRunner(config, t)

	stdout, stderr, err := runner.Run("users", "current", "--output", "json")
	require.NoError(t, err, "Failed to get current user: %s", stderr)
	AssertJSONOutput(t, stdout)
	assert.Contains(t, stdout, `"username"`)
}

// TestWorkflow_InvalidIdentifier checks that malformed IDs fail before
// any request is made.
func TestWorkflow_InvalidIdentifier(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.Run("projects", "get", "not/a/valid/id")
	require.Error(t, err)
	assert.Contains(t, stderr, "invalid ID or slug")
}
