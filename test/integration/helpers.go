//go:build integration
// +build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	Token       string
	FerinthPath string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv("MODRINTH_API_ENDPOINT"),
		Token:       os.Getenv("MODRINTH_TOKEN"),
		FerinthPath: getFerinthPath(),
		Verbose:     os.Getenv("FERINTH_VERBOSE") == "true",
	}
}

// getFerinthPath determines the path to the ferinth binary
func getFerinthPath() string {
	if path := os.Getenv("FERINTH_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../ferinth",
		"./ferinth",
		"../ferinth",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "ferinth" // Fallback to PATH
}

// SkipIfMissingConfig skips the test unless integration runs are
// explicitly enabled and the binary exists. The tests talk to the real
// API, so they never run by accident.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if os.Getenv("MODRINTH_INTEGRATION") != "true" {
		t.Skip("MODRINTH_INTEGRATION not set to true, skipping integration test")
	}

	if _, err := os.Stat(config.FerinthPath); os.IsNotExist(err) {
		t.Skipf("ferinth binary not found at %s, skipping integration test", config.FerinthPath)
	}
}

// SkipIfNoToken skips tests that need an authenticated user.
func (config *TestConfig) SkipIfNoToken(t *testing.T) {
	if config.Token == "" {
		t.Skip("MODRINTH_TOKEN not set, skipping authenticated integration test")
	}
}

// CommandRunner provides utilities for running ferinth commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a ferinth command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	if runner.config.APIEndpoint != "" {
		args = append(args, "--api", runner.config.APIEndpoint)
	}

	cmd := exec.Command(runner.config.FerinthPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Env = append(os.Environ(), "MODRINTH_TOKEN="+runner.config.Token)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.FerinthPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return // Looks like YAML
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
