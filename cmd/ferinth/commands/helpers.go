package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/HelixLauncher/ferinth/internal/constants"
	"github.com/HelixLauncher/ferinth/pkg/ferinth"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// Common string constants used throughout the commands package.
const (
	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// Common values.
	Yes = "yes"
	No  = "no"

	// Table timestamp format.
	timeDisplayFormat = "2006-01-02 15:04:05"
)

// Common static errors used throughout the commands package.
var (
	ErrTokenRequired       = errors.New("a personal access token is required")
	ErrReportBodyRequired  = errors.New("report body is required (use --body or --body-file)")
	ErrInvalidFeaturedFlag = errors.New("featured flag must be 'true' or 'false'")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
)

// createClient builds a Modrinth client from the effective CLI
// configuration (flags, environment, config file).
func createClient() (modrinth.Client, error) {
	config := &modrinth.Config{
		APIEndpoint: viper.GetString("api"),
		Token:       viper.GetString("token"),
		AppName:     "ferinth-cli",
		AppContact:  "github.com/HelixLauncher/ferinth",
		HTTPTimeout: constants.DefaultHTTPTimeout,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newCommandLogger(true)
	}

	client, err := ferinth.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// requireAuth fails fast for commands that cannot work without a token,
// so the user gets a login hint instead of a bare 401.
func requireAuth() error {
	if viper.GetString("token") == "" {
		return constants.ErrNoTokenConfigured
	}

	return nil
}

// StandardJSONRenderer encodes data as indented JSON on stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML on stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// truncate shortens a string for table display.
func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}

	return s[:length-3] + "..."
}

// formatTime renders a timestamp for table display.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(timeDisplayFormat)
}

// stringOrNA dereferences optional string fields for table display.
func stringOrNA(s *string) string {
	if s == nil || *s == "" {
		return constants.NotAvailable
	}

	return *s
}

// joinOrNA renders a string list for table display.
func joinOrNA(values []string) string {
	if len(values) == 0 {
		return constants.NotAvailable
	}

	return strings.Join(values, ", ")
}

// yesNo renders a bool for table display.
func yesNo(b bool) string {
	if b {
		return Yes
	}

	return No
}
