// Package ferinth provides the main entry point for creating Modrinth API clients
package ferinth

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/HelixLauncher/ferinth/internal/client"
	"github.com/HelixLauncher/ferinth/internal/constants"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// New creates a new Modrinth API client. An empty APIEndpoint targets the
// production API.
func New(config *modrinth.Config) (modrinth.Client, error) {
	if config == nil {
		return nil, modrinth.ErrConfigRequired
	}

	// Normalize API endpoint
	apiEndpoint := config.APIEndpoint
	if apiEndpoint == "" {
		apiEndpoint = constants.DefaultAPIEndpoint
	}

	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	apiEndpoint = strings.TrimSuffix(apiEndpoint, "/")

	parsed, err := url.Parse(apiEndpoint)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", modrinth.ErrInvalidEndpoint, config.APIEndpoint)
	}

	config.APIEndpoint = apiEndpoint

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewDefault creates an unauthenticated client against the production API.
func NewDefault() (modrinth.Client, error) {
	return New(&modrinth.Config{
		APIEndpoint: constants.DefaultAPIEndpoint,
	})
}

// NewWithToken creates a new client with an API endpoint and personal
// access token.
func NewWithToken(endpoint, token string) (modrinth.Client, error) {
	return New(&modrinth.Config{
		APIEndpoint: endpoint,
		Token:       token,
	})
}

// NewStaging creates an unauthenticated client against the staging API,
// which is safe to experiment against without touching live data.
func NewStaging() (modrinth.Client, error) {
	return New(&modrinth.Config{
		APIEndpoint: constants.StagingAPIEndpoint,
	})
}
