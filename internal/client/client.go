package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/HelixLauncher/ferinth/internal/auth"
	"github.com/HelixLauncher/ferinth/internal/constants"
	"github.com/HelixLauncher/ferinth/internal/http"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired      = errors.New("API endpoint is required")
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
)

// Client implements the modrinth.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       modrinth.Logger

	// Resource clients
	users    modrinth.UsersClient
	projects modrinth.ProjectsClient
	versions modrinth.VersionsClient
	tags     modrinth.TagsClient
	reports  modrinth.ReportsClient
}

// buildUserAgent assembles the User-Agent header from config. An
// explicit UserAgent wins; otherwise the application identity fields
// are combined as "name/version (contact)". Empty means the HTTP
// layer's default identifier is used.
func buildUserAgent(config *modrinth.Config) string {
	if config.UserAgent != "" {
		return config.UserAgent
	}

	if config.AppName == "" {
		return ""
	}

	userAgent := config.AppName

	if config.AppVersion != "" {
		userAgent += "/" + config.AppVersion
	}

	if config.AppContact != "" {
		userAgent += " (" + config.AppContact + ")"
	}

	return userAgent
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *modrinth.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if userAgent := buildUserAgent(config); userAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(userAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Modrinth API client.
func New(config *modrinth.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	tokenManager := auth.NewStaticTokenManager(config.Token)

	return NewWithTokenManager(config, tokenManager)
}

// NewWithTokenManager creates a new Modrinth API client with a custom
// token manager.
func NewWithTokenManager(config *modrinth.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.APIEndpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// Resource client accessors

// Users implements modrinth.Client.Users.
func (c *Client) Users() modrinth.UsersClient {
	return c.users
}

// Projects implements modrinth.Client.Projects.
func (c *Client) Projects() modrinth.ProjectsClient {
	return c.projects
}

// Versions implements modrinth.Client.Versions.
func (c *Client) Versions() modrinth.VersionsClient {
	return c.versions
}

// Tags implements modrinth.Client.Tags.
func (c *Client) Tags() modrinth.TagsClient {
	return c.tags
}

// Reports implements modrinth.Client.Reports.
func (c *Client) Reports() modrinth.ReportsClient {
	return c.reports
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.httpClient)
	c.projects = NewProjectsClient(c.httpClient)
	c.versions = NewVersionsClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.reports = NewReportsClient(c.httpClient)
}

// loggerAdapter adapts modrinth.Logger to http.Logger.
type loggerAdapter struct {
	logger modrinth.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
