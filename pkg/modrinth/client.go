package modrinth

import (
	"context"
	"errors"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrDeprecatedClientConstructor = errors.New("use github.com/HelixLauncher/ferinth/pkg/ferinth.New to create a client")
)

// UsersClient provides access to user resources.
type UsersClient interface {
	Get(ctx context.Context, id string) (*User, error)
	GetCurrent(ctx context.Context) (*User, error)
	GetMultiple(ctx context.Context, ids []string) ([]User, error)
	ListProjects(ctx context.Context, id string) ([]Project, error)
	ListNotifications(ctx context.Context, id string) ([]Notification, error)
	ListFollowedProjects(ctx context.Context, id string) ([]Project, error)
}

// ProjectsClient provides access to project resources.
type ProjectsClient interface {
	Get(ctx context.Context, id string) (*Project, error)
	GetMultiple(ctx context.Context, ids []string) ([]Project, error)
	ListDependencies(ctx context.Context, id string) (*ProjectDependencies, error)
	CheckValidity(ctx context.Context, id string) (*ProjectIdentifier, error)
	Follow(ctx context.Context, id string) error
}

// VersionsClient provides access to version resources.
type VersionsClient interface {
	ListForProject(ctx context.Context, projectID string, filter *VersionFilter) ([]Version, error)
	Get(ctx context.Context, id string) (*Version, error)
	GetMultiple(ctx context.Context, ids []string) ([]Version, error)
}

// TagsClient provides access to the platform's tag listings.
type TagsClient interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListLoaders(ctx context.Context) ([]Loader, error)
	ListGameVersions(ctx context.Context) ([]GameVersionTag, error)
	ListLicenses(ctx context.Context) ([]LicenseTag, error)
	ListDonationPlatforms(ctx context.Context) ([]DonationPlatformTag, error)
	ListReportTypes(ctx context.Context) ([]string, error)
}

// ReportsClient provides access to moderation reports.
type ReportsClient interface {
	Submit(ctx context.Context, report *ReportSubmission) (*Report, error)
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Users() UsersClient
	Projects() ProjectsClient
	Versions() VersionsClient
	Tags() TagsClient
	Reports() ReportsClient
}

type Client interface {
	ResourceClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a modrinth.Client.
//
// # Authentication
//
// Modrinth authenticates with a personal access token sent as the raw
// value of the Authorization header, with no "Bearer" prefix. When
// Token is empty, requests are sent unauthenticated and endpoints that
// require a token will return 401 responses. Read-only endpoints work
// fine without one.
//
// # User agent
//
// Modrinth asks API consumers to identify themselves. If UserAgent is
// set it is used verbatim; otherwise a user agent is assembled from
// AppName, AppVersion, and AppContact. When none are set the client
// falls back to a generic library identifier.
//
// # Timeouts and retries
//
// Per-request timeouts should be controlled via the context passed to
// client methods; HTTPTimeout additionally bounds each whole request
// when set. Retries are disabled unless RetryMax > 0, so by default
// every call is a single request/response round trip.
type Config struct {
	// Required fields
	// APIEndpoint: base URL for the Modrinth API (e.g., "https://api.modrinth.com/v2").
	// ferinth.New fills in the production endpoint when this is empty and
	// normalizes the value by trimming a trailing slash and adding
	// "https://" if no scheme is present.
	APIEndpoint string

	// Authentication
	// Token: personal access token, sent raw in the Authorization header.
	// Leave empty for unauthenticated access.
	Token string

	// User agent
	// UserAgent: overrides the assembled User-Agent header entirely.
	UserAgent string
	// AppName: name of the consuming application, used to build the
	// User-Agent when UserAgent is not set.
	AppName string
	// AppVersion: version of the consuming application.
	AppVersion string
	// AppContact: contact detail (URL or email) so platform operators can
	// reach the author of misbehaving traffic.
	AppContact string

	// Optional configurations
	// HTTPTimeout: optional bound on each whole request. Most callers
	// should rely on context timeouts instead.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). Zero disables retrying.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
}

// NewClient creates a new Modrinth API client
// Deprecated: Use github.com/HelixLauncher/ferinth/pkg/ferinth.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
