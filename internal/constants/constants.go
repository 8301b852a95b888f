package constants

import "time"

// API endpoints.
const (
	// DefaultAPIEndpoint is the production Modrinth API base address.
	DefaultAPIEndpoint = "https://api.modrinth.com/v2"

	// StagingAPIEndpoint is the Modrinth staging API base address.
	StagingAPIEndpoint = "https://staging-api.modrinth.com/v2"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the request timeout the CLI configures on its
	// client. The library itself imposes no timeout unless asked to.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick connectivity checks.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry defaults. Retries are off unless explicitly enabled; these waits
// apply only once a caller opts in.
const (
	// DefaultRetryMax keeps every call a single request/response round trip.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait between opted-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opted-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Identifier limits.
const (
	// MaxIdentifierLength bounds Modrinth IDs and slugs. Canonical IDs are
	// 8 base-62 characters; slugs may be longer but never exceed this.
	MaxIdentifierLength = 64
)

// User agent.
const (
	// DefaultUserAgent identifies requests when the consuming application
	// does not set its own user agent. Modrinth asks every API consumer to
	// send something traceable.
	DefaultUserAgent = "ferinth (github.com/HelixLauncher/ferinth)"
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent fan-out requests.
	DefaultConcurrencyLimit = 5

	// MaxConcurrencyLimit caps caller-supplied concurrency.
	MaxConcurrencyLimit = 20
)

// Output format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// UI and display constants.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// DescriptionDisplayLength is the default length for displaying
	// project descriptions in tables.
	DescriptionDisplayLength = 60

	// TitleDisplayLength is the default length for displaying titles.
	TitleDisplayLength = 40
)

// Command argument counts.
const (
	// TwoArgumentsRequired indicates commands requiring exactly 2 arguments.
	TwoArgumentsRequired = 2
)
