package client

import (
	"context"
	"encoding/json"
	"fmt"

	http_internal "github.com/HelixLauncher/ferinth/internal/http"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// VersionsClient implements the modrinth.VersionsClient interface.
type VersionsClient struct {
	httpClient *http_internal.Client
}

// NewVersionsClient creates a new VersionsClient.
func NewVersionsClient(httpClient *http_internal.Client) *VersionsClient {
	return &VersionsClient{
		httpClient: httpClient,
	}
}

// ListForProject lists the versions of a project, newest first. A nil
// filter lists everything; filter fields that are set narrow the
// listing server-side.
func (c *VersionsClient) ListForProject(ctx context.Context, projectID string, filter *modrinth.VersionFilter) ([]modrinth.Version, error) {
	if err := modrinth.ValidateID(projectID); err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}

	params := modrinth.NewQueryParams()

	if filter != nil {
		if len(filter.Loaders) > 0 {
			params.WithStringList("loaders", filter.Loaders)
		}

		if len(filter.GameVersions) > 0 {
			params.WithStringList("game_versions", filter.GameVersions)
		}

		if filter.Featured != nil {
			params.WithBool("featured", *filter.Featured)
		}
	}

	query, err := params.ToValues()
	if err != nil {
		return nil, fmt.Errorf("encoding version filters: %w", err)
	}

	path := http_internal.Path("project", projectID, "version")

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}

	var versions []modrinth.Version

	err = json.Unmarshal(resp.Body, &versions)
	if err != nil {
		return nil, fmt.Errorf("parsing versions response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return versions, nil
}

// Get retrieves a specific version by ID.
func (c *VersionsClient) Get(ctx context.Context, id string) (*modrinth.Version, error) {
	if err := modrinth.ValidateID(id); err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	path := http_internal.Path("version", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	var version modrinth.Version

	err = json.Unmarshal(resp.Body, &version)
	if err != nil {
		return nil, fmt.Errorf("parsing version response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return &version, nil
}

// GetMultiple retrieves many versions in a single request. Results come
// back in no particular order; correlate them by the ID field.
func (c *VersionsClient) GetMultiple(ctx context.Context, ids []string) ([]modrinth.Version, error) {
	if err := modrinth.ValidateIDs(ids); err != nil {
		return nil, fmt.Errorf("getting versions: %w", err)
	}

	query, err := modrinth.NewQueryParams().WithIDs(ids).ToValues()
	if err != nil {
		return nil, fmt.Errorf("encoding version ids: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, "/versions", query)
	if err != nil {
		return nil, fmt.Errorf("getting versions: %w", err)
	}

	var versions []modrinth.Version

	err = json.Unmarshal(resp.Body, &versions)
	if err != nil {
		return nil, fmt.Errorf("parsing versions response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return versions, nil
}
