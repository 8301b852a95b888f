package client

import (
	"context"
	"encoding/json"
	"fmt"

	http_internal "github.com/HelixLauncher/ferinth/internal/http"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// ProjectsClient implements the modrinth.ProjectsClient interface.
type ProjectsClient struct {
	httpClient *http_internal.Client
}

// NewProjectsClient creates a new ProjectsClient.
func NewProjectsClient(httpClient *http_internal.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// Get retrieves a project by ID or slug.
func (c *ProjectsClient) Get(ctx context.Context, id string) (*modrinth.Project, error) {
	if err := modrinth.ValidateID(id); err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	path := http_internal.Path("project", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project modrinth.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return &project, nil
}

// GetMultiple retrieves many projects in a single request. Results come
// back in no particular order; correlate them by the ID field.
func (c *ProjectsClient) GetMultiple(ctx context.Context, ids []string) ([]modrinth.Project, error) {
	if err := modrinth.ValidateIDs(ids); err != nil {
		return nil, fmt.Errorf("getting projects: %w", err)
	}

	query, err := modrinth.NewQueryParams().WithIDs(ids).ToValues()
	if err != nil {
		return nil, fmt.Errorf("encoding project ids: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, "/projects", query)
	if err != nil {
		return nil, fmt.Errorf("getting projects: %w", err)
	}

	var projects []modrinth.Project

	err = json.Unmarshal(resp.Body, &projects)
	if err != nil {
		return nil, fmt.Errorf("parsing projects response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return projects, nil
}

// ListDependencies lists everything a project depends on, both the
// dependency projects and the specific versions.
func (c *ProjectsClient) ListDependencies(ctx context.Context, id string) (*modrinth.ProjectDependencies, error) {
	if err := modrinth.ValidateID(id); err != nil {
		return nil, fmt.Errorf("listing project dependencies: %w", err)
	}

	path := http_internal.Path("project", id, "dependencies")

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing project dependencies: %w", err)
	}

	var dependencies modrinth.ProjectDependencies

	err = json.Unmarshal(resp.Body, &dependencies)
	if err != nil {
		return nil, fmt.Errorf("parsing dependencies response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return &dependencies, nil
}

// CheckValidity resolves an ID or slug to the project's canonical ID.
// A not found error means no project exists under that identifier.
func (c *ProjectsClient) CheckValidity(ctx context.Context, id string) (*modrinth.ProjectIdentifier, error) {
	if err := modrinth.ValidateID(id); err != nil {
		return nil, fmt.Errorf("checking project: %w", err)
	}

	path := http_internal.Path("project", id, "check")

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("checking project: %w", err)
	}

	var identifier modrinth.ProjectIdentifier

	err = json.Unmarshal(resp.Body, &identifier)
	if err != nil {
		return nil, fmt.Errorf("parsing check response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return &identifier, nil
}

// Follow subscribes the authenticated user to a project. Requires
// authentication.
func (c *ProjectsClient) Follow(ctx context.Context, id string) error {
	if err := modrinth.ValidateID(id); err != nil {
		return fmt.Errorf("following project: %w", err)
	}

	path := http_internal.Path("project", id, "follow")

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("following project: %w", err)
	}

	return nil
}
