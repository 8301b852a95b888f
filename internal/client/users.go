package client

import (
	"context"
	"encoding/json"
	"fmt"

	http_internal "github.com/HelixLauncher/ferinth/internal/http"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// UsersClient implements the modrinth.UsersClient interface.
type UsersClient struct {
	httpClient *http_internal.Client
}

// NewUsersClient creates a new UsersClient.
func NewUsersClient(httpClient *http_internal.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// Get retrieves a user by ID or username.
func (c *UsersClient) Get(ctx context.Context, id string) (*modrinth.User, error) {
	if err := modrinth.ValidateID(id); err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	path := http_internal.Path("user", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user modrinth.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return &user, nil
}

// GetCurrent retrieves the user the configured token belongs to.
// Requires authentication.
func (c *UsersClient) GetCurrent(ctx context.Context) (*modrinth.User, error) {
	resp, err := c.httpClient.Get(ctx, "/user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var user modrinth.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return &user, nil
}

// GetMultiple retrieves many users in a single request. Results come
// back in no particular order; correlate them by the ID field.
func (c *UsersClient) GetMultiple(ctx context.Context, ids []string) ([]modrinth.User, error) {
	if err := modrinth.ValidateIDs(ids); err != nil {
		return nil, fmt.Errorf("getting users: %w", err)
	}

	query, err := modrinth.NewQueryParams().WithIDs(ids).ToValues()
	if err != nil {
		return nil, fmt.Errorf("encoding user ids: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, "/users", query)
	if err != nil {
		return nil, fmt.Errorf("getting users: %w", err)
	}

	var users []modrinth.User

	err = json.Unmarshal(resp.Body, &users)
	if err != nil {
		return nil, fmt.Errorf("parsing users response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return users, nil
}

// ListProjects lists the projects a user owns or is a member of.
func (c *UsersClient) ListProjects(ctx context.Context, id string) ([]modrinth.Project, error) {
	if err := modrinth.ValidateID(id); err != nil {
		return nil, fmt.Errorf("listing user projects: %w", err)
	}

	path := http_internal.Path("user", id, "projects")

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing user projects: %w", err)
	}

	var projects []modrinth.Project

	err = json.Unmarshal(resp.Body, &projects)
	if err != nil {
		return nil, fmt.Errorf("parsing projects response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return projects, nil
}

// ListNotifications lists a user's notifications. Requires
// authentication as that user.
func (c *UsersClient) ListNotifications(ctx context.Context, id string) ([]modrinth.Notification, error) {
	if err := modrinth.ValidateID(id); err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	path := http_internal.Path("user", id, "notifications")

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	var notifications []modrinth.Notification

	err = json.Unmarshal(resp.Body, &notifications)
	if err != nil {
		return nil, fmt.Errorf("parsing notifications response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return notifications, nil
}

// ListFollowedProjects lists the projects a user follows. Requires
// authentication as that user.
func (c *UsersClient) ListFollowedProjects(ctx context.Context, id string) ([]modrinth.Project, error) {
	if err := modrinth.ValidateID(id); err != nil {
		return nil, fmt.Errorf("listing followed projects: %w", err)
	}

	path := http_internal.Path("user", id, "follows")

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing followed projects: %w", err)
	}

	var projects []modrinth.Project

	err = json.Unmarshal(resp.Body, &projects)
	if err != nil {
		return nil, fmt.Errorf("parsing projects response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return projects, nil
}
