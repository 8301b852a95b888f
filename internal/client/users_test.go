package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HelixLauncher/ferinth/internal/auth"
	. "github.com/HelixLauncher/ferinth/internal/client"
	internalhttp "github.com/HelixLauncher/ferinth/internal/http"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

func TestUsersClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/user/TEZXhE2U", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		user := modrinth.User{
			ID:        "TEZXhE2U",
			Username:  "jellysquid3",
			AvatarURL: "https://avatars.githubusercontent.com/u/1363084",
			Created:   time.Now().Add(-24 * time.Hour),
			Role:      modrinth.UserRoleDeveloper,
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(user)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	user, err := users.Get(context.Background(), "TEZXhE2U")
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "TEZXhE2U", user.ID)
	assert.Equal(t, "jellysquid3", user.Username)
	assert.Equal(t, modrinth.UserRoleDeveloper, user.Role)
}

func TestUsersClient_Get_InvalidID(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	user, err := users.Get(context.Background(), "not a valid id")
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, modrinth.IsInvalidIdentifier(err))
	assert.Equal(t, 0, requests)
}

func TestUsersClient_GetCurrent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/user", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "mrp_test_token", request.Header.Get("Authorization"))

		email := "dev@example.com"
		user := modrinth.User{
			ID:       "TEZXhE2U",
			Username: "jellysquid3",
			Email:    &email,
			Created:  time.Now(),
			Role:     modrinth.UserRoleDeveloper,
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(user)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, auth.NewStaticTokenManager("mrp_test_token"))
	users := NewUsersClient(httpClient)

	user, err := users.GetCurrent(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, user)
	require.NotNil(t, user.Email)
	assert.Equal(t, "dev@example.com", *user.Email)
}

func TestUsersClient_GetCurrent_Unauthorized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(writer).Encode(map[string]string{
			"error":       "unauthorized",
			"description": "you must be logged in to access this route",
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	user, err := users.GetCurrent(context.Background())
	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, modrinth.IsUnauthorized(err))
}

func TestUsersClient_GetMultiple(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++

		assert.Equal(t, "/users", request.URL.Path)
		assert.Equal(t, `["TEZXhE2U","AANobbMI"]`, request.URL.Query().Get("ids"))

		// Order intentionally differs from the request.
		users := []modrinth.User{
			{ID: "AANobbMI", Username: "second", Created: time.Now()},
			{ID: "TEZXhE2U", Username: "first", Created: time.Now()},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(users)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	result, err := users.GetMultiple(context.Background(), []string{"TEZXhE2U", "AANobbMI"})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, requests)

	byID := make(map[string]modrinth.User, len(result))
	for _, user := range result {
		byID[user.ID] = user
	}

	assert.Equal(t, "first", byID["TEZXhE2U"].Username)
	assert.Equal(t, "second", byID["AANobbMI"].Username)
}

func TestUsersClient_GetMultiple_InvalidID(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	result, err := users.GetMultiple(context.Background(), []string{"TEZXhE2U", "bad id"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, modrinth.IsInvalidIdentifier(err))
	assert.Equal(t, 0, requests)
}

func TestUsersClient_ListProjects(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/user/TEZXhE2U/projects", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		projects := []modrinth.Project{
			{ID: "AANobbMI", Slug: "sodium", Title: "Sodium"},
			{ID: "gvQqBUqZ", Slug: "lithium", Title: "Lithium"},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(projects)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	users := NewUsersClient(httpClient)

	projects, err := users.ListProjects(context.Background(), "TEZXhE2U")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "sodium", projects[0].Slug)
	assert.Equal(t, "lithium", projects[1].Slug)
}

func TestUsersClient_ListNotifications(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/user/TEZXhE2U/notifications", request.URL.Path)
		assert.Equal(t, "mrp_test_token", request.Header.Get("Authorization"))

		notifications := []modrinth.Notification{
			{
				ID:     "notif-1",
				UserID: "TEZXhE2U",
				Title:  "Project update",
				Text:   "Sodium has been updated to 0.5.0",
				Link:   "/project/AANobbMI/version/xyz",
				Read:   false,
			},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(notifications)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, auth.NewStaticTokenManager("mrp_test_token"))
	users := NewUsersClient(httpClient)

	notifications, err := users.ListNotifications(context.Background(), "TEZXhE2U")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Project update", notifications[0].Title)
	assert.False(t, notifications[0].Read)
}

func TestUsersClient_ListFollowedProjects(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/user/TEZXhE2U/follows", request.URL.Path)

		projects := []modrinth.Project{
			{ID: "P7dR8mSH", Slug: "fabric-api", Title: "Fabric API"},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(projects)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, auth.NewStaticTokenManager("mrp_test_token"))
	users := NewUsersClient(httpClient)

	projects, err := users.ListFollowedProjects(context.Background(), "TEZXhE2U")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "fabric-api", projects[0].Slug)
}
