package client_test

import (
	"context"
	"encoding/json"
	"errors"
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

func TestProjectsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/project/sodium", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		project := modrinth.Project{
			ID:          "AANobbMI",
			Slug:        "sodium",
			ProjectType: modrinth.ProjectTypeMod,
			Team:        "4reLOAKe",
			Title:       "Sodium",
			Description: "A modern rendering engine",
			Status:      modrinth.ProjectStatusApproved,
			ClientSide:  modrinth.SideSupportRequired,
			ServerSide:  modrinth.SideSupportUnsupported,
			Downloads:   1000000,
			Categories:  []string{"optimization"},
			Published:   time.Now().Add(-48 * time.Hour),
			Updated:     time.Now(),
			License:     modrinth.License{ID: "LGPL-3.0", Name: "GNU Lesser General Public License v3"},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(project)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	projects := NewProjectsClient(httpClient)

	project, err := projects.Get(context.Background(), "sodium")
	require.NoError(t, err)
	assert.NotNil(t, project)
	assert.Equal(t, "AANobbMI", project.ID)
	assert.Equal(t, modrinth.ProjectTypeMod, project.ProjectType)
	assert.Equal(t, modrinth.SideSupportRequired, project.ClientSide)
	assert.Equal(t, modrinth.SideSupportUnsupported, project.ServerSide)
}

func TestProjectsClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(writer).Encode(map[string]string{
			"error":       "not_found",
			"description": "the requested route does not exist",
		})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	projects := NewProjectsClient(httpClient)

	project, err := projects.Get(context.Background(), "does-not-exist")
	require.Error(t, err)
	assert.Nil(t, project)
	assert.True(t, modrinth.IsNotFound(err))

	var apiErr *modrinth.APIError

	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "not_found", apiErr.ErrorCode)
	assert.Equal(t, "the requested route does not exist", apiErr.Reason)
}

func TestProjectsClient_Get_DecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"id": 42}`))
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	projects := NewProjectsClient(httpClient)

	project, err := projects.Get(context.Background(), "sodium")
	require.Error(t, err)
	assert.Nil(t, project)

	var decodeErr *modrinth.DecodeError

	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, []byte(`{"id": 42}`), decodeErr.Body)
}

func TestProjectsClient_GetMultiple(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++

		assert.Equal(t, "/projects", request.URL.Path)
		assert.Equal(t, `["AANobbMI","P7dR8mSH"]`, request.URL.Query().Get("ids"))

		projects := []modrinth.Project{
			{ID: "P7dR8mSH", Slug: "fabric-api"},
			{ID: "AANobbMI", Slug: "sodium"},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(projects)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	projects := NewProjectsClient(httpClient)

	result, err := projects.GetMultiple(context.Background(), []string{"AANobbMI", "P7dR8mSH"})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 1, requests)
}

func TestProjectsClient_GetMultiple_InvalidID(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	projects := NewProjectsClient(httpClient)

	result, err := projects.GetMultiple(context.Background(), []string{"AANobbMI", ""})
	require.Error(t, err)
	assert.Nil(t, result)

	var invalidErr *modrinth.InvalidIdentifierError

	require.ErrorAs(t, err, &invalidErr)
	assert.Empty(t, invalidErr.ID)
	assert.Equal(t, 0, requests)
}

func TestProjectsClient_ListDependencies(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/project/sodium/dependencies", request.URL.Path)

		dependencies := modrinth.ProjectDependencies{
			Projects: []modrinth.Project{
				{ID: "P7dR8mSH", Slug: "fabric-api"},
			},
			Versions: []modrinth.Version{
				{ID: "vvvvvvvv", ProjectID: "P7dR8mSH", VersionNumber: "0.91.0"},
			},
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(dependencies)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	projects := NewProjectsClient(httpClient)

	dependencies, err := projects.ListDependencies(context.Background(), "sodium")
	require.NoError(t, err)
	assert.NotNil(t, dependencies)
	require.Len(t, dependencies.Projects, 1)
	require.Len(t, dependencies.Versions, 1)
	assert.Equal(t, "fabric-api", dependencies.Projects[0].Slug)
	assert.Equal(t, "0.91.0", dependencies.Versions[0].VersionNumber)
}

func TestProjectsClient_CheckValidity(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/project/sodium/check", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(modrinth.ProjectIdentifier{ID: "AANobbMI"})
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	projects := NewProjectsClient(httpClient)

	identifier, err := projects.CheckValidity(context.Background(), "sodium")
	require.NoError(t, err)
	assert.NotNil(t, identifier)
	assert.Equal(t, "AANobbMI", identifier.ID)
}

func TestProjectsClient_Follow(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/project/sodium/follow", request.URL.Path)
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "mrp_test_token", request.Header.Get("Authorization"))

		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, auth.NewStaticTokenManager("mrp_test_token"))
	projects := NewProjectsClient(httpClient)

	err := projects.Follow(context.Background(), "sodium")
	require.NoError(t, err)
}

func TestProjectsClient_Follow_Unauthorized(t *testing.T) {
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
	projects := NewProjectsClient(httpClient)

	err := projects.Follow(context.Background(), "sodium")
	require.Error(t, err)
	assert.True(t, modrinth.IsUnauthorized(err))
}

func TestProjectsClient_Get_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	projects := NewProjectsClient(httpClient)

	project, err := projects.Get(context.Background(), "sodium")
	require.Error(t, err)
	assert.Nil(t, project)

	var transportErr *modrinth.TransportError

	assert.True(t, errors.As(err, &transportErr))
}
