package client

import (
	"context"
	"encoding/json"
	"fmt"

	http_internal "github.com/HelixLauncher/ferinth/internal/http"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// TagsClient implements the modrinth.TagsClient interface. Tag listings
// are the platform's fixed vocabularies; none of them require
// authentication.
type TagsClient struct {
	httpClient *http_internal.Client
}

// NewTagsClient creates a new TagsClient.
func NewTagsClient(httpClient *http_internal.Client) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
	}
}

// ListCategories lists the project categories known to the platform.
func (c *TagsClient) ListCategories(ctx context.Context) ([]modrinth.Category, error) {
	resp, err := c.httpClient.Get(ctx, "/tag/category", nil)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	var categories []modrinth.Category

	err = json.Unmarshal(resp.Body, &categories)
	if err != nil {
		return nil, fmt.Errorf("parsing categories response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return categories, nil
}

// ListLoaders lists the mod loaders known to the platform.
func (c *TagsClient) ListLoaders(ctx context.Context) ([]modrinth.Loader, error) {
	resp, err := c.httpClient.Get(ctx, "/tag/loader", nil)
	if err != nil {
		return nil, fmt.Errorf("listing loaders: %w", err)
	}

	var loaders []modrinth.Loader

	err = json.Unmarshal(resp.Body, &loaders)
	if err != nil {
		return nil, fmt.Errorf("parsing loaders response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return loaders, nil
}

// ListGameVersions lists the game versions known to the platform.
func (c *TagsClient) ListGameVersions(ctx context.Context) ([]modrinth.GameVersionTag, error) {
	resp, err := c.httpClient.Get(ctx, "/tag/game_version", nil)
	if err != nil {
		return nil, fmt.Errorf("listing game versions: %w", err)
	}

	var gameVersions []modrinth.GameVersionTag

	err = json.Unmarshal(resp.Body, &gameVersions)
	if err != nil {
		return nil, fmt.Errorf("parsing game versions response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return gameVersions, nil
}

// ListLicenses lists the licenses known to the platform.
func (c *TagsClient) ListLicenses(ctx context.Context) ([]modrinth.LicenseTag, error) {
	resp, err := c.httpClient.Get(ctx, "/tag/license", nil)
	if err != nil {
		return nil, fmt.Errorf("listing licenses: %w", err)
	}

	var licenses []modrinth.LicenseTag

	err = json.Unmarshal(resp.Body, &licenses)
	if err != nil {
		return nil, fmt.Errorf("parsing licenses response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return licenses, nil
}

// ListDonationPlatforms lists the donation platforms known to the
// platform.
func (c *TagsClient) ListDonationPlatforms(ctx context.Context) ([]modrinth.DonationPlatformTag, error) {
	resp, err := c.httpClient.Get(ctx, "/tag/donation_platform", nil)
	if err != nil {
		return nil, fmt.Errorf("listing donation platforms: %w", err)
	}

	var platforms []modrinth.DonationPlatformTag

	err = json.Unmarshal(resp.Body, &platforms)
	if err != nil {
		return nil, fmt.Errorf("parsing donation platforms response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return platforms, nil
}

// ListReportTypes lists the accepted report types for Submit.
func (c *TagsClient) ListReportTypes(ctx context.Context) ([]string, error) {
	resp, err := c.httpClient.Get(ctx, "/tag/report_type", nil)
	if err != nil {
		return nil, fmt.Errorf("listing report types: %w", err)
	}

	var reportTypes []string

	err = json.Unmarshal(resp.Body, &reportTypes)
	if err != nil {
		return nil, fmt.Errorf("parsing report types response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return reportTypes, nil
}
