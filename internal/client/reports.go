package client

import (
	"context"
	"encoding/json"
	"fmt"

	http_internal "github.com/HelixLauncher/ferinth/internal/http"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// ReportsClient implements the modrinth.ReportsClient interface.
type ReportsClient struct {
	httpClient *http_internal.Client
}

// NewReportsClient creates a new ReportsClient.
func NewReportsClient(httpClient *http_internal.Client) *ReportsClient {
	return &ReportsClient{
		httpClient: httpClient,
	}
}

// Submit files a report against a project, version, or user and returns
// the created report. Requires authentication. The accepted report
// types come from TagsClient.ListReportTypes.
func (c *ReportsClient) Submit(ctx context.Context, report *modrinth.ReportSubmission) (*modrinth.Report, error) {
	if err := validateReport(report); err != nil {
		return nil, fmt.Errorf("submitting report: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, "/report", report)
	if err != nil {
		return nil, fmt.Errorf("submitting report: %w", err)
	}

	var created modrinth.Report

	err = json.Unmarshal(resp.Body, &created)
	if err != nil {
		return nil, fmt.Errorf("parsing report response: %w", &modrinth.DecodeError{Body: resp.Body, Err: err})
	}

	return &created, nil
}

// validateReport checks the submission locally so malformed reports
// never reach the network.
func validateReport(report *modrinth.ReportSubmission) error {
	if report == nil {
		return modrinth.ErrNilReport
	}

	if report.ReportType == "" {
		return modrinth.ErrReportTypeRequired
	}

	if report.Body == "" {
		return modrinth.ErrReportBodyRequired
	}

	switch report.ItemType {
	case modrinth.ReportItemTypeProject, modrinth.ReportItemTypeVersion, modrinth.ReportItemTypeUser:
	default:
		return modrinth.ErrInvalidReportItemType
	}

	if err := modrinth.ValidateID(report.ItemID); err != nil {
		return err
	}

	return nil
}
