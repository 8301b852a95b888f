package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HelixLauncher/ferinth/internal/constants"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

// Static errors for err113 compliance.
var (
	ErrPathTraversal = errors.New("invalid file path: path traversal not allowed")
)

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	var (
		itemType string
		body     string
		bodyFile string
	)

	cmd := &cobra.Command{
		Use:   "report REPORT_TYPE ITEM_ID",
		Short: "Report a project, version, or user",
		Long: "File a moderation report against a project, version, or user. " +
			"The report type must be one of the platform's report types, see 'ferinth tags report-types'.",
		Args: cobra.ExactArgs(constants.TwoArgumentsRequired),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReportCommand(args[0], args[1], itemType, body, bodyFile)
		},
	}

	cmd.Flags().StringVar(&itemType, "item-type", "project", "kind of item being reported (project, version, or user)")
	cmd.Flags().StringVar(&body, "body", "", "report body text")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "read the report body from a file")

	return cmd
}

func runReportCommand(reportType, itemID, itemType, body, bodyFile string) error {
	err := requireAuth()
	if err != nil {
		return err
	}

	body, err = resolveReportBody(body, bodyFile)
	if err != nil {
		return err
	}

	client, err := createClient()
	if err != nil {
		return err
	}

	submission := &modrinth.ReportSubmission{
		ReportType: reportType,
		ItemID:     itemID,
		ItemType:   modrinth.ReportItemType(itemType),
		Body:       body,
	}

	report, err := client.Reports().Submit(context.Background(), submission)
	if err != nil {
		return fmt.Errorf("failed to submit report: %w", err)
	}

	return outputReport(report)
}

func resolveReportBody(body, bodyFile string) (string, error) {
	if body != "" {
		return body, nil
	}

	if bodyFile == "" {
		return "", ErrReportBodyRequired
	}

	err := validateBodyFilePath(bodyFile)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(bodyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read body file: %w", err)
	}

	body = strings.TrimSpace(string(content))
	if body == "" {
		return "", ErrReportBodyRequired
	}

	return body, nil
}

// validateBodyFilePath rejects paths that escape the working directory
// before the file is read.
func validateBodyFilePath(filePath string) error {
	cleanPath := filepath.Clean(filePath)

	if filepath.IsAbs(filePath) {
		if cleanPath != filePath {
			return fmt.Errorf("%w: %q", ErrPathTraversal, filePath)
		}
	} else if strings.HasPrefix(cleanPath, "..") {
		return fmt.Errorf("%w: %q", ErrPathTraversal, filePath)
	}

	_, err := os.Stat(cleanPath)
	if err != nil {
		return fmt.Errorf("body file not accessible: %w", err)
	}

	return nil
}

func outputReport(report *modrinth.Report) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(report)
	case OutputFormatYAML:
		return StandardYAMLRenderer(report)
	default:
		return renderReportTable(report)
	}
}

func renderReportTable(report *modrinth.Report) error {
	_, _ = os.Stdout.WriteString("Report submitted:\n\n")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", report.ID)
	_ = table.Append("Type", report.ReportType)
	_ = table.Append("Item", report.ItemID)
	_ = table.Append("Item type", string(report.ItemType))
	_ = table.Append("Reporter", report.Reporter)
	_ = table.Append("Created", formatTime(report.Created))

	_ = table.Render()

	return nil
}
