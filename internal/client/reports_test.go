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

	. "github.com/HelixLauncher/ferinth/internal/client"
	internalhttp "github.com/HelixLauncher/ferinth/internal/http"
	"github.com/HelixLauncher/ferinth/pkg/modrinth"
)

func TestReportsClient_Submit(t *testing.T) {
	t.Parallel()

	created := time.Date(2023, 9, 14, 12, 30, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/report", request.URL.Path)
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		var submission modrinth.ReportSubmission
		require.NoError(t, json.NewDecoder(request.Body).Decode(&submission))
		assert.Equal(t, "copyright", submission.ReportType)
		assert.Equal(t, "AANobbMI", submission.ItemID)
		assert.Equal(t, modrinth.ReportItemTypeProject, submission.ItemType)
		assert.Equal(t, "This project redistributes my textures without permission", submission.Body)

		report := modrinth.Report{
			ID:         "rprt0001",
			ReportType: submission.ReportType,
			ItemID:     submission.ItemID,
			ItemType:   submission.ItemType,
			Body:       submission.Body,
			Reporter:   "TEZXhE2U",
			Created:    created,
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(report)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	reports := NewReportsClient(httpClient)

	report, err := reports.Submit(context.Background(), &modrinth.ReportSubmission{
		ReportType: "copyright",
		ItemID:     "AANobbMI",
		ItemType:   modrinth.ReportItemTypeProject,
		Body:       "This project redistributes my textures without permission",
	})
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "rprt0001", report.ID)
	assert.Equal(t, "TEZXhE2U", report.Reporter)
	assert.Equal(t, created, report.Created)
}

func TestReportsClient_Submit_Validation(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		requests++
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	httpClient := internalhttp.NewClient(server.URL, nil)
	reports := NewReportsClient(httpClient)

	tests := []struct {
		name       string
		submission *modrinth.ReportSubmission
		wantErr    error
	}{
		{
			name:       "nil report",
			submission: nil,
			wantErr:    modrinth.ErrNilReport,
		},
		{
			name: "missing report type",
			submission: &modrinth.ReportSubmission{
				ItemID:   "AANobbMI",
				ItemType: modrinth.ReportItemTypeProject,
				Body:     "details",
			},
			wantErr: modrinth.ErrReportTypeRequired,
		},
		{
			name: "missing body",
			submission: &modrinth.ReportSubmission{
				ReportType: "spam",
				ItemID:     "AANobbMI",
				ItemType:   modrinth.ReportItemTypeProject,
			},
			wantErr: modrinth.ErrReportBodyRequired,
		},
		{
			name: "invalid item type",
			submission: &modrinth.ReportSubmission{
				ReportType: "spam",
				ItemID:     "AANobbMI",
				ItemType:   "team",
				Body:       "details",
			},
			wantErr: modrinth.ErrInvalidReportItemType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := reports.Submit(context.Background(), tt.submission)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, report)
		})
	}

	t.Run("invalid item ID", func(t *testing.T) {
		report, err := reports.Submit(context.Background(), &modrinth.ReportSubmission{
			ReportType: "spam",
			ItemID:     "not/an/id",
			ItemType:   modrinth.ReportItemTypeProject,
			Body:       "details",
		})
		require.Error(t, err)
		assert.True(t, modrinth.IsInvalidIdentifier(err))
		assert.Nil(t, report)
	})

	assert.Equal(t, 0, requests, "validation failures must not reach the network")
}
