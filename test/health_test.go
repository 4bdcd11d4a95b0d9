package test

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/sportai/internal/health"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func (s *IntegrationTestSuite) TestHealthRecords() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, user := s.registerAndLogin(ctx, 30)
	otherToken, _ := s.registerAndLogin(ctx, 31)

	now := time.Now().UTC()
	records := []health.Record{
		{
			RecordedAt:      now.Add(-2 * time.Hour),
			Heartbeat:       intPtr(60),
			SleepHours:      floatPtr(7),
			WalkingSteps:    intPtr(8000),
			RunningDuration: intPtr(30),
		},
		{
			RecordedAt:        now.Add(-1 * time.Hour),
			Heartbeat:         intPtr(70),
			SleepHours:        floatPtr(8),
			WalkingSteps:      intPtr(4000),
			BadmintonDuration: intPtr(45),
		},
		{
			// outside of the summary window
			RecordedAt:   now.Add(-30 * 24 * time.Hour),
			Heartbeat:    intPtr(100),
			WalkingSteps: intPtr(100000),
		},
	}

	addedIDs := make([]int, 0, len(records))
	for _, record := range records {
		resp := s.doRequest(ctx, http.MethodPost, "/health", token, record)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var added health.Record
		decodeBody(t, resp, &added)
		assert.Equal(t, user.ID, added.UserID)
		addedIDs = append(addedIDs, added.ID)
	}

	s.Run("empty record rejected", func() {
		resp := s.doRequest(ctx, http.MethodPost, "/health", token, health.Record{})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("list", func() {
		resp := s.doRequest(ctx, http.MethodGet, "/health/list/page/1/size/2", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var listResp health.ListResponse
		decodeBody(t, resp, &listResp)
		assert.Equal(t, 3, listResp.Total)
		require.Len(t, listResp.Records, 2)
		// newest first
		assert.Equal(t, addedIDs[1], listResp.Records[0].ID)
		assert.Equal(t, addedIDs[0], listResp.Records[1].ID)
	})

	s.Run("summary", func() {
		resp := s.doRequest(ctx, http.MethodGet, "/health/summary", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var summary health.Summary
		decodeBody(t, resp, &summary)
		assert.Equal(t, 2, summary.Records)
		require.NotNil(t, summary.AvgHeartbeat)
		assert.InDelta(t, 65.0, *summary.AvgHeartbeat, 0.001)
		require.NotNil(t, summary.AvgSleepHours)
		assert.InDelta(t, 7.5, *summary.AvgSleepHours, 0.001)
		assert.Nil(t, summary.AvgHydration)
		assert.Equal(t, int64(12000), summary.TotalSteps)
		assert.Equal(t, int64(75), summary.ActiveMinutes)
	})

	s.Run("records of other users are hidden", func() {
		path := fmt.Sprintf("/health/%d", addedIDs[0])
		resp := s.doRequest(ctx, http.MethodGet, path, otherToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp = s.doRequest(ctx, http.MethodDelete, path, otherToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	s.Run("delete", func() {
		path := fmt.Sprintf("/health/%d", addedIDs[2])
		resp := s.doRequest(ctx, http.MethodDelete, path, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var deleteResp health.DeleteRecordResponse
		decodeBody(t, resp, &deleteResp)
		assert.Equal(t, addedIDs[2], deleteResp.DeletedID)

		resp = s.doRequest(ctx, http.MethodGet, path, token, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
