package test

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/sportai/internal/posture"
	"github.com/2beens/sportai/internal/posture/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) postureStatus(ctx context.Context, token string) posture.Status {
	resp := s.doRequest(ctx, http.MethodGet, "/posture/status", token, nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode)
	var status posture.Status
	decodeBody(s.T(), resp, &status)
	return status
}

func (s *IntegrationTestSuite) TestPostureMonitor() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, _ := s.registerAndLogin(ctx, 40)

	resp := s.doRequest(ctx, http.MethodPost, "/posture/start", "", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	status := s.postureStatus(ctx, token)
	assert.False(t, status.Running)
	assert.Equal(t, posture.ModeHandRaise, status.Mode)

	resp = s.doRequest(ctx, http.MethodPut, "/posture/mode", token, posture.SetModeRequest{Mode: "jumping_jack"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodPost, "/posture/start", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the recording holds 45 consecutive bad hand raises
	require.Eventually(t, func() bool {
		return !s.postureStatus(ctx, token).Running
	}, 10*time.Second, 100*time.Millisecond)

	status = s.postureStatus(ctx, token)
	assert.Equal(t, int64(1), status.AlarmsFired)
	assert.Positive(t, status.FramesProcessed)

	var alarms history.ListResponse
	require.Eventually(t, func() bool {
		resp := s.doRequest(ctx, http.MethodGet, "/posture/alarms/list/page/1/size/10", token, nil)
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return false
		}
		decodeBody(t, resp, &alarms)
		return alarms.Total == 1
	}, 5*time.Second, 100*time.Millisecond)

	require.Len(t, alarms.Alarms, 1)
	alarm := alarms.Alarms[0]
	assert.Equal(t, posture.ModeHandRaise, alarm.Mode)
	assert.Less(t, alarm.ShoulderAngle, posture.ShoulderAngleThreshold)

	resp = s.doRequest(ctx, http.MethodGet, "/posture/frame", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))

	resp = s.doRequest(ctx, http.MethodPost, "/posture/stop", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
