package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/2beens/sportai/internal/users"

	"github.com/stretchr/testify/require"
)

const testPassword = "Secret123"

// doRequest sends body (if not nil) as JSON and returns the response,
// which the caller must close.
func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string, body any) *http.Response {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(respBytes, v), string(respBytes))
}

func newRegisterRequest(suffix int) users.RegisterRequest {
	return users.RegisterRequest{
		Name:            "Test Athlete",
		Username:        fmt.Sprintf("athlete_%d", suffix),
		Email:           fmt.Sprintf("athlete%d@sportai.test", suffix),
		Phone:           fmt.Sprintf("98765%05d", suffix),
		Gender:          "female",
		DOB:             "1999-04-12",
		Password:        testPassword,
		ConfirmPassword: testPassword,
	}
}

// registerAndLogin creates a fresh user and returns its session token.
func (s *IntegrationTestSuite) registerAndLogin(ctx context.Context, suffix int) (string, *users.User) {
	t := s.T()

	regReq := newRegisterRequest(suffix)
	resp := s.doRequest(ctx, http.MethodPost, "/register", "", regReq)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = s.doRequest(ctx, http.MethodPost, "/login", "", users.LoginRequest{
		Identifier: regReq.Username,
		Password:   testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp users.LoginResponse
	decodeBody(t, resp, &loginResp)
	require.NotEmpty(t, loginResp.Token)
	require.NotNil(t, loginResp.User)

	return loginResp.Token, loginResp.User
}
