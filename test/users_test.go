package test

import (
	"context"
	"net/http"

	"github.com/2beens/sportai/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestRegisterAndLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	regReq := newRegisterRequest(1)
	resp := s.doRequest(ctx, http.MethodPost, "/register", "", regReq)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var registered users.User
	decodeBody(t, resp, &registered)
	assert.Positive(t, registered.ID)
	assert.Equal(t, regReq.Username, registered.Username)
	assert.Equal(t, "female", registered.Gender)

	var storedHash string
	require.NoError(t, s.DB.QueryRowContext(
		ctx, `SELECT password_hash FROM sportai_user WHERE id = $1;`, registered.ID,
	).Scan(&storedHash))
	assert.NotEqual(t, testPassword, storedHash)

	s.Run("duplicate user", func() {
		dup := newRegisterRequest(2)
		dup.Username = regReq.Username
		resp := s.doRequest(ctx, http.MethodPost, "/register", "", dup)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	s.Run("invalid phone", func() {
		bad := newRegisterRequest(3)
		bad.Phone = "12345"
		resp := s.doRequest(ctx, http.MethodPost, "/register", "", bad)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	cases := map[string]struct {
		identifier     string
		password       string
		expectedStatus int
	}{
		"by username":    {identifier: regReq.Username, password: testPassword, expectedStatus: http.StatusOK},
		"by email":       {identifier: regReq.Email, password: testPassword, expectedStatus: http.StatusOK},
		"by phone":       {identifier: regReq.Phone, password: testPassword, expectedStatus: http.StatusOK},
		"wrong password": {identifier: regReq.Username, password: "Wrong1234", expectedStatus: http.StatusNotFound},
		"unknown user":   {identifier: "nobody_here", password: testPassword, expectedStatus: http.StatusNotFound},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			resp := s.doRequest(ctx, http.MethodPost, "/login", "", users.LoginRequest{
				Identifier: tc.identifier,
				Password:   tc.password,
			})
			require.Equal(t, tc.expectedStatus, resp.StatusCode)
			if tc.expectedStatus != http.StatusOK {
				resp.Body.Close()
				return
			}

			var loginResp users.LoginResponse
			decodeBody(t, resp, &loginResp)
			assert.NotEmpty(t, loginResp.Token)
			assert.Equal(t, registered.ID, loginResp.User.ID)
		})
	}
}

func (s *IntegrationTestSuite) TestSessionLifecycle() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, user := s.registerAndLogin(ctx, 10)

	resp := s.doRequest(ctx, http.MethodGet, "/is-valid", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodGet, "/account", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var account users.User
	decodeBody(t, resp, &account)
	assert.Equal(t, user.ID, account.ID)
	assert.Equal(t, user.Email, account.Email)

	resp = s.doRequest(ctx, http.MethodGet, "/account", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodGet, "/logout", token, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodGet, "/is-valid", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodGet, "/account", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestChangePasswordAndDeleteAccount() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, user := s.registerAndLogin(ctx, 20)
	newPassword := "Changed456"

	resp := s.doRequest(ctx, http.MethodPut, "/account", token, users.ChangePasswordRequest{
		CurrentPassword: testPassword,
		NewPassword:     newPassword,
		ConfirmPassword: newPassword,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodPost, "/login", "", users.LoginRequest{
		Identifier: user.Username,
		Password:   testPassword,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodPost, "/login", "", users.LoginRequest{
		Identifier: user.Username,
		Password:   newPassword,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodDelete, "/account", token, users.DeleteAccountRequest{
		Password: newPassword,
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int
	require.NoError(t, s.DB.QueryRowContext(
		ctx, `SELECT COUNT(*) FROM sportai_user WHERE id = $1;`, user.ID,
	).Scan(&count))
	assert.Zero(t, count)
}
