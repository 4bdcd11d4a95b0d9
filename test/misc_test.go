package test

import (
	"context"
	"io"
	"net/http"

	"github.com/2beens/sportai/internal/misc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestMisc() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp := s.doRequest(ctx, http.MethodGet, "/", "", nil)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "I'm OK, thanks ;)", string(body))

	resp = s.doRequest(ctx, http.MethodGet, "/version", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var version misc.VersionResponse
	decodeBody(t, resp, &version)
	assert.Equal(t, "test-version-info", version.Version)

	token, _ := s.registerAndLogin(ctx, 50)

	resp = s.doRequest(ctx, http.MethodGet, "/quote/random?topic=form", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var quote misc.Quote
	decodeBody(t, resp, &quote)
	assert.NotEmpty(t, quote.Text)
	assert.Equal(t, "form", quote.Topic)

	resp = s.doRequest(ctx, http.MethodGet, "/quote/random?topic=chess", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.doRequest(ctx, http.MethodGet, "/chat/some-session/history", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
