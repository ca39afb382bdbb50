package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qravy/internal/interfaces/http/handlers/testutil"
)

func TestHandler_Healthz_OK(t *testing.T) {
	handler := NewHandler(map[string]Check{
		"database": func(context.Context) error { return nil },
	}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/healthz", nil)
	handler.Healthz(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var status statusResponse
	require.NoError(t, json.Unmarshal(resp.Data, &status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, map[string]string{"database": "ok"}, status.Checks)
}

func TestHandler_Healthz_Unavailable(t *testing.T) {
	handler := NewHandler(map[string]Check{
		"database": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return fmt.Errorf("dial tcp: connection refused") },
	}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/healthz", nil)
	handler.Healthz(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "unhealthy: redis", resp.Error.Message)
}
