package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("reports degraded when datastore unconfigured", func(t *testing.T) {
		engine := newCatalogEngine()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			OK        bool   `json:"ok"`
			Status    string `json:"status"`
			Datastore string `json:"datastore"`
			Uptime    string `json:"uptime"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "unconfigured", resp.Datastore)
		assert.NotEmpty(t, resp.Uptime)
	})
}
