package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, []byte(`{"ok":true}`), `W/"abc"`, time.Hour, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `W/"abc"`, rec.Header().Get("ETag"))
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "public, max-age=3600, stale-while-revalidate=1800", rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestWriteErrorDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteErrorDetail(rec, http.StatusNotFound, "TEAM_NOT_FOUND", "No such team", "XYZ")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorBody{Code: "TEAM_NOT_FOUND", Message: "No such team", Detail: "XYZ"}, body.Error)
}

func TestWriteNotModified(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteNotModified(rec, `W/"abc"`)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}
