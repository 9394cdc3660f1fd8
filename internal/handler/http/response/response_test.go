package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	cases := []struct {
		total     int64
		page      int
		limit     int
		wantPages int
	}{
		{0, 1, 20, 0},
		{1, 1, 20, 1},
		{20, 1, 20, 1},
		{21, 1, 20, 2},
		{100, 3, 10, 10},
	}
	for _, c := range cases {
		meta := NewMeta(c.total, c.page, c.limit)
		assert.Equal(t, c.total, meta.Total)
		assert.Equal(t, c.page, meta.Page)
		assert.Equal(t, c.limit, meta.Limit)
		assert.Equal(t, c.wantPages, meta.TotalPages, "total=%d limit=%d", c.total, c.limit)
	}
}

func TestOKList_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	OKList(w, []string{"a", "b"}, NewMeta(2, 1, 20))

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body struct {
		Data []string `json:"data"`
		Meta *Meta    `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"a", "b"}, body.Data)
	require.NotNil(t, body.Meta)
	assert.Equal(t, int64(2), body.Meta.Total)
}

func TestValidationFailed(t *testing.T) {
	w := httptest.NewRecorder()
	ValidationFailed(w, map[string]string{"email": "email is required"})

	assert.Equal(t, 422, w.Code)

	var body struct {
		Message string            `json:"message"`
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Equal(t, "email is required", body.Details["email"])
}
