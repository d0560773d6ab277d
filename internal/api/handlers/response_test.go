package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "занято")

	require.Equal(t, http.StatusConflict, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "занято"}, body)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Start int64 `json:"start"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"start": 5}`},
		{name: "empty", body: ``, wantErr: true},
		{name: "unknown field", body: `{"start": 5, "foo": 1}`, wantErr: true},
		{name: "wrong type", body: `{"start": "x"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(r, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), p.Start)
		})
	}
}

func TestParseInterval(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?start=10&end=12", nil)
	start, end, err := ParseInterval(r)
	require.NoError(t, err)
	assert.Equal(t, int64(10), start)
	assert.Equal(t, int64(12), end)

	r = httptest.NewRequest(http.MethodGet, "/?start=10", nil)
	_, _, err = ParseInterval(r)
	assert.Error(t, err)

	r = httptest.NewRequest(http.MethodGet, "/?start=a&end=2", nil)
	_, _, err = ParseInterval(r)
	assert.Error(t, err)
}
