package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/engine"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/resources"
	createBooking "github.com/m04kA/SMC-ResourceScheduler/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ResourceScheduler/pkg/logger"
)

func newTestHandler(rooms int) *Handler {
	pool := resources.NewPool()
	for i := 0; i < rooms; i++ {
		pool.Add("")
	}
	uc := createBooking.NewUseCase(engine.NewEngine(pool, nil), pool, events.NopPublisher{}, logger.Nop())
	return NewHandler(uc, logger.Nop())
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)).
		WithContext(context.Background())
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	h := newTestHandler(1)

	rec := post(h, `{"start": 10, "end": 12}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.ResourceID)
	assert.Equal(t, "active", resp.Status)

	// пересечение на единственном ресурсе
	rec = post(h, `{"start": 11, "end": 13}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// стык допустим
	rec = post(h, `{"start": 12, "end": 14}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	h := newTestHandler(1)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ``},
		{name: "malformed json", body: `{"start":`},
		{name: "missing end", body: `{"start": 1}`},
		{name: "start equals end", body: `{"start": 5, "end": 5}`},
		{name: "start after end", body: `{"start": 6, "end": 5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Handle_ZeroStartAllowed(t *testing.T) {
	h := newTestHandler(1)

	rec := post(h, `{"start": 0, "end": 1}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
