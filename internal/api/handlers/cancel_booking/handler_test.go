package cancel_booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourceScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/bookings"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/bookings/models"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/engine"
	"github.com/m04kA/SMC-ResourceScheduler/internal/service/resources"
	"github.com/m04kA/SMC-ResourceScheduler/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	pool := resources.NewPool()
	pool.Add("A")
	eng := engine.NewEngine(pool, nil)
	svc := bookings.NewService(eng, pool, events.NopPublisher{}, logger.Nop())

	b, err := eng.Schedule(10, 12)
	require.NoError(t, err)

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)

	do := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
		return rec
	}

	rec := do("/api/v1/bookings/1")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.CancelBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(b.ID), resp.BookingID)
	assert.True(t, resp.Cancelled)
	assert.Equal(t, "cancelled", resp.Status)

	// повторная отмена
	rec = do("/api/v1/bookings/1")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Cancelled)

	rec = do("/api/v1/bookings/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do("/api/v1/bookings/0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
