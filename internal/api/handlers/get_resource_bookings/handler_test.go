package get_resource_bookings

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

	for _, iv := range [][2]int64{{30, 40}, {0, 10}, {10, 20}} {
		_, err := eng.Schedule(iv[0], iv[1])
		require.NoError(t, err)
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/resources/{resourceId}/bookings", NewHandler(svc, logger.Nop()).Handle).
		Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/resources/1/bookings", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 3)
	assert.Equal(t, []int64{0, 10, 30}, []int64{resp.Bookings[0].Start, resp.Bookings[1].Start, resp.Bookings[2].Start})

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/resources/5/bookings", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
