package check_availability

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

	_, err := eng.Schedule(10, 12)
	require.NoError(t, err)

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/resources/{resourceId}/availability", NewHandler(svc, logger.Nop()).Handle).
		Methods(http.MethodGet)

	tests := []struct {
		name          string
		path          string
		wantStatus    int
		wantAvailable bool
	}{
		{name: "overlap", path: "/api/v1/resources/1/availability?start=11&end=13", wantStatus: http.StatusOK},
		{name: "touching", path: "/api/v1/resources/1/availability?start=12&end=13", wantStatus: http.StatusOK, wantAvailable: true},
		{name: "unknown resource", path: "/api/v1/resources/9/availability?start=1&end=2", wantStatus: http.StatusNotFound},
		{name: "empty range", path: "/api/v1/resources/1/availability?start=2&end=2", wantStatus: http.StatusBadRequest},
		{name: "missing end", path: "/api/v1/resources/1/availability?start=2", wantStatus: http.StatusBadRequest},
		{name: "invalid resource id", path: "/api/v1/resources/x/availability?start=1&end=2", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var resp models.AvailabilityResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantAvailable, resp.Available)
			}
		})
	}
}
