package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const unknownRoute = "unknown"

// MetricsMiddleware считает запросы и их длительность.
// В метку route идёт шаблон маршрута, а не фактический путь, чтобы не раздувать кардинальность.
func MetricsMiddleware(m MetricsRecorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			m.RecordHTTPRequest(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unknownRoute
	}

	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unknownRoute
	}

	return tpl
}
