package middleware

import "time"

// MetricsRecorder интерфейс сборщика HTTP-метрик
type MetricsRecorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
