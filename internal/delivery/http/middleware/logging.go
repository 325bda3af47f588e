package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// AccessLog writes one "request" record per call once the handler returns. Bodies and
// query strings stay out of the log since they carry phone numbers. 5xx answers log at
// error level and calls slower than slow (when positive) at warn level.
func AccessLog(logger *slog.Logger, slow time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			elapsed := time.Since(started)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.Status()),
				slog.Int64("bytes", rec.bytes),
				slog.Int64("duration_ms", elapsed.Milliseconds()),
			}
			if id, ok := RequestIDFromContext(r.Context()); ok {
				attrs = append(attrs, slog.String("request_id", id))
			}
			logger.LogAttrs(r.Context(), accessLevel(rec.Status(), elapsed, slow), "request", attrs...)
		})
	}
}

func accessLevel(status int, elapsed, slow time.Duration) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case slow > 0 && elapsed > slow:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
