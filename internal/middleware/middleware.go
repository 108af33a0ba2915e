package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"foodexpress/internal/auth"

	"github.com/rs/zerolog"
)

// TokenVerifier verifies a bearer token and returns the session it encodes.
type TokenVerifier interface {
	Verify(token string) (auth.UserSession, error)
}

// CORS adds CORS headers to the response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireUser verifies the Authorization bearer token and stores the session
// in the request context.
func RequireUser(verifier TokenVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := authenticate(w, r, verifier, logger)
			if !ok {
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithSession(r.Context(), session)))
		})
	}
}

// RequireAdmin verifies the bearer token and rejects sessions without admin
// privilege before storing the session in the request context.
func RequireAdmin(verifier TokenVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := authenticate(w, r, verifier, logger)
			if !ok {
				return
			}

			if _, ok := session.AsAdmin(); !ok {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("user_id", session.UserID.String()).
					Msg("non-admin request to admin route")
				writeAuthError(w, http.StatusForbidden, "admin privilege required")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithSession(r.Context(), session)))
		})
	}
}

// authenticate extracts and verifies the bearer token, writing a 401 on failure.
func authenticate(w http.ResponseWriter, r *http.Request, verifier TokenVerifier, logger zerolog.Logger) (auth.UserSession, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		logger.Warn().Str("path", r.URL.Path).Msg("missing authorization header")
		writeAuthError(w, http.StatusUnauthorized, "authentication required")
		return auth.UserSession{}, false
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		logger.Warn().Str("path", r.URL.Path).Msg("malformed authorization header")
		writeAuthError(w, http.StatusUnauthorized, "invalid token")
		return auth.UserSession{}, false
	}

	session, err := verifier.Verify(token)
	if err != nil {
		logger.Warn().Str("path", r.URL.Path).Err(err).Msg("token verification failed")
		writeAuthError(w, http.StatusUnauthorized, "invalid token")
		return auth.UserSession{}, false
	}

	return session, true
}

// writeAuthError responds with the API's JSON error shape; auth rejections
// look the same to clients as handler errors.
func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error": "internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
