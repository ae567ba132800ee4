package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/liftlogapp/liftlog/internal/telemetry/tracing"
	"github.com/liftlogapp/liftlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type userIDContextKey struct{}

// UserIDFromContext returns the authenticated user id set by AuthCheck.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDContextKey{}).(string)
	return userID
}

// ContextWithUserID is exported for handler tests.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

type AuthMiddlewareHandler struct {
	apiTokenHash string
	allowedPaths map[string]bool

	// bcrypt comparison is expensive, remember tokens that already passed
	mutex       sync.Mutex
	knownTokens map[string]bool
}

func NewAuthMiddlewareHandler(apiTokenHash string) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		apiTokenHash: apiTokenHash,
		allowedPaths: map[string]bool{
			"/health":  true,
			"/version": true,
		},
		knownTokens: make(map[string]bool),
	}
}

func (h *AuthMiddlewareHandler) tokenIsValid(token string) bool {
	if token == "" {
		return false
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.knownTokens[token] {
		return true
	}
	if pkg.CheckTokenHash(token, h.apiTokenHash) {
		h.knownTokens[token] = true
		return true
	}
	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get("X-LIFTLOG-TOKEN")
			if !h.tokenIsValid(authToken) {
				log.Tracef("[auth middleware] [failed] [%s] %s", r.Method, r.URL.Path)
				span.SetStatus(codes.Error, "unauthorized")
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			userID := r.Header.Get("X-LIFTLOG-USER")
			if userID == "" {
				span.SetStatus(codes.Error, "no-user")
				http.Error(w, "user id missing", http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(ContextWithUserID(ctx, userID)))
		})
	}
}
