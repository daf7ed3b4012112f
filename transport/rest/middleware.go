package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/apperror"
)

type contextKey string

const playerIDContextKey contextKey = "playerID"

type authenticator interface {
	Authenticate(token string) (string, error)
}

// authenticate resolves the bearer token to a player id and stores it in the request context.
func authenticate(log *slog.Logger, auth authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				writeError(w, log, fmt.Errorf("%w: missing bearer token", apperror.ErrInvalidToken))
				return
			}

			playerID, err := auth.Authenticate(token)
			if err != nil {
				writeError(w, log, err)
				return
			}

			ctx := context.WithValue(r.Context(), playerIDContextKey, playerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func playerIDFromContext(ctx context.Context) string {
	playerID, _ := ctx.Value(playerIDContextKey).(string)
	return playerID
}
