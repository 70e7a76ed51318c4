package http

import (
	"net/http"
	"strings"

	"orders/internal/core/domain/model/auth"
	"orders/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the authenticated actor lives in the echo context.
const actorContextKey = "actor"

// BearerAuth verifies the Authorization header and stores the resulting
// actor in the request context. Requests without a valid bearer token get
// a 401 before reaching any handler.
func BearerAuth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			actor, err := verifier.VerifyToken(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid or expired token",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFromContext returns the actor stored by BearerAuth.
func actorFromContext(ctx echo.Context) (auth.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(auth.Actor)
	return actor, ok
}
