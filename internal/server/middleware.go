package server

import (
	"time"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
	"auction-platform/services/helpers"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// TokenResolver validates a session token and returns the account it names.
type TokenResolver interface {
	ResolveToken(token string) (model.User, error)
}

// AuthMiddleware resolves the session cookie into the current user.
func AuthMiddleware(resolver TokenResolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			helpers.RespondError(c, "AuthMiddleware", auctionerrors.ErrInvalidToken)
			c.Abort()
			return
		}
		current, err := resolver.ResolveToken(token)
		if err != nil {
			helpers.RespondError(c, "AuthMiddleware", err)
			c.Abort()
			return
		}
		c.Set(helpers.CurrentUserKey, current)
		c.Next()
	}
}

// RequireRole rejects requests whose authenticated user has none of the
// given roles. Must run after AuthMiddleware.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := helpers.CurrentUser(c)
		if !ok {
			helpers.RespondError(c, "RequireRole", auctionerrors.ErrInvalidToken)
			c.Abort()
			return
		}
		for _, role := range roles {
			if current.Role == role {
				c.Next()
				return
			}
		}
		helpers.RespondError(c, "RequireRole", auctionerrors.ErrForbidden)
		c.Abort()
	}
}

// UserLoader reloads an account by id.
type UserLoader interface {
	Profile(id string) (model.User, error)
}

// CommissionGateMiddleware rejects commission-gated actions while the
// caller owes commission. The balance is re-read so a settlement that
// landed after login is honored.
func CommissionGateMiddleware(loader UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := helpers.CurrentUser(c)
		if !ok {
			helpers.RespondError(c, "CommissionGateMiddleware", auctionerrors.ErrInvalidToken)
			c.Abort()
			return
		}
		fresh, err := loader.Profile(current.UserID)
		if err != nil {
			helpers.RespondError(c, "CommissionGateMiddleware", err)
			c.Abort()
			return
		}
		if fresh.UnpaidCommission > 0 {
			helpers.RespondError(c, "CommissionGateMiddleware", auctionerrors.ErrUnpaidCommission)
			c.Abort()
			return
		}
		c.Set(helpers.CurrentUserKey, fresh)
		c.Next()
	}
}
