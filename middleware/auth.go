package middleware

import (
	"BookBridge/dao"
	"BookBridge/models"
	"BookBridge/pkg/context"
	"BookBridge/pkg/jwt"
	"BookBridge/pkg/log"
	"BookBridge/pkg/response"
	stdctx "context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserResolver looks up the account a token names.
type UserResolver interface {
	FindById(ctx stdctx.Context, id int64) (*models.User, error)
}

// Auth gates a route on a valid bearer token whose user still exists. On
// success the caller's context.Identity is stored for the handler.
func Auth(tokens *jwt.TokenService, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, response.AuthMissing("missing Authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			response.Abort(c, response.AuthInvalid("Authorization must be Bearer <token>"))
			return
		}

		userID, err := tokens.Verify(strings.TrimSpace(parts[1]))
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			response.Abort(c, response.AuthInvalid("token expired"))
			return
		case err != nil:
			log.L.Debug("token rejected", zap.Error(err))
			response.Abort(c, response.AuthInvalid("token malformed"))
			return
		}

		user, err := users.FindById(c.Request.Context(), userID)
		if dao.IsNotFound(err) {
			response.Abort(c, response.AuthInvalid("unknown user"))
			return
		}
		if err != nil {
			log.L.Error("resolve token user", zap.Int64("user_id", userID), zap.Error(err))
			response.Abort(c, response.ErrStorageFailure)
			return
		}

		context.SetIdentity(c, context.Identity{
			UserID:   user.ID,
			Email:    user.Email,
			Nickname: user.Nickname,
		})
		c.Next()
	}
}
