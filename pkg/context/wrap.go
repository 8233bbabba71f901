package context

import (
	"BookBridge/pkg/log"
	"BookBridge/pkg/response"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const CtxIdentity = "identity"

// Identity is the authenticated caller, resolved by the auth middleware.
type Identity struct {
	UserID   int64
	Email    string
	Nickname string
}

type HandlerFunc func(*gin.Context) error

// Wrap adapts an error-returning handler. A *response.BizError is rendered
// with its own status; anything else becomes a 500 StorageFailure.
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}
		// 如果已经写过响应，直接返回
		if c.Writer.Written() {
			return
		}

		var be *response.BizError
		if !errors.As(err, &be) {
			be = response.Storage("internal error", err)
		}
		if be.Kind == response.KindStorageFailure {
			log.L.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.Error(be),
				zap.NamedError("cause", errors.Unwrap(be)),
			)
		}
		response.Fail(c, be)
	}
}

func SetIdentity(c *gin.Context, id Identity) {
	c.Set(CtxIdentity, id)
}

// GetIdentity returns the caller; ok is false on routes without auth.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// MustIdentity is GetIdentity for handlers mounted behind the auth middleware.
func MustIdentity(c *gin.Context) (Identity, error) {
	id, ok := GetIdentity(c)
	if !ok {
		return Identity{}, response.ErrAuthMissing
	}
	return id, nil
}
