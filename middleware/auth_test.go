package middleware

import (
	"BookBridge/dao"
	"BookBridge/models"
	"BookBridge/pkg/context"
	"BookBridge/pkg/database/dbtest"
	"BookBridge/pkg/jwt"
	stdctx "context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type brokenResolver struct{}

func (brokenResolver) FindById(stdctx.Context, int64) (*models.User, error) {
	return nil, errors.New("connection refused")
}

func newAuthEngine(tokens *jwt.TokenService, users UserResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinZap())
	r.GET("/me", Auth(tokens, users), func(c *gin.Context) {
		id, _ := context.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.UserID, "nickname": id.Nickname})
	})
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	db := dbtest.New(t)
	users := dao.NewUsers(db)
	ctx := stdctx.Background()
	require.NoError(t, users.Create(ctx, &models.User{ID: 7, Email: "ann@example.com", Nickname: "ann", Password: "x"}))

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tokens := jwt.New([]byte("secret"), 7*24*time.Hour).WithClock(func() time.Time { return now })
	good, err := tokens.Issue(7)
	require.NoError(t, err)
	ghost, err := tokens.Issue(99)
	require.NoError(t, err)

	r := newAuthEngine(tokens, users)

	t.Run("valid token injects identity", func(t *testing.T) {
		w := do(r, "Bearer "+good)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), gjson.Get(w.Body.String(), "user_id").Int())
		assert.Equal(t, "ann", gjson.Get(w.Body.String(), "nickname").String())
		assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
	})

	t.Run("missing header is AuthMissing", func(t *testing.T) {
		w := do(r, "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "AuthMissing", gjson.Get(w.Body.String(), "kind").String())
	})

	t.Run("wrong scheme", func(t *testing.T) {
		for _, h := range []string{good, "Token " + good, "Bearer", "Bearer "} {
			w := do(r, h)
			assert.Equal(t, http.StatusUnauthorized, w.Code, h)
			assert.Equal(t, "AuthInvalid", gjson.Get(w.Body.String(), "kind").String())
		}
	})

	t.Run("tampered token", func(t *testing.T) {
		w := do(r, "Bearer "+good[:len(good)-3]+"abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "token malformed", gjson.Get(w.Body.String(), "msg").String())
	})

	t.Run("expired token", func(t *testing.T) {
		later := tokens.WithClock(func() time.Time { return now.Add(7*24*time.Hour + time.Second) })
		w := do(newAuthEngine(later, users), "Bearer "+good)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "token expired", gjson.Get(w.Body.String(), "msg").String())
	})

	t.Run("deleted user is AuthInvalid", func(t *testing.T) {
		w := do(r, "Bearer "+ghost)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "AuthInvalid", gjson.Get(w.Body.String(), "kind").String())
	})

	t.Run("store failure", func(t *testing.T) {
		w := do(newAuthEngine(tokens, brokenResolver{}), "Bearer "+good)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "StorageFailure", gjson.Get(w.Body.String(), "kind").String())
	})
}

func TestGinZap_KeepsCallerRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinZap())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}
