package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a failure independently of transport.
type Kind string

const (
	KindAuthMissing      Kind = "AuthMissing"
	KindAuthInvalid      Kind = "AuthInvalid"
	KindForbidden        Kind = "Forbidden"
	KindNotFound         Kind = "NotFound"
	KindConflict         Kind = "Conflict"
	KindValidationFailed Kind = "ValidationFailed"
	KindStorageFailure   Kind = "StorageFailure"
)

// HTTPStatus maps a Kind onto its response status.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindAuthMissing, KindForbidden:
		return http.StatusForbidden
	case KindAuthInvalid:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type BizError struct {
	Code   int
	Kind   Kind
	Msg    string
	Fields any
	cause  error
}

func (e *BizError) Error() string {
	return e.Msg
}

func (e *BizError) Unwrap() error {
	return e.cause
}

// Is matches any BizError of the same Kind, so callers can write
// errors.Is(err, response.ErrConflict).
func (e *BizError) Is(target error) bool {
	var t *BizError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// WithCause keeps the underlying error for logging.
func (e *BizError) WithCause(err error) *BizError {
	cp := *e
	cp.cause = err
	return &cp
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Kind: kindOf(code),
		Msg:  msg,
	}
}

func newKind(kind Kind, msg string) *BizError {
	return &BizError{Code: kind.HTTPStatus(), Kind: kind, Msg: msg}
}

func kindOf(code int) Kind {
	switch code {
	case http.StatusUnauthorized:
		return KindAuthInvalid
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusBadRequest:
		return KindValidationFailed
	default:
		return KindStorageFailure
	}
}

var (
	ErrAuthMissing      = newKind(KindAuthMissing, "authentication required")
	ErrAuthInvalid      = newKind(KindAuthInvalid, "invalid token")
	ErrForbidden        = newKind(KindForbidden, "forbidden")
	ErrNotFound         = newKind(KindNotFound, "not found")
	ErrConflict         = newKind(KindConflict, "conflict")
	ErrValidationFailed = newKind(KindValidationFailed, "validation failed")
	ErrStorageFailure   = newKind(KindStorageFailure, "storage failure")
)

func AuthMissing(msg string) *BizError { return newKind(KindAuthMissing, msg) }
func AuthInvalid(msg string) *BizError { return newKind(KindAuthInvalid, msg) }
func Forbidden(msg string) *BizError   { return newKind(KindForbidden, msg) }
func NotFound(msg string) *BizError    { return newKind(KindNotFound, msg) }
func Conflict(msg string) *BizError    { return newKind(KindConflict, msg) }

// Invalid reports a validation failure; fields names what failed.
func Invalid(msg string, fields any) *BizError {
	e := newKind(KindValidationFailed, msg)
	e.Fields = fields
	return e
}

// Storage wraps an unexpected persistence error.
func Storage(msg string, err error) *BizError {
	return newKind(KindStorageFailure, msg).WithCause(err)
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				Fail(c, ErrStorageFailure)
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err

			var be *BizError
			if errors.As(err, &be) {
				Fail(c, be)
			} else {
				Fail(c, Storage("internal error", err))
			}
			c.Abort()
		}
	}
}

func Abort(c *gin.Context, err *BizError) {
	c.AbortWithStatusJSON(err.Code, failure(err))
}
