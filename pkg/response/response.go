package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Kind   Kind   `json:"kind,omitempty"`
	Fields any    `json:"fields,omitempty"`
	Data   any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: "ok", Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Code: 0, Msg: "ok", Data: data})
}

func Fail(c *gin.Context, err *BizError) {
	c.JSON(err.Code, failure(err))
}

func failure(err *BizError) Response {
	return Response{
		Code:   err.Code,
		Msg:    err.Msg,
		Kind:   err.Kind,
		Fields: err.Fields,
	}
}
