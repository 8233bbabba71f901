package handler

import (
	"BookBridge/pkg/response"
	"BookBridge/pkg/validate"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes and validates the body, reporting each rejected field.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return response.Invalid("invalid request", validate.FromBinding(err))
	}
	return nil
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.Invalid("invalid "+name, validate.Result{{Field: name, Rule: "id"}})
	}
	return id, nil
}
