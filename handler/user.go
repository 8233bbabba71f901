package handler

import (
	"BookBridge/dao"
	"BookBridge/middleware"
	"BookBridge/pkg/context"
	"BookBridge/pkg/jwt"
	"BookBridge/pkg/response"
	"BookBridge/service"
	"BookBridge/types"

	"github.com/gin-gonic/gin"
)

type User struct {
	Tokens      *jwt.TokenService
	Users       *dao.Users
	UserService service.IUserService
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(u.Tokens, u.Users)
	g := r.Group("/users")
	g.POST("", context.Wrap(u.Register))
	g.POST("/login", context.Wrap(u.Login))
	g.GET("", authorize, context.Wrap(u.Profile))
	g.PUT("", authorize, context.Wrap(u.Update))
	g.DELETE("", authorize, context.Wrap(u.Delete))
	g.GET("/search", authorize, context.Wrap(u.Search))
}

func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	resp, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, resp)
	return nil
}

func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	resp, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (u *User) Profile(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	user, err := u.UserService.Get(c.Request.Context(), id.UserID)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (u *User) Update(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	var req types.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	resp, err := u.UserService.Update(c.Request.Context(), id.UserID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (u *User) Delete(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	if err := u.UserService.Delete(c.Request.Context(), id.UserID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (u *User) Search(c *gin.Context) error {
	users, err := u.UserService.Search(c.Request.Context(), c.Query("nickname"))
	if err != nil {
		return err
	}
	response.Success(c, users)
	return nil
}
