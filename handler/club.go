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

type Club struct {
	Tokens      *jwt.TokenService
	Users       *dao.Users
	ClubService service.IClubService
}

func (h *Club) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Tokens, h.Users)
	g := r.Group("/clubs")
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("/search", context.Wrap(h.Search))
	g.GET("/:id", context.Wrap(h.Get))
	g.PUT("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
}

// Create 创建俱乐部, 创建者自动成为成员
func (h *Club) Create(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	var req types.CreateClubRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	club, err := h.ClubService.Create(c.Request.Context(), id.UserID, &req)
	if err != nil {
		return err
	}
	response.Created(c, club)
	return nil
}

func (h *Club) Get(c *gin.Context) error {
	clubID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	club, err := h.ClubService.Get(c.Request.Context(), clubID)
	if err != nil {
		return err
	}
	response.Success(c, club)
	return nil
}

func (h *Club) Search(c *gin.Context) error {
	clubs, err := h.ClubService.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		return err
	}
	response.Success(c, clubs)
	return nil
}

func (h *Club) Update(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	clubID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateClubRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	club, err := h.ClubService.Update(c.Request.Context(), id.UserID, clubID, &req)
	if err != nil {
		return err
	}
	response.Success(c, club)
	return nil
}

func (h *Club) Delete(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	clubID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.ClubService.Delete(c.Request.Context(), id.UserID, clubID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
