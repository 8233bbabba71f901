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

// Membership serves club members and the books they add.
type Membership struct {
	Tokens            *jwt.TokenService
	Users             *dao.Users
	MembershipService service.IMembershipService
}

func (h *Membership) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Tokens, h.Users)
	g := r.Group("/clubs")
	g.POST("/:id/members", authorize, context.Wrap(h.Join))
	g.GET("/:id/members", context.Wrap(h.Members))
	g.DELETE("/:id/members", authorize, context.Wrap(h.Leave))
	g.POST("/books", authorize, context.Wrap(h.AddBook))
	g.DELETE("/books", authorize, context.Wrap(h.RemoveBook))
	g.GET("/:id/books", context.Wrap(h.Books))
}

func (h *Membership) Join(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	clubID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.MembershipService.Join(c.Request.Context(), id.UserID, clubID); err != nil {
		return err
	}
	response.Created(c, gin.H{"club_id": clubID, "user_id": id.UserID})
	return nil
}

func (h *Membership) Leave(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	clubID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.MembershipService.Leave(c.Request.Context(), id.UserID, clubID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Membership) Members(c *gin.Context) error {
	clubID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	members, err := h.MembershipService.ListMembers(c.Request.Context(), clubID)
	if err != nil {
		return err
	}
	response.Success(c, members)
	return nil
}

func (h *Membership) AddBook(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	var req types.ClubBookRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := h.MembershipService.AddBook(c.Request.Context(), id.UserID, req.ClubID, req.BookID); err != nil {
		return err
	}
	response.Created(c, req)
	return nil
}

func (h *Membership) RemoveBook(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	var req types.ClubBookRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := h.MembershipService.RemoveBook(c.Request.Context(), id.UserID, req.ClubID, req.BookID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Membership) Books(c *gin.Context) error {
	clubID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	books, err := h.MembershipService.ListBooks(c.Request.Context(), clubID)
	if err != nil {
		return err
	}
	response.Success(c, books)
	return nil
}
