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

type Book struct {
	Tokens      *jwt.TokenService
	Users       *dao.Users
	BookService service.IBookService
}

func (b *Book) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(b.Tokens, b.Users)
	g := r.Group("/books")
	g.POST("", authorize, context.Wrap(b.Create))
	g.GET("/:id", authorize, context.Wrap(b.Get))
	g.POST("/search", context.Wrap(b.Search))
	g.POST("/rate", authorize, context.Wrap(b.Rate))
}

func (b *Book) Create(c *gin.Context) error {
	var req types.CreateBookRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	book, err := b.BookService.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Created(c, book)
	return nil
}

func (b *Book) Get(c *gin.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	book, err := b.BookService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, book)
	return nil
}

func (b *Book) Search(c *gin.Context) error {
	var req types.BookSearchRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	books, err := b.BookService.Search(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, books)
	return nil
}

// Rate 评分, 重复评分覆盖之前的记录
func (b *Book) Rate(c *gin.Context) error {
	id, err := context.MustIdentity(c)
	if err != nil {
		return err
	}
	var req types.RateBookRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	rating, err := b.BookService.Rate(c.Request.Context(), id.UserID, &req)
	if err != nil {
		return err
	}
	response.Created(c, rating)
	return nil
}
