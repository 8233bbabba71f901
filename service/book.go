package service

import (
	"BookBridge/dao"
	"BookBridge/dao/cache"
	"BookBridge/models"
	"BookBridge/pkg/response"
	"BookBridge/pkg/snowflake"
	"BookBridge/pkg/validate"
	"BookBridge/types"
	"context"
	"time"

	"gorm.io/gorm"
)

var _ IBookService = (*BookService)(nil)

type IBookService interface {
	Create(ctx context.Context, req *types.CreateBookRequest) (*models.Book, error)
	Get(ctx context.Context, bookID int64) (*models.Book, error)
	Search(ctx context.Context, req *types.BookSearchRequest) ([]*models.Book, error)
	Rate(ctx context.Context, raterID int64, req *types.RateBookRequest) (*models.Rating, error)
}

type BookService struct {
	DB      *gorm.DB
	Policy  *Policy
	Books   *dao.Book
	Ratings *dao.Rating
	Cache   *cache.Cache
}

func (s *BookService) Create(ctx context.Context, req *types.CreateBookRequest) (*models.Book, error) {
	book := &models.Book{
		ID:          snowflake.GenID(),
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	if err := s.Books.Create(ctx, book); err != nil {
		return nil, response.Storage("create book", err)
	}
	return book, nil
}

// Get is cached.
func (s *BookService) Get(ctx context.Context, bookID int64) (*models.Book, error) {
	return cache.Remember(ctx, s.Cache, cache.IDKey("books", bookID), func(ctx context.Context) (*models.Book, error) {
		book, err := s.Books.FindByID(ctx, bookID)
		if dao.IsNotFound(err) {
			return nil, response.NotFound("book not found")
		}
		if err != nil {
			return nil, response.Storage("find book", err)
		}
		return book, nil
	})
}

// Search ORs the non-empty filters. Cached per filter set.
func (s *BookService) Search(ctx context.Context, req *types.BookSearchRequest) ([]*models.Book, error) {
	if req.Empty() {
		return nil, response.Invalid("at least one of title, author or genre is required", validate.Result{
			{Field: "title", Rule: "required_without_all"},
			{Field: "author", Rule: "required_without_all"},
			{Field: "genre", Rule: "required_without_all"},
		})
	}

	key := cache.Key("books.search", map[string]string{
		"title":  req.Title,
		"author": req.Author,
		"genre":  req.Genre,
	})
	return cache.Remember(ctx, s.Cache, key, func(ctx context.Context) ([]*models.Book, error) {
		books, err := s.Books.Search(ctx, dao.BookFilter{Title: req.Title, Author: req.Author, Genre: req.Genre})
		if err != nil {
			return nil, response.Storage("search books", err)
		}
		return books, nil
	})
}

// Rate stores the caller's rating, replacing an earlier one for the book.
func (s *BookService) Rate(ctx context.Context, raterID int64, req *types.RateBookRequest) (*models.Rating, error) {
	if req.Stars == nil || *req.Stars < models.MinStars || *req.Stars > models.MaxStars {
		return nil, response.Invalid("stars must be between 0 and 5", validate.Result{{Field: "stars", Rule: "range"}})
	}
	if err := s.Policy.CanRate(ctx, req.BookID); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		RaterID: raterID,
		BookID:  req.BookID,
		Comment: req.Comment,
		Stars:   *req.Stars,
		RatedAt: time.Now(),
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Ratings.Upsert(ctx, tx, rating)
	})
	if err != nil {
		return nil, response.Storage("rate book", err)
	}
	return rating, nil
}
