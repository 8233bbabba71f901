package dao

import (
	"BookBridge/models"
	"context"
	"strings"

	"gorm.io/gorm"
)

type Book struct {
	Repo[models.Book]
}

func NewBook(db *gorm.DB) *Book {
	return &Book{Repo: NewRepo[models.Book](db)}
}

func (b *Book) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	return b.Repo.FindById(ctx, id)
}

func (b *Book) IsExist(ctx context.Context, id int64) (bool, error) {
	return b.Repo.IsExist(ctx, "id = ?", id)
}

// BookFilter matches books whose title, author or genre contains the given
// fragment. Empty fragments are ignored; non-empty ones are OR-ed.
type BookFilter struct {
	Title  string
	Author string
	Genre  string
}

func (b *Book) Search(ctx context.Context, f BookFilter) ([]*models.Book, error) {
	items := make([]*models.Book, 0)

	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)
	for _, field := range []struct{ column, value string }{
		{"title", f.Title},
		{"author", f.Author},
		{"genre", f.Genre},
	} {
		if field.value == "" {
			continue
		}
		conds = append(conds, field.column+" LIKE ?")
		args = append(args, "%"+field.value+"%")
	}
	if len(conds) == 0 {
		return items, nil
	}

	err := b.Db.WithContext(ctx).
		Where(strings.Join(conds, " OR "), args...).
		Order("title asc, id asc").
		Find(&items).Error
	return items, err
}
