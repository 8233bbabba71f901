package dao

import (
	"BookBridge/models"
	"context"

	"gorm.io/gorm"
)

type ClubBook struct {
	Repo[models.ClubBook]
}

func NewClubBook(db *gorm.DB) *ClubBook {
	return &ClubBook{Repo: NewRepo[models.ClubBook](db)}
}

func (c *ClubBook) Insert(ctx context.Context, tx *gorm.DB, item *models.ClubBook) error {
	return tx.WithContext(ctx).Omit("User", "Club", "Book").Create(item).Error
}

func (c *ClubBook) Remove(ctx context.Context, tx *gorm.DB, uid, cid, bid int64) (int64, error) {
	res := tx.WithContext(ctx).
		Where("user_id = ? AND club_id = ? AND book_id = ?", uid, cid, bid).
		Delete(&models.ClubBook{})
	return res.RowsAffected, res.Error
}

// ListWithAverage returns the club's books with the mean star count over
// all ratings of each book. Unrated books have a nil average.
func (c *ClubBook) ListWithAverage(ctx context.Context, clubID int64) ([]*models.ClubBookItem, error) {
	items := make([]*models.ClubBookItem, 0)

	err := c.Db.WithContext(ctx).
		Table("books").
		Select("books.id, books.title, books.author, AVG(ratings.stars) AS average_rating").
		Joins("JOIN club_books ON club_books.book_id = books.id").
		Joins("LEFT JOIN ratings ON ratings.book_id = books.id").
		Where("club_books.club_id = ?", clubID).
		Group("books.id, books.title, books.author").
		Order("books.title asc, books.id asc").
		Scan(&items).Error

	return items, err
}
