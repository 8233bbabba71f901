package dao

import (
	"BookBridge/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Rating struct {
	Repo[models.Rating]
}

func NewRating(db *gorm.DB) *Rating {
	return &Rating{Repo: NewRepo[models.Rating](db)}
}

// Upsert stores the rating, replacing any earlier one by the same rater.
func (r *Rating) Upsert(ctx context.Context, tx *gorm.DB, rating *models.Rating) error {
	return tx.WithContext(ctx).
		Omit("Rater", "Book").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rater_id"}, {Name: "book_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"comment", "stars", "rated_at"}),
		}).
		Create(rating).Error
}

func (r *Rating) Find(ctx context.Context, raterID, bookID int64) (*models.Rating, error) {
	return r.Repo.FindByWhere(ctx, "rater_id = ? AND book_id = ?", raterID, bookID)
}

func (r *Rating) CountForBook(ctx context.Context, bookID int64) (int64, error) {
	return r.Repo.FindCount(ctx, "book_id = ?", bookID)
}
