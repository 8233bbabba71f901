package models

import "time"

// ClubBook records that a member added a book to a club.
type ClubBook struct {
	UserID  int64     `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	ClubID  int64     `gorm:"column:club_id;primaryKey;autoIncrement:false;index" json:"club_id"`
	BookID  int64     `gorm:"column:book_id;primaryKey;autoIncrement:false" json:"book_id"`
	AddedAt time.Time `gorm:"column:added_at;not null" json:"added_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Club Club `gorm:"foreignKey:ClubID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Book Book `gorm:"foreignKey:BookID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ClubBook) TableName() string {
	return "club_books"
}

// ClubBookItem is one row of a club's book listing. AverageRating is nil
// when the book has no ratings.
type ClubBookItem struct {
	ID            int64    `gorm:"column:id" json:"id"`
	Title         string   `gorm:"column:title" json:"title"`
	Author        string   `gorm:"column:author" json:"author"`
	AverageRating *float64 `gorm:"column:average_rating" json:"average_rating"`
}
