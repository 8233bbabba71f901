package models

import "time"

const (
	MinStars = 0
	MaxStars = 5
)

// Rating is keyed by (rater, book); rating again replaces the earlier row.
type Rating struct {
	RaterID int64     `gorm:"column:rater_id;primaryKey;autoIncrement:false" json:"rater_id"`
	BookID  int64     `gorm:"column:book_id;primaryKey;autoIncrement:false;index" json:"book_id"`
	Comment string    `gorm:"column:comment;size:1000" json:"comment"`
	Stars   int       `gorm:"column:stars;not null;check:chk_ratings_stars,stars >= 0 AND stars <= 5" json:"stars"`
	RatedAt time.Time `gorm:"column:rated_at;not null" json:"rated_at"`

	Rater User `gorm:"foreignKey:RaterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Book  Book `gorm:"foreignKey:BookID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Rating) TableName() string {
	return "ratings"
}
