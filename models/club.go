package models

import "time"

type Club struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	CreatorID   int64     `gorm:"column:creator_id;not null;index" json:"creator_id"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Description string    `gorm:"column:description;size:500" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null" json:"updated_at"`

	Creator User `gorm:"foreignKey:CreatorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Club) TableName() string {
	return "clubs"
}
