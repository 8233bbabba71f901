package models

import "time"

// Book is a catalog entry. Books are global and not owned by any user.
type Book struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Author      string    `gorm:"column:author;size:255;not null;index" json:"author"`
	Title       string    `gorm:"column:title;size:255;not null;index" json:"title"`
	Genre       string    `gorm:"column:genre;size:100" json:"genre"`
	Description string    `gorm:"column:description;size:1000" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Book) TableName() string {
	return "books"
}
