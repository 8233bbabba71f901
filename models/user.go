package models

import "time"

type User struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Email     string    `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Nickname  string    `gorm:"column:nickname;size:100;not null;uniqueIndex" json:"nickname"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"` // bcrypt hash
	FirstName string    `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;size:100;not null" json:"last_name"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// MemberItem is one row of a club's member listing.
type MemberItem struct {
	ID        int64  `gorm:"column:id" json:"id"`
	Nickname  string `gorm:"column:nickname" json:"nickname"`
	FirstName string `gorm:"column:first_name" json:"first_name"`
	LastName  string `gorm:"column:last_name" json:"last_name"`
}
