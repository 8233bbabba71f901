package models

import "time"

// Membership records that a user belongs to a club. At most one row exists
// per (user, club).
type Membership struct {
	UserID   int64     `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	ClubID   int64     `gorm:"column:club_id;primaryKey;autoIncrement:false;index" json:"club_id"`
	JoinedAt time.Time `gorm:"column:joined_at;not null" json:"joined_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Club Club `gorm:"foreignKey:ClubID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Membership) TableName() string {
	return "memberships"
}
