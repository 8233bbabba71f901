package dao

import (
	"BookBridge/models"
	"context"

	"gorm.io/gorm"
)

type Membership struct {
	Repo[models.Membership]
}

func NewMembership(db *gorm.DB) *Membership {
	return &Membership{Repo: NewRepo[models.Membership](db)}
}

// IsMember 检测是否属于俱乐部成员
func (m *Membership) IsMember(ctx context.Context, uid, cid int64) (bool, error) {
	return m.Repo.IsExist(ctx, "user_id = ? AND club_id = ?", uid, cid)
}

// Insert adds the row inside tx. A second insert for the same pair fails
// with a duplicate key error.
func (m *Membership) Insert(ctx context.Context, tx *gorm.DB, member *models.Membership) error {
	return tx.WithContext(ctx).Omit("User", "Club").Create(member).Error
}

// Remove deletes the row inside tx and reports how many rows went away.
func (m *Membership) Remove(ctx context.Context, tx *gorm.DB, uid, cid int64) (int64, error) {
	res := tx.WithContext(ctx).Where("user_id = ? AND club_id = ?", uid, cid).Delete(&models.Membership{})
	return res.RowsAffected, res.Error
}

// GetMembers 获取俱乐部成员列表
func (m *Membership) GetMembers(ctx context.Context, clubID int64) ([]*models.MemberItem, error) {
	items := make([]*models.MemberItem, 0)
	err := m.Db.WithContext(ctx).
		Table("memberships").
		Select("users.id, users.nickname, users.first_name, users.last_name").
		Joins("JOIN users ON users.id = memberships.user_id").
		Where("memberships.club_id = ?", clubID).
		Order("memberships.joined_at asc, users.id asc").
		Scan(&items).Error
	return items, err
}

func (m *Membership) CountMembers(ctx context.Context, clubID int64) (int64, error) {
	return m.Repo.FindCount(ctx, "club_id = ?", clubID)
}
