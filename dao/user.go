package dao

import (
	"BookBridge/models"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByLogin looks a user up by email or nickname; empty values never match.
func (u *Users) FindByLogin(ctx context.Context, email, nickname string) (*models.User, error) {
	tx := u.Db.WithContext(ctx)
	switch {
	case email != "" && nickname != "":
		tx = tx.Where("email = ? OR nickname = ?", email, nickname)
	case email != "":
		tx = tx.Where("email = ?", email)
	case nickname != "":
		tx = tx.Where("nickname = ?", nickname)
	default:
		return nil, gorm.ErrRecordNotFound
	}

	var user models.User
	if err := tx.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IsEmailExist 判断邮箱是否存在
func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ?", email)
	return exist
}

// IsNicknameExist 判断昵称是否存在
func (u *Users) IsNicknameExist(ctx context.Context, nickname string) bool {
	exist, _ := u.Repo.IsExist(ctx, "nickname = ?", nickname)
	return exist
}

// SearchByNickname returns users whose nickname contains fragment.
func (u *Users) SearchByNickname(ctx context.Context, fragment string) ([]*models.User, error) {
	return u.Repo.FindAll(ctx, "nickname LIKE ?", "%"+fragment+"%")
}

func (u *Users) Update(ctx context.Context, userID int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	err := u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error

	if err != nil {
		return fmt.Errorf("dao.User.Update error: %w", err)
	}

	return nil
}

func (u *Users) Delete(ctx context.Context, userID int64) (int64, error) {
	res := u.Db.WithContext(ctx).Delete(&models.User{}, userID)
	return res.RowsAffected, res.Error
}
