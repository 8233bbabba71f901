package dao

import (
	"BookBridge/models"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Club struct {
	Repo[models.Club]
}

func NewClub(db *gorm.DB) *Club {
	return &Club{Repo: NewRepo[models.Club](db)}
}

func (c *Club) FindByID(ctx context.Context, id int64) (*models.Club, error) {
	return c.Repo.FindById(ctx, id)
}

func (c *Club) IsExist(ctx context.Context, id int64) (bool, error) {
	return c.Repo.IsExist(ctx, "id = ?", id)
}

// SearchByName returns clubs whose name contains fragment.
func (c *Club) SearchByName(ctx context.Context, fragment string) ([]*models.Club, error) {
	items := make([]*models.Club, 0)
	err := c.Db.WithContext(ctx).
		Where("name LIKE ?", "%"+fragment+"%").
		Order("name asc").
		Find(&items).Error
	return items, err
}

// CreateWithCreator inserts the club together with its creator's membership.
func (c *Club) CreateWithCreator(ctx context.Context, club *models.Club, joinedAt time.Time) error {
	return c.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Creator").Create(club).Error; err != nil {
			return fmt.Errorf("create club: %w", err)
		}
		member := &models.Membership{UserID: club.CreatorID, ClubID: club.ID, JoinedAt: joinedAt}
		if err := tx.Omit("User", "Club").Create(member).Error; err != nil {
			return fmt.Errorf("create creator membership: %w", err)
		}
		return nil
	})
}

func (c *Club) Update(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return c.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Club{}).Where("id = ?", id).Updates(updates).Error
	})
}

// Delete removes the club; memberships and club books cascade. Dependent rows
// are deleted explicitly as well for databases without enforced foreign keys.
func (c *Club) Delete(ctx context.Context, id int64) error {
	return c.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", id).Delete(&models.ClubBook{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Club{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
