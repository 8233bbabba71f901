package service

import (
	"BookBridge/dao"
	"BookBridge/dao/cache"
	"BookBridge/models"
	"BookBridge/pkg/log"
	"BookBridge/pkg/response"
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IMembershipService = (*MembershipService)(nil)

type IMembershipService interface {
	Join(ctx context.Context, userID, clubID int64) error
	Leave(ctx context.Context, userID, clubID int64) error
	AddBook(ctx context.Context, userID, clubID, bookID int64) error
	RemoveBook(ctx context.Context, userID, clubID, bookID int64) error
	ListBooks(ctx context.Context, clubID int64) ([]*models.ClubBookItem, error)
	ListMembers(ctx context.Context, clubID int64) ([]*models.MemberItem, error)
}

// MembershipService owns the membership and club-book ledgers. Every write
// runs in its own transaction and a uniqueness violation surfaces as a
// Conflict.
type MembershipService struct {
	DB        *gorm.DB
	Policy    *Policy
	Clubs     *dao.Club
	Members   *dao.Membership
	ClubBooks *dao.ClubBook
	Cache     *cache.Cache
}

func (s *MembershipService) Join(ctx context.Context, userID, clubID int64) error {
	if err := s.Policy.CanJoin(ctx, userID, clubID); err != nil {
		return err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Members.Insert(ctx, tx, &models.Membership{
			UserID:   userID,
			ClubID:   clubID,
			JoinedAt: time.Now(),
		})
	})
	if dao.IsDuplicate(err) {
		return response.Conflict("already a member of this club")
	}
	if err != nil {
		return response.Storage("join club", err)
	}

	log.L.Info("club joined", zap.Int64("user_id", userID), zap.Int64("club_id", clubID))
	return nil
}

func (s *MembershipService) Leave(ctx context.Context, userID, clubID int64) error {
	if err := s.Policy.CanLeave(ctx, userID, clubID); err != nil {
		return err
	}

	var removed int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.Members.Remove(ctx, tx, userID, clubID)
		removed = n
		return err
	})
	if err != nil {
		return response.Storage("leave club", err)
	}
	// a concurrent leave got there first
	if removed == 0 {
		return response.NotFound("not a member of this club")
	}
	return nil
}

func (s *MembershipService) AddBook(ctx context.Context, userID, clubID, bookID int64) error {
	if err := s.Policy.CanManageClubBooks(ctx, userID, clubID, bookID); err != nil {
		return err
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.ClubBooks.Insert(ctx, tx, &models.ClubBook{
			UserID:  userID,
			ClubID:  clubID,
			BookID:  bookID,
			AddedAt: time.Now(),
		})
	})
	if dao.IsDuplicate(err) {
		return response.Conflict("book already added to this club")
	}
	if err != nil {
		return response.Storage("add club book", err)
	}
	return nil
}

func (s *MembershipService) RemoveBook(ctx context.Context, userID, clubID, bookID int64) error {
	if err := s.Policy.CanManageClubBooks(ctx, userID, clubID, bookID); err != nil {
		return err
	}

	var removed int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.ClubBooks.Remove(ctx, tx, userID, clubID, bookID)
		removed = n
		return err
	})
	if err != nil {
		return response.Storage("remove club book", err)
	}
	if removed == 0 {
		return response.NotFound("book not in this club")
	}
	return nil
}

// ListBooks returns the club's books with their average rating. Cached.
func (s *MembershipService) ListBooks(ctx context.Context, clubID int64) ([]*models.ClubBookItem, error) {
	return cache.Remember(ctx, s.Cache, cache.IDKey("clubs.books", clubID), func(ctx context.Context) ([]*models.ClubBookItem, error) {
		if err := s.requireClub(ctx, clubID); err != nil {
			return nil, err
		}
		items, err := s.ClubBooks.ListWithAverage(ctx, clubID)
		if err != nil {
			return nil, response.Storage("list club books", err)
		}
		return items, nil
	})
}

// ListMembers returns the club's members in join order. Cached.
func (s *MembershipService) ListMembers(ctx context.Context, clubID int64) ([]*models.MemberItem, error) {
	return cache.Remember(ctx, s.Cache, cache.IDKey("clubs.members", clubID), func(ctx context.Context) ([]*models.MemberItem, error) {
		if err := s.requireClub(ctx, clubID); err != nil {
			return nil, err
		}
		items, err := s.Members.GetMembers(ctx, clubID)
		if err != nil {
			return nil, response.Storage("list club members", err)
		}
		return items, nil
	})
}

func (s *MembershipService) requireClub(ctx context.Context, clubID int64) error {
	ok, err := s.Clubs.IsExist(ctx, clubID)
	if err != nil {
		return response.Storage("lookup club", err)
	}
	if !ok {
		return response.NotFound("club not found")
	}
	return nil
}
