package service

import (
	"BookBridge/dao"
	"BookBridge/dao/cache"
	"BookBridge/models"
	"BookBridge/pkg/log"
	"BookBridge/pkg/response"
	"BookBridge/pkg/snowflake"
	"BookBridge/pkg/validate"
	"BookBridge/types"
	"context"
	"time"

	"go.uber.org/zap"
)

var _ IClubService = (*ClubService)(nil)

type IClubService interface {
	Create(ctx context.Context, creatorID int64, req *types.CreateClubRequest) (*models.Club, error)
	Get(ctx context.Context, clubID int64) (*types.ClubDetail, error)
	Search(ctx context.Context, name string) ([]*models.Club, error)
	Update(ctx context.Context, actor, clubID int64, req *types.UpdateClubRequest) (*models.Club, error)
	Delete(ctx context.Context, actor, clubID int64) error
}

type ClubService struct {
	Policy  *Policy
	Clubs   *dao.Club
	Members *dao.Membership
	Cache   *cache.Cache
}

// Create stores the club and makes its creator the first member.
func (s *ClubService) Create(ctx context.Context, creatorID int64, req *types.CreateClubRequest) (*models.Club, error) {
	now := time.Now()
	club := &models.Club{
		ID:          snowflake.GenID(),
		CreatorID:   creatorID,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Clubs.CreateWithCreator(ctx, club, now); err != nil {
		return nil, response.Storage("create club", err)
	}
	log.L.Info("club created", zap.Int64("club_id", club.ID), zap.Int64("creator_id", creatorID))
	return club, nil
}

// Get is cached.
func (s *ClubService) Get(ctx context.Context, clubID int64) (*types.ClubDetail, error) {
	return cache.Remember(ctx, s.Cache, cache.IDKey("clubs", clubID), func(ctx context.Context) (*types.ClubDetail, error) {
		club, err := s.find(ctx, clubID)
		if err != nil {
			return nil, err
		}
		count, err := s.Members.CountMembers(ctx, clubID)
		if err != nil {
			return nil, response.Storage("count members", err)
		}
		return &types.ClubDetail{
			ID:          club.ID,
			CreatorID:   club.CreatorID,
			Name:        club.Name,
			Description: club.Description,
			MemberCount: count,
			CreatedAt:   club.CreatedAt,
			UpdatedAt:   club.UpdatedAt,
		}, nil
	})
}

// Search finds clubs by name fragment; no match is NotFound. Cached.
func (s *ClubService) Search(ctx context.Context, name string) ([]*models.Club, error) {
	if name == "" {
		return nil, response.Invalid("name is required", validate.Result{{Field: "name", Rule: "required"}})
	}
	key := cache.Key("clubs.search", map[string]string{"name": name})
	return cache.Remember(ctx, s.Cache, key, func(ctx context.Context) ([]*models.Club, error) {
		clubs, err := s.Clubs.SearchByName(ctx, name)
		if err != nil {
			return nil, response.Storage("search clubs", err)
		}
		if len(clubs) == 0 {
			return nil, response.NotFound("no club matches " + name)
		}
		return clubs, nil
	})
}

// Update changes name and description, whichever are present. Creator only.
func (s *ClubService) Update(ctx context.Context, actor, clubID int64, req *types.UpdateClubRequest) (*models.Club, error) {
	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return nil, response.Invalid("no fields to update", validate.Result{{Field: "body", Rule: "required"}})
	}

	club, err := s.find(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err := s.Policy.CanMutateClub(actor, club); err != nil {
		return nil, err
	}

	if err := s.Clubs.Update(ctx, clubID, updates); err != nil {
		return nil, response.Storage("update club", err)
	}
	return s.find(ctx, clubID)
}

// Delete removes the club with its memberships and club books. Creator only.
func (s *ClubService) Delete(ctx context.Context, actor, clubID int64) error {
	club, err := s.find(ctx, clubID)
	if err != nil {
		return err
	}
	if err := s.Policy.CanMutateClub(actor, club); err != nil {
		return err
	}

	err = s.Clubs.Delete(ctx, clubID)
	if dao.IsNotFound(err) {
		return response.NotFound("club not found")
	}
	if err != nil {
		return response.Storage("delete club", err)
	}
	log.L.Info("club deleted", zap.Int64("club_id", clubID), zap.Int64("actor", actor))
	return nil
}

func (s *ClubService) find(ctx context.Context, clubID int64) (*models.Club, error) {
	club, err := s.Clubs.FindByID(ctx, clubID)
	if dao.IsNotFound(err) {
		return nil, response.NotFound("club not found")
	}
	if err != nil {
		return nil, response.Storage("find club", err)
	}
	return club, nil
}
