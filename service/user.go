package service

import (
	"BookBridge/dao"
	"BookBridge/models"
	"BookBridge/pkg/encrypt"
	"BookBridge/pkg/jwt"
	"BookBridge/pkg/log"
	"BookBridge/pkg/response"
	"BookBridge/pkg/snowflake"
	"BookBridge/pkg/validate"
	"BookBridge/types"
	"context"
	"time"

	"go.uber.org/zap"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	Get(ctx context.Context, userID int64) (*models.User, error)
	Update(ctx context.Context, userID int64, req *types.UpdateUserRequest) (*types.UpdateUserResponse, error)
	Delete(ctx context.Context, userID int64) error
	Search(ctx context.Context, nickname string) ([]*types.UserItem, error)
}

type UserService struct {
	Users  *dao.Users
	Tokens *jwt.TokenService
}

// Register creates the account and returns a token for it straight away.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error) {
	if s.Users.IsEmailExist(ctx, req.Email) {
		return nil, response.Conflict("email already registered")
	}
	if s.Users.IsNicknameExist(ctx, req.Nickname) {
		return nil, response.Conflict("nickname already taken")
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, response.Storage("hash password", err)
	}

	now := time.Now()
	user := &models.User{
		ID:        snowflake.GenID(),
		Email:     req.Email,
		Nickname:  req.Nickname,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		if dao.IsDuplicate(err) {
			return nil, response.Conflict("email or nickname already registered")
		}
		return nil, response.Storage("create user", err)
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, response.Storage("issue token", err)
	}

	log.L.Info("user registered", zap.Int64("user_id", user.ID))
	return &types.RegisterResponse{ID: user.ID, Token: token}, nil
}

// Login accepts an email or a nickname. Unknown accounts and wrong
// passwords get the same answer.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	user, err := s.Users.FindByLogin(ctx, req.Email, req.Nickname)
	if err != nil && !dao.IsNotFound(err) {
		return nil, response.Storage("find user", err)
	}
	if user == nil || !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, response.AuthInvalid("email, nickname or password incorrect")
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, response.Storage("issue token", err)
	}
	return &types.LoginResponse{Token: token}, nil
}

func (s *UserService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.Users.FindById(ctx, userID)
	if dao.IsNotFound(err) {
		return nil, response.NotFound("user not found")
	}
	if err != nil {
		return nil, response.Storage("find user", err)
	}
	return user, nil
}

// Update writes only the fields present in req and reports their names.
func (s *UserService) Update(ctx context.Context, userID int64, req *types.UpdateUserRequest) (*types.UpdateUserResponse, error) {
	updates := make(map[string]any)
	updated := make([]string, 0, 5)
	set := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
			updated = append(updated, column)
		}
	}
	set("email", req.Email)
	set("nickname", req.Nickname)
	if req.Password != nil {
		hash, err := encrypt.HashPassword(*req.Password)
		if err != nil {
			return nil, response.Storage("hash password", err)
		}
		updates["password"] = hash
		updated = append(updated, "password")
	}
	set("first_name", req.FirstName)
	set("last_name", req.LastName)

	if len(updates) == 0 {
		return nil, response.Invalid("no fields to update", validate.Result{{Field: "body", Rule: "required"}})
	}

	if err := s.Users.Update(ctx, userID, updates); err != nil {
		if dao.IsDuplicate(err) {
			return nil, response.Conflict("email or nickname already registered")
		}
		return nil, response.Storage("update user", err)
	}
	return &types.UpdateUserResponse{Updated: updated}, nil
}

// Delete removes the account; memberships, club books, ratings and the
// clubs the user created go with it.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	n, err := s.Users.Delete(ctx, userID)
	if err != nil {
		return response.Storage("delete user", err)
	}
	if n == 0 {
		return response.NotFound("user not found")
	}
	log.L.Info("user deleted", zap.Int64("user_id", userID))
	return nil
}

func (s *UserService) Search(ctx context.Context, nickname string) ([]*types.UserItem, error) {
	if nickname == "" {
		return nil, response.Invalid("nickname is required", validate.Result{{Field: "nickname", Rule: "required"}})
	}
	users, err := s.Users.SearchByNickname(ctx, nickname)
	if err != nil {
		return nil, response.Storage("search users", err)
	}
	items := make([]*types.UserItem, 0, len(users))
	for _, u := range users {
		items = append(items, &types.UserItem{
			ID:        u.ID,
			Nickname:  u.Nickname,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		})
	}
	return items, nil
}
