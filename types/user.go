package types

// 注册请求
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Nickname  string `json:"nickname" binding:"required,min=2,max=100"`
	Password  string `json:"password" binding:"required,password"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
}

type RegisterResponse struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}

// LoginRequest accepts either an email or a nickname.
type LoginRequest struct {
	Email    string `json:"email" binding:"required_without=Nickname,omitempty,email"`
	Nickname string `json:"nickname" binding:"required_without=Email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// UpdateUserRequest only touches the fields present in the body.
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Nickname  *string `json:"nickname" binding:"omitempty,min=2,max=100"`
	Password  *string `json:"password" binding:"omitempty,password"`
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
}

type UpdateUserResponse struct {
	Updated []string `json:"updated"`
}

type UserItem struct {
	ID        int64  `json:"id"`
	Nickname  string `json:"nickname"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
