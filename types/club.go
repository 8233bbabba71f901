package types

import "time"

type CreateClubRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

type UpdateClubRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

type ClubDetail struct {
	ID          int64     `json:"id"`
	CreatorID   int64     `json:"creator_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MemberCount int64     `json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClubBookRequest identifies a book within a club.
type ClubBookRequest struct {
	ClubID int64 `json:"club_id" binding:"required"`
	BookID int64 `json:"book_id" binding:"required"`
}
