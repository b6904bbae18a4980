package handlers

import (
	"time"

	"github.com/omaroid/user-service/internal/domain/entity"
)

type createUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
}

type updateUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// UserResponse is the wire representation of a user. Timestamps are
// RFC 3339 strings in UTC.
type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PaginationMeta describes the navigation state of a paginated listing.
type PaginationMeta struct {
	Page        int  `json:"page"`
	Size        int  `json:"size"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// UsersPageResponse combines one page of users with pagination metadata.
type UsersPageResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationMeta `json:"pagination"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID.Int64(),
		Email:     u.Email.String(),
		Name:      u.Name,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toUsersPage(users []*entity.User, page, size, total int) UsersPageResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return UsersPageResponse{
		Users:      out,
		Pagination: newPaginationMeta(page, size, total),
	}
}

// emptyUsersPage is the well-formed shape returned when a page holds no
// rows; pagination metadata is never omitted.
func emptyUsersPage(page, size int) UsersPageResponse {
	return UsersPageResponse{
		Users:      []UserResponse{},
		Pagination: newPaginationMeta(page, size, 0),
	}
}

func newPaginationMeta(page, size, total int) PaginationMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}
	return PaginationMeta{
		Page:        page,
		Size:        size,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages-1,
		HasPrevious: page > 0,
	}
}
