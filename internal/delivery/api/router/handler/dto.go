package handler

import (
	"keycard/internal/domain/entity"
)

// CredentialsRequest is the body of signup and signin.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

// UpdateUserRequest is the body of PATCH /auth/:id. Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8,max=64"`
}

// FindUsersQuery binds GET /auth?email=.
type FindUsersQuery struct {
	Email string `query:"email" json:"email" validate:"required"`
}

// UserResponse is the public view of a user. It never carries the password record.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}
