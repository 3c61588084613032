package dto

import "bookstore/internal/api/service"

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN USER"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=ADMIN USER"`
	IsActive *bool   `json:"isActive"`
}

func (r *UpdateUserRequest) ToPatch() *service.UserPatch {
	return &service.UserPatch{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
		IsActive: r.IsActive,
	}
}
