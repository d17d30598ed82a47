package model

import "time"

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Phone          *string   `json:"phone"`
	Avatar         *string   `json:"avatar"`
	DrivingLicense *string   `json:"driving_license"`
	Address        *string   `json:"address"`
	City           *string   `json:"city"`
	Country        *string   `json:"country"`
	ZipCode        *string   `json:"zip_code"`
	CreatedAt      time.Time `json:"created_at"`
}

// SignupReq represents user signup payload
// swagger:model SignupReq
type SignupReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserReq carries the mutable profile fields. Absent fields are left
// untouched; password and id are not settable through this payload.
// swagger:model UpdateUserReq
type UpdateUserReq struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone"`
	Avatar         *string `json:"avatar"`
	DrivingLicense *string `json:"driving_license"`
	Address        *string `json:"address"`
	City           *string `json:"city"`
	Country        *string `json:"country"`
	ZipCode        *string `json:"zip_code"`
}
