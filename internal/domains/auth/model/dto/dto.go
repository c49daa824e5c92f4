package dto

import (
	"luxeroom/infras/jwt"
	"luxeroom/internal/domains/staff/model"
)

// LoginRequest carries only the PIN; the staff member is resolved by
// matching it against the roster, exactly like the physical keypad works.
type LoginRequest struct {
	Pin string `json:"pin" validate:"required,min=4,max=8"`
}

type StaffResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *StaffResponse) FromModel(staff model.Staff) {
	r.ID = staff.ID
	r.Name = staff.Name
}

type LoginResponse struct {
	Staff        StaffResponse `json:"staff"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
}

func (r *LoginResponse) FromModel(staff model.Staff, pair *jwt.TokenPair) {
	r.Staff.FromModel(staff)
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}
