package dto

import (
	"time"

	"github.com/goodacts/goodacts-backend/internal/models"
)

type RegisterRequest struct {
	Pseudo   string `json:"pseudo"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID     uint   `json:"id"`
	Pseudo string `json:"pseudo"`
	Email  string `json:"email"`
}

// PublicUser is the public-read shape of a user: no email, no birthday.
type PublicUser struct {
	ID        uint      `json:"id"`
	Pseudo    string    `json:"pseudo"`
	ImgURL    *string   `json:"img_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminUser is the full back-office shape, roles included.
type AdminUser struct {
	ID        uint       `json:"id"`
	Pseudo    string     `json:"pseudo"`
	Email     string     `json:"email"`
	Roles     []string   `json:"roles"`
	ImgURL    *string    `json:"img_url,omitempty"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ShapePublicUser(u *models.User) PublicUser {
	return PublicUser{
		ID:        u.ID,
		Pseudo:    u.Pseudo,
		ImgURL:    u.ImgURL,
		CreatedAt: u.CreatedAt,
	}
}

func ShapeAdminUser(u *models.User) AdminUser {
	return AdminUser{
		ID:        u.ID,
		Pseudo:    u.Pseudo,
		Email:     u.Email,
		Roles:     u.RoleList(),
		ImgURL:    u.ImgURL,
		Birthday:  u.Birthday,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
