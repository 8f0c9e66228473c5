package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// User owns acts, comments and likes. The password column only ever holds a
// bcrypt hash.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Pseudo    string         `gorm:"size:255;not null;uniqueIndex" json:"pseudo"`
	Email     string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Roles     datatypes.JSON `gorm:"not null;default:'[]'" json:"-"`
	ImgURL    *string        `gorm:"size:255" json:"img_url,omitempty"`
	Birthday  *time.Time     `json:"birthday,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Acts     []Act     `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"-"`
	Likes    []Like    `gorm:"foreignKey:UserID" json:"-"`
}

// RoleList decodes the stored role set. ROLE_USER is always present even when
// the stored JSON omits it.
func (u *User) RoleList() []string {
	var roles []string
	_ = json.Unmarshal(u.Roles, &roles)

	seen := make(map[string]bool, len(roles)+1)
	out := make([]string, 0, len(roles)+1)
	for _, r := range append(roles, RoleUser) {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// SetRoleList replaces the stored role set.
func (u *User) SetRoleList(roles []string) error {
	b, err := json.Marshal(roles)
	if err != nil {
		return err
	}
	u.Roles = datatypes.JSON(b)
	return nil
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.RoleList() {
		if r == role {
			return true
		}
	}
	return false
}
