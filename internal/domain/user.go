package domain

import (
	"time"
)

// Role values: "admin" (platform operator), "gestor" (contracting
// company owner), "user" (employee). Plan values: "free", "pro",
// "enterprise". Both are stored and surfaced in token claims but not
// enforced per-endpoint.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password  string    `gorm:"not null;column:password" json:"-"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Role      string    `gorm:"not null;default:user;column:role" json:"role"`
	Plan      string    `gorm:"not null;default:free;column:plan" json:"plan"`
	CompanyID *uint     `gorm:"column:company_id" json:"company_id"`
	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (User) TableName() string { return "users" }
