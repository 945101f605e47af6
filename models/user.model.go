package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Roles a member can hold. INTERVENANT is a guest instructor: community
// visibility of an admin, write access of a member.
const (
	RoleMember      = "MEMBER"
	RoleAdmin       = "ADMIN"
	RoleIntervenant = "INTERVENANT"
)

type User struct {
	gorm.Model
	Name            string         `json:"name" gorm:"default:''"`
	Email           string         `json:"email" gorm:"unique;not null"`
	Password        string         `json:"-" gorm:"not null"`
	Role            string         `json:"role" gorm:"default:'MEMBER'"` // MEMBER, ADMIN, INTERVENANT
	AvatarURL       string         `json:"avatar_url" gorm:"default:''"`
	City            string         `json:"city" gorm:"default:''"`
	Latitude        *float64       `json:"latitude"`
	Longitude       *float64       `json:"longitude"`
	CommunityScore  int            `json:"community_score" gorm:"default:0"`
	SocialLinks     datatypes.JSON `json:"social_links"` // {"instagram": "...", "youtube": "..."}
	IsEmailVerified bool           `json:"is_email_verified" gorm:"default:false"`
	LastLogin       *time.Time     `json:"last_login"`
	IsDeleted       bool           `json:"-" gorm:"default:false"`
}

// IsStaff reports whether the user may act with staff privileges
// (close tickets, post staff replies, manage announcements).
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin
}
