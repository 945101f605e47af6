package models

import "gorm.io/gorm"

// Announcement is a staff-authored broadcast message
type Announcement struct {
	gorm.Model
	AuthorID    uint   `json:"author_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Content     string `json:"content" gorm:"type:text"`
	IsImportant bool   `json:"is_important" gorm:"default:false"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
