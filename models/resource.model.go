package models

import "gorm.io/gorm"

// Resource is a downloadable or linkable asset (template, preset, link)
type Resource struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category" gorm:"index;default:'general'"`
	FileType    string `json:"file_type" gorm:"default:'link'"` // link, pdf, zip, psd
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
