package models

import "gorm.io/gorm"

// Favorite item types (closed tag)
const (
	FavoriteEpisode  = "episode"
	FavoriteResource = "resource"
)

type Favorite struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"uniqueIndex:idx_fav_user_item;not null"`
	ItemType string `json:"item_type" gorm:"uniqueIndex:idx_fav_user_item;not null"` // episode, resource
	ItemID   uint   `json:"item_id" gorm:"uniqueIndex:idx_fav_user_item;not null"`
}
