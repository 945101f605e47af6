package models

import "gorm.io/gorm"

// Note holds a member's free-text note on an episode, at most one per
// (user, episode) pair; updated in place.
type Note struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex:idx_note_user_episode;not null"`
	EpisodeID uint   `json:"episode_id" gorm:"uniqueIndex:idx_note_user_episode;not null"`
	Content   string `json:"content" gorm:"type:text"`
}
