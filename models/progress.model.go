package models

import (
	"time"

	"gorm.io/gorm"
)

// Progress marks an episode as completed by a user. Existence = completed.
// The composite unique index keeps mark-complete idempotent under replay.
type Progress struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"uniqueIndex:idx_progress_user_episode;not null"`
	EpisodeID   uint      `json:"episode_id" gorm:"uniqueIndex:idx_progress_user_episode;not null"`
	CompletedAt time.Time `json:"completed_at"`
}
