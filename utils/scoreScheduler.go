package utils

import (
	"log"

	"thumbpro/database"
	"thumbpro/models"

	"github.com/robfig/cron/v3"
)

// Score weights for community ranking
const (
	scorePerEpisode = 10
	scorePerNote    = 2
)

// InitializeScoreScheduler sets up the nightly community score recompute
func InitializeScoreScheduler() {
	log.Println("[SCORE-SCHEDULER] Initializing community score scheduler...")

	c := cron.New()

	// Run daily at 3:30 AM
	c.AddFunc("30 3 * * *", func() {
		log.Println("[SCORE-SCHEDULER] Running nightly community score recompute...")
		RecomputeCommunityScores()
	})

	c.Start()
	log.Println("[SCORE-SCHEDULER] Scheduler started - runs daily at 3:30 AM")
}

// RecomputeCommunityScores rebuilds every member's community score from
// their completed episodes and posted notes
func RecomputeCommunityScores() {
	db := database.Database.Db

	var users []models.User
	if err := db.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		log.Printf("[SCORE-SCHEDULER] Error fetching users: %v", err)
		return
	}

	updated := 0
	for _, user := range users {
		var completed int64
		db.Model(&models.Progress{}).Where("user_id = ?", user.ID).Count(&completed)

		var notes int64
		db.Model(&models.Note{}).Where("user_id = ?", user.ID).Count(&notes)

		score := int(completed)*scorePerEpisode + int(notes)*scorePerNote
		if score == user.CommunityScore {
			continue
		}

		if err := db.Model(&models.User{}).Where("id = ?", user.ID).
			Update("community_score", score).Error; err != nil {
			log.Printf("[SCORE-SCHEDULER] Error updating score for user %d: %v", user.ID, err)
			continue
		}
		updated++
	}

	log.Printf("[SCORE-SCHEDULER] Recompute done, %d of %d users updated", updated, len(users))
}
