package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authModel "aicommunity_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler purges expired blacklist entries and refresh
// tokens hourly.
func StartTokenCleanupScheduler(db *gorm.DB) {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		now := time.Now()

		res := db.Delete(&authModel.TokenBlacklistModel{}, "token_blacklist_expired_at < ?", now)
		if res.Error != nil {
			log.Printf("[WARN] blacklist cleanup: %v", res.Error)
		} else if res.RowsAffected > 0 {
			log.Printf("blacklist cleanup: removed %d expired tokens", res.RowsAffected)
		}

		res = db.Delete(&authModel.RefreshTokenModel{}, "refresh_token_expires_at < ?", now)
		if res.Error != nil {
			log.Printf("[WARN] refresh token cleanup: %v", res.Error)
		} else if res.RowsAffected > 0 {
			log.Printf("refresh token cleanup: removed %d expired tokens", res.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("[ERROR] could not schedule token cleanup: %v", err)
		return
	}

	c.Start()
}
