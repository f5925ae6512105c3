package database

import (
	"log"
	"os"

	opportunityModel "aicommunity_backend/internals/features/content/opportunities/model"
	postModel "aicommunity_backend/internals/features/content/posts/model"
	projectModel "aicommunity_backend/internals/features/content/projects/model"
	sponsorModel "aicommunity_backend/internals/features/content/sponsors/model"
	eventModel "aicommunity_backend/internals/features/events/events/model"
	registrationModel "aicommunity_backend/internals/features/events/registrations/model"
	authModel "aicommunity_backend/internals/features/users/auth/model"
	userModel "aicommunity_backend/internals/features/users/user/model"
)

// RunMigrations applies the schema via gorm when DB_AUTO_MIGRATE=true.
// Production deployments manage the schema out of band and leave this
// off.
func RunMigrations() {
	if os.Getenv("DB_AUTO_MIGRATE") != "true" {
		return
	}
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&authModel.RefreshTokenModel{},
		&eventModel.EventModel{},
		&registrationModel.RegistrationModel{},
		&postModel.PostModel{},
		&projectModel.ProjectModel{},
		&sponsorModel.SponsorModel{},
		&opportunityModel.OpportunityModel{},
	)
	if err != nil {
		log.Fatalf("[DB] migration failed: %v", err)
	}
	log.Println("[DB] schema migrated")
}
