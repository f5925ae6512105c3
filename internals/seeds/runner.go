package seeds

import (
	"os"

	eventSeeds "aicommunity_backend/internals/seeds/events"
	sponsorSeeds "aicommunity_backend/internals/seeds/sponsors"
	userSeeds "aicommunity_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds bootstraps the admin account and, when DB_SEED_DEMO=true,
// loads the demo fixtures.
func RunAllSeeds(db *gorm.DB) {
	userSeeds.SeedAdminFromEnv(db)

	if os.Getenv("DB_SEED_DEMO") == "true" {
		eventSeeds.SeedEventsFromJSON(db, "internals/seeds/events/data_events.json")
		sponsorSeeds.SeedSponsorsFromJSON(db, "internals/seeds/sponsors/data_sponsors.json")
	}
}
