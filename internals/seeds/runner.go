package seeds

import (
	"gorm.io/gorm"

	seedContents "paisleygames_backend/internals/seeds/contents"
	seedUsers "paisleygames_backend/internals/seeds/users"
)

// RunAllSeeds loads the bootstrap data. Every seeder skips rows that
// already exist, so running it on every boot is safe.
func RunAllSeeds(db *gorm.DB) {
	seedUsers.SeedAdminsFromJSON(db, "internals/seeds/users/data_admins.json")
	seedContents.SeedEventsFromJSON(db, "internals/seeds/contents/data_events.json")
}
