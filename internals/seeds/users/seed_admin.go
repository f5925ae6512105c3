package users

import (
	"log"
	"os"

	"aicommunity_backend/internals/constants"
	"aicommunity_backend/internals/features/users/user/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminFromEnv bootstraps the first admin account from
// ADMIN_EMAIL/ADMIN_PASSWORD. Skipped when the account already exists
// or the env vars are unset.
func SeedAdminFromEnv(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing model.UserModel
	if err := db.Where("user_email = ?", email).First(&existing).Error; err == nil {
		log.Printf("[SEED] admin '%s' already exists, skipped", email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] failed to hash admin password: %v", err)
		return
	}

	admin := model.UserModel{
		UserName:     "Admin",
		UserEmail:    email,
		UserPassword: string(hashed),
		UserRole:     constants.RoleAdmin,
		UserIsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED] failed to insert admin '%s': %v", email, err)
		return
	}
	log.Printf("[SEED] admin '%s' created", email)
}
