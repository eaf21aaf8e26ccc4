package users

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	authHelper "paisleygames_backend/internals/features/users/auth/helper"
	userModel "paisleygames_backend/internals/features/users/user/model"
)

type AdminSeed struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func SeedAdminsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading admin seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Failed to read seed file: %v", err)
		return
	}

	var inputs []AdminSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ Failed to decode seed JSON: %v", err)
		return
	}

	for _, data := range inputs {
		var existing userModel.AdminModel
		if err := db.Where("username = ?", data.Username).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Admin '%s' already exists, skipped.", data.Username)
			continue
		}

		hash, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Failed to hash password for '%s': %v", data.Username, err)
			continue
		}

		admin := userModel.AdminModel{Username: data.Username, Password: hash}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("❌ Failed to insert admin '%s': %v", data.Username, err)
			continue
		}
		log.Printf("✅ Seeded admin '%s'.", data.Username)
	}
}
