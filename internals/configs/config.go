package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	GoogleClientID string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	// Upload targets: the built client bundle and the dev-serve public dir.
	UploadDirDist   string
	UploadDirPublic string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	SMTPHost = GetEnv("EMAIL_HOST")
	SMTPPort = GetEnv("EMAIL_PORT", "465")
	SMTPUser = GetEnv("EMAIL_USER")
	SMTPPass = GetEnv("EMAIL_PASS")

	UploadDirDist = GetEnv("UPLOAD_DIR_DIST", "./client/dist/images")
	UploadDirPublic = GetEnv("UPLOAD_DIR_PUBLIC", "./client/public/images")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if SMTPHost == "" {
		log.Println("⚠️ EMAIL_HOST is not set, confirmation mail is disabled")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
